package models

// Tariff describes a country's grid characteristics and price per kWh.
type Tariff struct {
	Voltage    int     `json:"voltage"`
	Frequency  int     `json:"frequency"`
	CostPerKWh float64 `json:"cost_per_kwh"`
}
