package models

import "time"

// DailyConsumption is one appliance's usage for one calendar day.
// ConsumptionKWh is always derived from the appliance's wattage and
// HoursUsed at write time; it is never edited on its own.
type DailyConsumption struct {
	ID             string    `json:"id"`
	Date           string    `json:"date"` // YYYY-MM-DD
	ApplianceID    string    `json:"appliance_id"`
	HoursUsed      float64   `json:"hours_used"`
	ConsumptionKWh float64   `json:"consumption_kwh"`
	CreatedAt      time.Time `json:"created_at"`
}

// MonthlySummary is a per-(month, country) snapshot of the aggregated
// report, refreshed by the background snapshot job.
type MonthlySummary struct {
	ID               string    `json:"id"`
	Month            string    `json:"month"` // YYYY-MM
	Country          string    `json:"country"`
	TotalConsumption float64   `json:"total_consumption"`
	TotalCost        float64   `json:"total_cost"`
	CarbonFootprint  float64   `json:"carbon_footprint"`
	CreatedAt        time.Time `json:"created_at"`
}

// DayData is the JSON shape served per appliance by /get-day-data.
type DayData struct {
	HoursUsed      float64 `json:"hours_used"`
	ConsumptionKWh float64 `json:"consumption_kwh"`
}
