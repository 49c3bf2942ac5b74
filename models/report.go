package models

// DailyMax names the appliance that consumed the most on a given day.
type DailyMax struct {
	Name string  `json:"name"`
	KWh  float64 `json:"kwh"`
}

// MonthlyReport is the full aggregation for one month under one tariff.
type MonthlyReport struct {
	Month           string              `json:"month"`
	Country         string              `json:"country"`
	MonthlyTotals   map[string]float64  `json:"monthly_totals"`
	DailyMaxEntries map[string]DailyMax `json:"daily_max_consumers"`
	TotalKWh        float64             `json:"total_kwh"`
	TotalCost       float64             `json:"total_cost"`
	CarbonFootprint float64             `json:"carbon_footprint"`
	AvailableMonths []string            `json:"available_months"`
}

// DailyAnalysis reports which appliance topped each day and how often.
type DailyAnalysis struct {
	Month           string              `json:"month"`
	DailyMaxEntries map[string]DailyMax `json:"daily_max_consumers"`
	ApplianceDays   map[string]int      `json:"appliance_days"`
	MostFrequentMax FrequentMax         `json:"most_frequent_max"`
	TotalDays       int                 `json:"total_days"`
}

// FrequentMax is the appliance most often the daily maximum.
type FrequentMax struct {
	Name string `json:"name"`
	Days int    `json:"days"`
}
