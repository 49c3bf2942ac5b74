package services

import (
	"context"
	"sort"

	"github.com/LovationAdmin/powertrack/models"
)

// CarbonPerKWh is the fixed emission factor, kg CO2 per kWh.
const CarbonPerKWh = 0.5

type ReportService struct {
	consumptions *ConsumptionService
}

func NewReportService(consumptions *ConsumptionService) *ReportService {
	return &ReportService{consumptions: consumptions}
}

// MonthlyReport loads a month's rows and aggregates them under the given
// tariff.
func (s *ReportService) MonthlyReport(ctx context.Context, month string, country string, tariff models.Tariff) (*models.MonthlyReport, error) {
	rows, err := s.consumptions.ListByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	appliances, err := s.consumptions.ListAppliances(ctx)
	if err != nil {
		return nil, err
	}

	months, err := s.consumptions.AvailableMonths(ctx)
	if err != nil {
		return nil, err
	}

	report := BuildMonthlyReport(rows, appliances, tariff.CostPerKWh)
	report.Month = month
	report.Country = country
	report.AvailableMonths = months
	return report, nil
}

// DailyAnalysis loads a month's rows and computes the per-day maximum
// breakdown and mode statistics.
func (s *ReportService) DailyAnalysis(ctx context.Context, month string) (*models.DailyAnalysis, error) {
	rows, err := s.consumptions.ListByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	appliances, err := s.consumptions.ListAppliances(ctx)
	if err != nil {
		return nil, err
	}

	analysis := BuildDailyAnalysis(rows, applianceNames(appliances))
	analysis.Month = month
	return analysis, nil
}

func applianceNames(appliances []models.Appliance) map[string]string {
	names := make(map[string]string, len(appliances))
	for _, a := range appliances {
		names[a.ID] = a.Name
	}
	return names
}

// BuildMonthlyReport aggregates one month of consumption rows. Every known
// appliance appears in MonthlyTotals, at zero when it has no entries. Empty
// input yields zero totals, never an error.
func BuildMonthlyReport(rows []models.DailyConsumption, appliances []models.Appliance, costPerKWh float64) *models.MonthlyReport {
	names := applianceNames(appliances)

	totals := make(map[string]float64, len(appliances))
	for _, a := range appliances {
		totals[a.Name] = 0
	}

	totalKWh := 0.0
	for _, row := range rows {
		name, ok := names[row.ApplianceID]
		if !ok {
			continue
		}
		totals[name] += row.ConsumptionKWh
		totalKWh += row.ConsumptionKWh
	}

	return &models.MonthlyReport{
		MonthlyTotals:   totals,
		DailyMaxEntries: dailyMaxConsumers(rows, names),
		TotalKWh:        totalKWh,
		TotalCost:       totalKWh * costPerKWh,
		CarbonFootprint: totalKWh * CarbonPerKWh,
	}
}

// BuildDailyAnalysis computes, for each day of the month, the appliance
// with the greatest consumption, then counts how often each appliance held
// that spot. Ties resolve to the lexicographically smaller name so results
// are stable across runs.
func BuildDailyAnalysis(rows []models.DailyConsumption, names map[string]string) *models.DailyAnalysis {
	dailyMax := dailyMaxConsumers(rows, names)

	applianceDays := map[string]int{}
	for _, entry := range dailyMax {
		applianceDays[entry.Name]++
	}

	most := models.FrequentMax{}
	for name, days := range applianceDays {
		if days > most.Days || (days == most.Days && (most.Name == "" || name < most.Name)) {
			most = models.FrequentMax{Name: name, Days: days}
		}
	}

	return &models.DailyAnalysis{
		DailyMaxEntries: dailyMax,
		ApplianceDays:   applianceDays,
		MostFrequentMax: most,
		TotalDays:       len(dailyMax),
	}
}

// dailyMaxConsumers maps each date to its top consumer. A row whose
// appliance no longer exists is skipped. Equal consumption resolves to the
// lexicographically smaller name.
func dailyMaxConsumers(rows []models.DailyConsumption, names map[string]string) map[string]models.DailyMax {
	byDate := map[string][]models.DailyConsumption{}
	for _, row := range rows {
		byDate[row.Date] = append(byDate[row.Date], row)
	}

	result := make(map[string]models.DailyMax, len(byDate))
	for date, dayRows := range byDate {
		sort.Slice(dayRows, func(i, j int) bool {
			return names[dayRows[i].ApplianceID] < names[dayRows[j].ApplianceID]
		})

		top := models.DailyMax{}
		found := false
		for _, row := range dayRows {
			name, ok := names[row.ApplianceID]
			if !ok {
				continue
			}
			if !found || row.ConsumptionKWh > top.KWh {
				top = models.DailyMax{Name: name, KWh: row.ConsumptionKWh}
				found = true
			}
		}
		if found {
			result[date] = top
		}
	}

	return result
}
