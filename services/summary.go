package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/LovationAdmin/powertrack/models"

	"github.com/google/uuid"
)

// SummaryService maintains the monthly_summaries snapshot table.
type SummaryService struct {
	db      *sql.DB
	reports *ReportService
}

func NewSummaryService(db *sql.DB, reports *ReportService) *SummaryService {
	return &SummaryService{db: db, reports: reports}
}

// Snapshot recomputes a month's aggregate for one country and stores it,
// replacing any earlier snapshot for the same (month, country).
func (s *SummaryService) Snapshot(ctx context.Context, month, country string, tariff models.Tariff) (*models.MonthlySummary, error) {
	report, err := s.reports.MonthlyReport(ctx, month, country, tariff)
	if err != nil {
		return nil, err
	}

	summary := &models.MonthlySummary{
		ID:               uuid.New().String(),
		Month:            month,
		Country:          country,
		TotalConsumption: report.TotalKWh,
		TotalCost:        report.TotalCost,
		CarbonFootprint:  report.CarbonFootprint,
		CreatedAt:        time.Now().UTC(),
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO monthly_summaries
		(id, month, country, total_consumption, total_cost, carbon_footprint, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, summary.ID, summary.Month, summary.Country, summary.TotalConsumption,
		summary.TotalCost, summary.CarbonFootprint, summary.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("storing monthly summary: %w", err)
	}

	return summary, nil
}
