package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/LovationAdmin/powertrack/models"
	"github.com/LovationAdmin/powertrack/utils"

	"github.com/google/uuid"
)

// ErrApplianceNotFound is returned when an appliance id does not exist.
var ErrApplianceNotFound = errors.New("appliance not found")

type ConsumptionService struct {
	db *sql.DB
}

func NewConsumptionService(db *sql.DB) *ConsumptionService {
	return &ConsumptionService{db: db}
}

// CreateAppliance stores a new appliance with a generated id.
func (s *ConsumptionService) CreateAppliance(ctx context.Context, name string, powerWatts float64) (*models.Appliance, error) {
	appliance := &models.Appliance{
		ID:         uuid.New().String(),
		Name:       name,
		PowerWatts: powerWatts,
		CreatedAt:  time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO appliances (id, name, power_watts, created_at)
		VALUES (?, ?, ?, ?)
	`, appliance.ID, appliance.Name, appliance.PowerWatts, appliance.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting appliance: %w", err)
	}

	return appliance, nil
}

// ListAppliances returns all appliances, oldest first.
func (s *ConsumptionService) ListAppliances(ctx context.Context) ([]models.Appliance, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, power_watts, created_at
		FROM appliances
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("listing appliances: %w", err)
	}
	defer rows.Close()

	appliances := []models.Appliance{}
	for rows.Next() {
		var a models.Appliance
		if err := rows.Scan(&a.ID, &a.Name, &a.PowerWatts, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning appliance: %w", err)
		}
		appliances = append(appliances, a)
	}

	return appliances, rows.Err()
}

// DeleteAppliance removes an appliance and all of its consumption rows in
// one transaction. Returns ErrApplianceNotFound for an unknown id.
func (s *ConsumptionService) DeleteAppliance(ctx context.Context, id string) error {
	return utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM appliances WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("deleting appliance: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrApplianceNotFound
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM daily_consumptions WHERE appliance_id = ?`, id); err != nil {
			return fmt.Errorf("deleting consumption rows: %w", err)
		}

		return nil
	})
}

// UpsertDailyConsumption records hours for one appliance on one date,
// overwriting any existing (date, appliance) row. The kWh figure is always
// recomputed from the wattage and hours passed in.
func (s *ConsumptionService) UpsertDailyConsumption(ctx context.Context, date, applianceID string, powerWatts, hoursUsed float64) error {
	consumptionKWh := powerWatts * hoursUsed / 1000

	res, err := s.db.ExecContext(ctx, `
		UPDATE daily_consumptions
		SET hours_used = ?, consumption_kwh = ?
		WHERE date = ? AND appliance_id = ?
	`, hoursUsed, consumptionKWh, date, applianceID)
	if err != nil {
		return fmt.Errorf("updating consumption: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO daily_consumptions (id, date, appliance_id, hours_used, consumption_kwh, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), date, applianceID, hoursUsed, consumptionKWh, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("inserting consumption: %w", err)
	}

	return nil
}

// ListByDate returns every consumption row for an exact date.
func (s *ConsumptionService) ListByDate(ctx context.Context, date string) ([]models.DailyConsumption, error) {
	return s.listConsumptions(ctx, `date = ?`, date)
}

// ListByMonth returns every consumption row whose date falls in the given
// YYYY-MM month.
func (s *ConsumptionService) ListByMonth(ctx context.Context, month string) ([]models.DailyConsumption, error) {
	return s.listConsumptions(ctx, `date LIKE ?`, month+"-%")
}

func (s *ConsumptionService) listConsumptions(ctx context.Context, where string, arg any) ([]models.DailyConsumption, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, appliance_id, hours_used, consumption_kwh, created_at
		FROM daily_consumptions
		WHERE `+where+`
		ORDER BY date, appliance_id
	`, arg)
	if err != nil {
		return nil, fmt.Errorf("listing consumptions: %w", err)
	}
	defer rows.Close()

	consumptions := []models.DailyConsumption{}
	for rows.Next() {
		var dc models.DailyConsumption
		if err := rows.Scan(&dc.ID, &dc.Date, &dc.ApplianceID, &dc.HoursUsed, &dc.ConsumptionKWh, &dc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning consumption: %w", err)
		}
		consumptions = append(consumptions, dc)
	}

	return consumptions, rows.Err()
}

// DatesWithData returns the distinct dates recorded within a month.
func (s *ConsumptionService) DatesWithData(ctx context.Context, month string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT date FROM daily_consumptions
		WHERE date LIKE ?
		ORDER BY date
	`, month+"-%")
	if err != nil {
		return nil, fmt.Errorf("listing dates: %w", err)
	}
	defer rows.Close()

	dates := []string{}
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}

	return dates, rows.Err()
}

// AvailableMonths returns every month with recorded data, newest first.
func (s *ConsumptionService) AvailableMonths(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT date FROM daily_consumptions`)
	if err != nil {
		return nil, fmt.Errorf("listing months: %w", err)
	}
	defer rows.Close()

	seen := map[string]bool{}
	months := []string{}
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		if len(d) < 7 {
			continue
		}
		month := d[:7]
		if !seen[month] {
			seen[month] = true
			months = append(months, month)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months, nil
}
