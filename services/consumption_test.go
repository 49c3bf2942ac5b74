package services

import (
	"context"
	"errors"
	"testing"

	"github.com/LovationAdmin/powertrack/config"
)

func newTestService(t *testing.T) *ConsumptionService {
	t.Helper()

	db, err := config.InitDB(":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := config.RunMigrations(db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	return NewConsumptionService(db)
}

func TestCreateAndListAppliances(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	fridge, err := svc.CreateAppliance(ctx, "Fridge", 150)
	if err != nil {
		t.Fatalf("create appliance: %v", err)
	}
	if fridge.ID == "" {
		t.Error("appliance id not generated")
	}

	if _, err := svc.CreateAppliance(ctx, "AC", 2000); err != nil {
		t.Fatalf("create appliance: %v", err)
	}

	appliances, err := svc.ListAppliances(ctx)
	if err != nil {
		t.Fatalf("list appliances: %v", err)
	}
	if len(appliances) != 2 {
		t.Fatalf("got %d appliances, want 2", len(appliances))
	}
}

func TestUpsertDerivesKWh(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	fridge, err := svc.CreateAppliance(ctx, "Fridge", 150)
	if err != nil {
		t.Fatalf("create appliance: %v", err)
	}

	if err := svc.UpsertDailyConsumption(ctx, "2024-06-01", fridge.ID, fridge.PowerWatts, 5); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	rows, err := svc.ListByDate(ctx, "2024-06-01")
	if err != nil {
		t.Fatalf("list by date: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if !almostEqual(rows[0].ConsumptionKWh, 0.75) {
		t.Errorf("ConsumptionKWh = %v, want 0.75 (150W x 5h / 1000)", rows[0].ConsumptionKWh)
	}
}

func TestUpsertIdempotence(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	fridge, err := svc.CreateAppliance(ctx, "Fridge", 150)
	if err != nil {
		t.Fatalf("create appliance: %v", err)
	}

	if err := svc.UpsertDailyConsumption(ctx, "2024-06-01", fridge.ID, fridge.PowerWatts, 5); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := svc.UpsertDailyConsumption(ctx, "2024-06-01", fridge.ID, fridge.PowerWatts, 8); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	rows, err := svc.ListByDate(ctx, "2024-06-01")
	if err != nil {
		t.Fatalf("list by date: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows after double submit, want 1", len(rows))
	}
	if rows[0].HoursUsed != 8 {
		t.Errorf("HoursUsed = %v, want 8 (second submission wins)", rows[0].HoursUsed)
	}
	if !almostEqual(rows[0].ConsumptionKWh, 1.2) {
		t.Errorf("ConsumptionKWh = %v, want 1.2", rows[0].ConsumptionKWh)
	}
}

func TestDeleteApplianceCascades(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	fridge, _ := svc.CreateAppliance(ctx, "Fridge", 150)
	ac, _ := svc.CreateAppliance(ctx, "AC", 2000)

	svc.UpsertDailyConsumption(ctx, "2024-06-01", fridge.ID, 150, 5)
	svc.UpsertDailyConsumption(ctx, "2024-06-02", fridge.ID, 150, 3)
	svc.UpsertDailyConsumption(ctx, "2024-06-01", ac.ID, 2000, 2)

	if err := svc.DeleteAppliance(ctx, fridge.ID); err != nil {
		t.Fatalf("delete appliance: %v", err)
	}

	rows, err := svc.ListByMonth(ctx, "2024-06")
	if err != nil {
		t.Fatalf("list by month: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows after cascade, want 1", len(rows))
	}
	if rows[0].ApplianceID != ac.ID {
		t.Errorf("surviving row belongs to %s, want %s", rows[0].ApplianceID, ac.ID)
	}
}

func TestDeleteApplianceNotFound(t *testing.T) {
	svc := newTestService(t)

	err := svc.DeleteAppliance(context.Background(), "no-such-id")
	if !errors.Is(err, ErrApplianceNotFound) {
		t.Errorf("got %v, want ErrApplianceNotFound", err)
	}
}

func TestDatesAndMonths(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	fridge, _ := svc.CreateAppliance(ctx, "Fridge", 150)

	svc.UpsertDailyConsumption(ctx, "2024-06-02", fridge.ID, 150, 5)
	svc.UpsertDailyConsumption(ctx, "2024-06-01", fridge.ID, 150, 4)
	svc.UpsertDailyConsumption(ctx, "2024-07-10", fridge.ID, 150, 2)

	dates, err := svc.DatesWithData(ctx, "2024-06")
	if err != nil {
		t.Fatalf("dates with data: %v", err)
	}
	if len(dates) != 2 || dates[0] != "2024-06-01" || dates[1] != "2024-06-02" {
		t.Errorf("DatesWithData = %v, want [2024-06-01 2024-06-02]", dates)
	}

	months, err := svc.AvailableMonths(ctx)
	if err != nil {
		t.Fatalf("available months: %v", err)
	}
	if len(months) != 2 || months[0] != "2024-07" || months[1] != "2024-06" {
		t.Errorf("AvailableMonths = %v, want [2024-07 2024-06]", months)
	}
}
