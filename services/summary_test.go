package services

import (
	"context"
	"testing"

	"github.com/LovationAdmin/powertrack/config"
)

func TestSnapshotReplacesExistingRow(t *testing.T) {
	db, err := config.InitDB(":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := config.RunMigrations(db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	consumptions := NewConsumptionService(db)
	summaries := NewSummaryService(db, NewReportService(consumptions))
	ctx := context.Background()

	fridge, err := consumptions.CreateAppliance(ctx, "Fridge", 150)
	if err != nil {
		t.Fatalf("create appliance: %v", err)
	}
	if err := consumptions.UpsertDailyConsumption(ctx, "2024-06-01", fridge.ID, 150, 5); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	tariff, ok := config.TariffFor("USA")
	if !ok {
		t.Fatal("USA tariff missing")
	}

	first, err := summaries.Snapshot(ctx, "2024-06", "USA", tariff)
	if err != nil {
		t.Fatalf("first snapshot: %v", err)
	}
	if !almostEqual(first.TotalConsumption, 0.75) {
		t.Errorf("TotalConsumption = %v, want 0.75", first.TotalConsumption)
	}
	if !almostEqual(first.TotalCost, 0.1125) {
		t.Errorf("TotalCost = %v, want 0.1125", first.TotalCost)
	}

	// More usage logged, snapshot again: same (month, country) row is
	// replaced, not duplicated.
	if err := consumptions.UpsertDailyConsumption(ctx, "2024-06-02", fridge.ID, 150, 10); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	second, err := summaries.Snapshot(ctx, "2024-06", "USA", tariff)
	if err != nil {
		t.Fatalf("second snapshot: %v", err)
	}
	if !almostEqual(second.TotalConsumption, 2.25) {
		t.Errorf("TotalConsumption = %v, want 2.25", second.TotalConsumption)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM monthly_summaries WHERE month = ? AND country = ?`, "2024-06", "USA").Scan(&count); err != nil {
		t.Fatalf("count summaries: %v", err)
	}
	if count != 1 {
		t.Errorf("got %d summary rows, want 1", count)
	}
}
