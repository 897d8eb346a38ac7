// seed-demo is a one-shot tool that creates a fully classified demo entity
// in the live database. Run it to have something to look at after a wipe.
//
// Usage: go run ./cmd/seed-demo
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"finstat/internal/core"
	"finstat/internal/db"
	"finstat/internal/store"
)

type seedRow struct {
	name     string
	grouping string
	cy, py   int64
}

var seedRows = []seedRow{
	{"Plant and Machinery", "A.10.04", 1_200_000, 1_000_000},
	{"Inventory - Finished Goods", "A.100.03", 300_000, 250_000},
	{"Trade Receivables - Domestic", "A.110.01", 400_000, 300_000},
	{"HDFC Bank Current Account", "A.120.02", 300_000, 250_000},
	{"Partners Capital - A", "B.10.01", -1_000_000, -900_000},
	{"Reserves and Surplus", "B.20.01", -310_000, -230_000},
	{"ALTERIA CAPITAL - TERM LOAN", "B.30.02", -400_000, -300_000},
	{"Trade Payables - Others", "B.80.02", -350_000, -270_000},
	{"Sales - Domestic", "C.10.01", -2_000_000, -1_700_000},
	{"Purchases - Raw Material", "C.30.02", 1_100_000, 950_000},
	{"Salaries and Wages", "C.60.01", 500_000, 420_000},
	{"Interest on Term Loan", "C.70.01", 60_000, 50_000},
	{"Office Rent", "C.90.02", 200_000, 180_000},
}

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	chart, err := core.NewChart(core.DefaultMasters())
	if err != nil {
		log.Fatalf("Failed to build chart: %v", err)
	}
	entities := store.NewEntityStore(pool, chart)

	fyStart := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	entity := &core.Entity{
		Name:    "Meridian Castings LLP",
		Type:    core.EntityLLP,
		PAN:     "AAOFM1234K",
		FYStart: fyStart,
		FYEnd:   fyStart.AddDate(1, 0, -1),
	}
	if err := entities.CreateEntity(ctx, entity); err != nil {
		log.Fatalf("Failed to create entity: %v", err)
	}
	log.Printf("Created entity %s", entity.ID)

	items := make([]core.TrialBalanceItem, 0, len(seedRows))
	for _, r := range seedRows {
		items = append(items, core.TrialBalanceItem{
			LedgerName: r.name,
			ClosingCY:  decimal.NewFromInt(r.cy),
			ClosingPY:  decimal.NewFromInt(r.py),
		})
	}
	if err := entities.SaveTrialBalance(ctx, entity.ID, items); err != nil {
		log.Fatalf("Failed to import trial balance: %v", err)
	}

	saved, err := entities.GetEntity(ctx, entity.ID)
	if err != nil {
		log.Fatalf("Failed to reload entity: %v", err)
	}
	for i, item := range saved.TrialBalance {
		res, ok := chart.Resolve(seedRows[i].grouping)
		if !ok {
			log.Fatalf("Unknown grouping %s", seedRows[i].grouping)
		}
		err := entities.CommitClassification(ctx, entity.ID, item.ID, res.Major.Code, res.Minor.Code, res.Grouping.Code)
		if err != nil {
			log.Fatalf("Failed to classify %s: %v", item.LedgerName, err)
		}
	}

	log.Println("Demo entity seeded and classified.")
}
