package store_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"finstat/internal/core"
	"finstat/internal/store"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	_ = godotenv.Load("../../.env")

	// Use a dedicated TEST database to avoid wiping the live app database.
	// Set TEST_DATABASE_URL in your .env or environment to run integration tests.
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set — skipping integration test to protect live database")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	schema, err := os.ReadFile("../../migrations/001_entities.sql")
	if err != nil {
		t.Fatalf("Failed to read schema: %v", err)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		t.Fatalf("Failed to apply schema: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE TABLE entities`); err != nil {
		t.Fatalf("Failed to clean test database: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func testStore(t *testing.T) store.EntityStore {
	chart, err := core.NewChart(core.DefaultMasters())
	if err != nil {
		t.Fatal(err)
	}
	return store.NewEntityStore(setupTestDB(t), chart)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newTestEntity(t *testing.T, s store.EntityStore) *core.Entity {
	t.Helper()
	e := &core.Entity{
		Name:    "Kestrel Traders LLP",
		Type:    core.EntityLLP,
		FYStart: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		FYEnd:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	}
	if err := s.CreateEntity(context.Background(), e); err != nil {
		t.Fatalf("CreateEntity: %v", err)
	}
	return e
}

func balancedTB() []core.TrialBalanceItem {
	return []core.TrialBalanceItem{
		{LedgerName: "ICICI Bank", ClosingCY: dec("600"), ClosingPY: dec("400"),
			IsMapped: true, MajorHeadCode: "A", MinorHeadCode: "A.120", GroupingCode: "A.120.02"},
		{LedgerName: "Partners Capital", ClosingCY: dec("-500"), ClosingPY: dec("-400"),
			IsMapped: true, MajorHeadCode: "B", MinorHeadCode: "B.10", GroupingCode: "B.10.03"},
		{LedgerName: "Consultancy Income", ClosingCY: dec("-300"), ClosingPY: dec("0"),
			IsMapped: true, MajorHeadCode: "C", MinorHeadCode: "C.10", GroupingCode: "C.10.02"},
		{LedgerName: "Office Rent", ClosingCY: dec("200"), ClosingPY: dec("0")},
	}
}

func TestEntityLifecycle(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	e := newTestEntity(t, s)

	got, err := s.GetEntity(ctx, e.ID)
	if err != nil {
		t.Fatalf("GetEntity: %v", err)
	}
	if got.Name != e.Name || got.Type != core.EntityLLP {
		t.Errorf("round-trip mismatch: %+v", got)
	}

	list, err := s.ListEntities(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d entities, want 1", len(list))
	}

	if err := s.SoftDeleteEntity(ctx, e.ID); err != nil {
		t.Fatalf("SoftDeleteEntity: %v", err)
	}
	if _, err := s.GetEntity(ctx, e.ID); err == nil {
		t.Error("deleted entity must not be readable")
	}
}

func TestSaveTrialBalance_RejectsUnbalanced(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	e := newTestEntity(t, s)

	items := balancedTB()
	items[0].ClosingCY = dec("700") // now off by 100
	err := s.SaveTrialBalance(ctx, e.ID, items)
	var unbalanced *core.UnbalancedTrialBalanceError
	if !errors.As(err, &unbalanced) {
		t.Fatalf("expected *UnbalancedTrialBalanceError, got %v", err)
	}

	if err := s.SaveTrialBalance(ctx, e.ID, balancedTB()); err != nil {
		t.Fatalf("balanced save: %v", err)
	}
	got, err := s.GetEntity(ctx, e.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.TrialBalance) != 4 {
		t.Fatalf("got %d rows, want 4", len(got.TrialBalance))
	}
	if got.TrialBalance[0].ID == "" {
		t.Error("rows must get identifiers on save")
	}
	if !got.TrialBalance[0].ClosingCY.Equal(dec("600")) {
		t.Errorf("decimal round-trip broke: %s", got.TrialBalance[0].ClosingCY)
	}
}

func TestCommitClassification(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	e := newTestEntity(t, s)
	if err := s.SaveTrialBalance(ctx, e.ID, balancedTB()); err != nil {
		t.Fatal(err)
	}
	got, _ := s.GetEntity(ctx, e.ID)
	var rentID string
	for _, item := range got.TrialBalance {
		if item.LedgerName == "Office Rent" {
			rentID = item.ID
		}
	}

	if err := s.CommitClassification(ctx, e.ID, rentID, "C", "C.60", "C.90.02"); err == nil {
		t.Fatal("inconsistent chain must be rejected")
	}
	if err := s.CommitClassification(ctx, e.ID, rentID, "C", "C.90", "C.90.02"); err != nil {
		t.Fatalf("CommitClassification: %v", err)
	}

	got, _ = s.GetEntity(ctx, e.ID)
	for _, item := range got.TrialBalance {
		if item.ID == rentID && (!item.IsMapped || item.GroupingCode != "C.90.02") {
			t.Errorf("classification not persisted: %+v", item)
		}
	}
}

func TestFinalize_GateAndLock(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	e := newTestEntity(t, s)
	if err := s.SaveTrialBalance(ctx, e.ID, balancedTB()); err != nil {
		t.Fatal(err)
	}

	// One unmapped ledger with a balance is a critical finding.
	if err := s.Finalize(ctx, e.ID); err == nil {
		t.Fatal("finalize must fail while critical findings exist")
	}

	got, _ := s.GetEntity(ctx, e.ID)
	for _, item := range got.TrialBalance {
		if item.LedgerName == "Office Rent" {
			if err := s.CommitClassification(ctx, e.ID, item.ID, "C", "C.90", "C.90.02"); err != nil {
				t.Fatal(err)
			}
		}
	}
	// Explain the ratio movements a first-year income statement causes.
	got, _ = s.GetEntity(ctx, e.ID)
	schedules := got.Schedules
	for _, key := range []string{"current-ratio", "debt-equity", "debt-service-coverage",
		"return-on-equity", "inventory-turnover", "receivables-turnover", "payables-turnover",
		"net-capital-turnover", "net-profit", "return-on-capital-employed", "return-on-investment"} {
		schedules.RatioExplanations = append(schedules.RatioExplanations,
			core.RatioExplanation{RatioKey: key, Explanation: "first full year of operations"})
	}
	if err := s.SaveSchedules(ctx, e.ID, schedules); err != nil {
		t.Fatal(err)
	}

	if err := s.Finalize(ctx, e.ID); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	// A finalized entity rejects every mutation.
	err := s.SaveTrialBalance(ctx, e.ID, balancedTB())
	if !errors.Is(err, core.ErrEntityFinalized) {
		t.Fatalf("expected ErrEntityFinalized, got %v", err)
	}
}

func TestGlobalExamples_DedupeAndOrder(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	older := newTestEntity(t, s)
	if err := s.SaveTrialBalance(ctx, older.ID, []core.TrialBalanceItem{
		{LedgerName: "ICICI Bank", ClosingCY: dec("100"),
			IsMapped: true, MajorHeadCode: "A", MinorHeadCode: "A.120", GroupingCode: "A.120.03"},
		{LedgerName: "Partners Capital", ClosingCY: dec("-100"),
			IsMapped: true, MajorHeadCode: "B", MinorHeadCode: "B.10", GroupingCode: "B.10.03"},
	}); err != nil {
		t.Fatal(err)
	}

	newer := newTestEntity(t, s)
	if err := s.SaveTrialBalance(ctx, newer.ID, []core.TrialBalanceItem{
		{LedgerName: "icici bank", ClosingCY: dec("250"),
			IsMapped: true, MajorHeadCode: "A", MinorHeadCode: "A.120", GroupingCode: "A.120.02"},
		{LedgerName: "Unmapped Ledger", ClosingCY: dec("-250")},
	}); err != nil {
		t.Fatal(err)
	}

	examples, err := s.GlobalExamples(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(examples) != 2 {
		t.Fatalf("got %d examples, want 2 (dedupe by normalized name, skip unmapped): %+v", len(examples), examples)
	}
	byName := make(map[string]core.ClassificationExample)
	for _, ex := range examples {
		byName[core.NormalizeLedgerName(ex.LedgerName)] = ex
	}
	if byName["icici bank"].GroupingCode != "A.120.02" {
		t.Errorf("the most recently updated entity's mapping must win, got %q", byName["icici bank"].GroupingCode)
	}
}
