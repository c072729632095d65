package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStockEntriesMigrationContainsConstraints(t *testing.T) {
	content := readMigration(t, "*_create_stock_entries.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS stock_entries",
		"CHECK (quantity >= 0)",
		"CHECK (reserved >= 0)",
		"CHECK (reserved <= quantity)",
		"CREATE UNIQUE INDEX IF NOT EXISTS ux_stock_entries_product_variant_warehouse",
		"DROP TABLE IF EXISTS stock_entries",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestReservationsMigrationContainsSweeperIndex(t *testing.T) {
	content := readMigration(t, "*_create_reservations.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS reservations",
		"status reservation_status NOT NULL DEFAULT 'active'",
		"idx_reservations_active_expires_at",
		"WHERE status = 'active'",
		"idx_reservations_checkout_id",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestMovementsMigrationIsAppendOnlySchema(t *testing.T) {
	content := readMigration(t, "*_create_stock_movements.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS stock_movements",
		"reason movement_reason NOT NULL",
		"reference_id UUID",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func readMigration(t *testing.T, pattern string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration matching %q found", pattern)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}
