package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsUniqueViolation(t *testing.T) {
	pqUnique := &pq.Error{Code: "23505", Constraint: "ux_stock_entries_product_variant_warehouse"}

	cases := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{name: "nil error", err: nil, want: false},
		{name: "pq unique violation", err: pqUnique, want: true},
		{name: "pq unique violation wrapped", err: fmt.Errorf("create entry: %w", pqUnique), want: true},
		{name: "pq unique violation matching constraint", err: pqUnique, constraint: "ux_stock_entries_product_variant_warehouse", want: true},
		{name: "pq unique violation other constraint", err: pqUnique, constraint: "ux_other", want: false},
		{name: "pq non-unique code", err: &pq.Error{Code: "23503"}, want: false},
		{name: "postgres message", err: errors.New(`duplicate key value violates unique constraint "ux_stock_entries_product_variant_warehouse"`), want: true},
		{name: "sqlite message", err: errors.New("UNIQUE constraint failed: stock_entries.product_id, stock_entries.variant_id, stock_entries.warehouse_id"), want: true},
		{name: "unrelated error", err: errors.New("connection refused"), want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsUniqueViolation(tc.err, tc.constraint); got != tc.want {
				t.Errorf("IsUniqueViolation(%v, %q) = %v, want %v", tc.err, tc.constraint, got, tc.want)
			}
		})
	}
}
