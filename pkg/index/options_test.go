package index

import (
	"reflect"
	"testing"
)

func TestFilterOptionsCategoricals(t *testing.T) {
	opts := seeded().FilterOptions()

	if !reflect.DeepEqual(opts.Suppliers, []string{"SUP-A", "SUP-B"}) {
		t.Fatalf("unexpected suppliers: %v", opts.Suppliers)
	}
	if !reflect.DeepEqual(opts.Grades, []string{"G100", "G200"}) {
		t.Fatalf("ungraded records must not contribute an empty grade: %v", opts.Grades)
	}
	// record 2 has the "??" placeholder warehouse; its location group stands in
	if !reflect.DeepEqual(opts.Warehouses, []string{"Houston", "WEST"}) {
		t.Fatalf("unexpected warehouses: %v", opts.Warehouses)
	}
	// lot names preferred, bare lot numbers as fallback
	if !reflect.DeepEqual(opts.Lots, []string{"2200", "Batch-100", "Run-42"}) {
		t.Fatalf("unexpected lots: %v", opts.Lots)
	}
}

func TestFilterOptionsRanges(t *testing.T) {
	opts := seeded().FilterOptions()

	if !reflect.DeepEqual(opts.MIRange, []string{"2.5", "12"}) {
		t.Fatalf("unexpected mi range: %v", opts.MIRange)
	}
	if opts.DensityRange != nil {
		t.Fatalf("no record has density, range must be omitted: %v", opts.DensityRange)
	}
	if !reflect.DeepEqual(opts.QuantityRange, []string{"120", "900"}) {
		t.Fatalf("unexpected quantity range: %v", opts.QuantityRange)
	}
	if !reflect.DeepEqual(opts.DateRange, []string{"2023-10-25", "2023-12-01"}) {
		t.Fatalf("unexpected date range: %v", opts.DateRange)
	}
}

func TestFilterOptionsEmptyIndex(t *testing.T) {
	opts := NewIndex().FilterOptions()
	if len(opts.Suppliers) != 0 || opts.MIRange != nil {
		t.Fatalf("empty index must yield empty options: %+v", opts)
	}
	if len(opts.DateRange) != 2 {
		t.Fatalf("date range must default to today: %v", opts.DateRange)
	}
}
