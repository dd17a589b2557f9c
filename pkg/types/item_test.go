package types

import (
	"reflect"
	"testing"
)

func TestSplitCodes(t *testing.T) {
	if got := SplitCodes("A, B ,C,,  ,A"); !reflect.DeepEqual(got, []string{"A", "B", "C", "A"}) {
		t.Fatalf("unexpected split: %v", got)
	}
	if got := SplitCodes(""); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}

func TestAllocatedCustomersProvenance(t *testing.T) {
	r := &InventoryRecord{
		PanLevelCustomerCodes:       "ACME, GLOBEX",
		InventoryLevelCustomerCodes: "GLOBEX, INITECH",
		AllocatedCustomerCodes:      "ACME, GLOBEX, INITECH, HOOLI",
	}

	got := r.AllocatedCustomers()
	expected := []AllocatedCustomer{
		{Code: "ACME", Level: CustomerLevelPan},
		{Code: "GLOBEX", Level: CustomerLevelBoth},
		{Code: "INITECH", Level: CustomerLevelInventory},
		{Code: "HOOLI", Level: CustomerLevelInventory},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("unexpected allocation list:\n got %+v\nwant %+v", got, expected)
	}
}

func TestAllocatedCustomersEmpty(t *testing.T) {
	r := &InventoryRecord{}
	if got := r.AllocatedCustomers(); len(got) != 0 {
		t.Fatalf("expected no customers, got %+v", got)
	}
}
