package types

import "testing"

func TestParseSortLegacyAliases(t *testing.T) {
	cases := map[string]SortSpec{
		"recent":        {Field: "panDate", Direction: Descending},
		"quantity-high": {Field: "availableQty", Direction: Descending},
		"quantity-low":  {Field: "availableQty", Direction: Ascending},
		"supplier":      {Field: "supplierCode", Direction: Ascending},
		"polymer":       {Field: "polymerCode", Direction: Ascending},
		"lot":           {Field: "lot", Direction: Ascending},
	}
	for token, expected := range cases {
		if got := ParseSort(token); got != expected {
			t.Errorf("ParseSort(%q) = %+v, expected %+v", token, got, expected)
		}
	}
}

func TestParseSortGenericForm(t *testing.T) {
	if got := ParseSort("meltIndex,desc"); got != (SortSpec{Field: "meltIndex", Direction: Descending}) {
		t.Fatalf("unexpected spec: %+v", got)
	}
	if got := ParseSort("gradeCode,asc"); got != (SortSpec{Field: "gradeCode", Direction: Ascending}) {
		t.Fatalf("unexpected spec: %+v", got)
	}
	// bare field name defaults to ascending
	if got := ParseSort("gradeCode"); got != (SortSpec{Field: "gradeCode", Direction: Ascending}) {
		t.Fatalf("unexpected spec: %+v", got)
	}
	// junk direction defaults to ascending
	if got := ParseSort("gradeCode,sideways"); got.Direction != Ascending {
		t.Fatalf("unexpected direction: %v", got.Direction)
	}
}

func TestParseSortEmptyFallsBackToDefault(t *testing.T) {
	if got := ParseSort(""); got != DefaultSort {
		t.Fatalf("expected default sort, got %+v", got)
	}
}

func TestSortTokenRoundTrip(t *testing.T) {
	spec := SortSpec{Field: "density", Direction: Descending}
	if got := ParseSort(spec.Token()); got != spec {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestToggleFlipsActiveColumn(t *testing.T) {
	current := SortSpec{Field: "panDate", Direction: Descending}
	next := Toggle(current, "date")
	if next != (SortSpec{Field: "panDate", Direction: Ascending}) {
		t.Fatalf("expected flip to ascending, got %+v", next)
	}
	if again := Toggle(next, "date"); again.Direction != Descending {
		t.Fatalf("expected flip back to descending, got %+v", again)
	}
}

func TestToggleNewColumnUsesDefaultDirection(t *testing.T) {
	current := SortSpec{Field: "panDate", Direction: Descending}

	// numeric/date columns start descending
	if next := Toggle(current, "availableQty"); next != (SortSpec{Field: "availableQty", Direction: Descending}) {
		t.Fatalf("expected availableQty desc, got %+v", next)
	}
	if next := Toggle(current, "mi"); next != (SortSpec{Field: "meltIndex", Direction: Descending}) {
		t.Fatalf("expected meltIndex desc, got %+v", next)
	}

	// text columns start ascending
	if next := Toggle(current, "supplierCode"); next != (SortSpec{Field: "supplierCode", Direction: Ascending}) {
		t.Fatalf("expected supplierCode asc, got %+v", next)
	}
}

func TestToggleMapsUIColumnKeys(t *testing.T) {
	current := SortSpec{Field: "meltIndex", Direction: Descending}
	// "mi" resolves to the same API field, so the click flips direction
	if next := Toggle(current, "mi"); next != (SortSpec{Field: "meltIndex", Direction: Ascending}) {
		t.Fatalf("expected direction flip via UI key, got %+v", next)
	}
	if next := Toggle(current, "compartment"); next.Field != "rcCompartment" {
		t.Fatalf("expected rcCompartment, got %+v", next)
	}
}
