package params

import (
	"testing"
	"time"

	"github.com/sunrise-ims/inventory-finder/pkg/types"
)

func fp(v float64) *float64 { return &v }

func TestBuildEmptyStateEmitsNoFilterParams(t *testing.T) {
	v := Build(types.FilterState{}, "")
	if len(v) != 0 {
		t.Fatalf("expected no parameters, got %v", v)
	}
}

func TestBuildDefaultStateEmitsOnlyIncludeNAFlags(t *testing.T) {
	v := Build(types.DefaultFilterState(), "recent")
	for _, key := range []string{"includeNAMI", "includeNADensity", "includeNAIzod"} {
		if v.Get(key) != "true" {
			t.Errorf("expected %s=true, got %q", key, v.Get(key))
		}
	}
	if v.Get("sort") != "recent" {
		t.Errorf("expected sort=recent, got %q", v.Get("sort"))
	}
	if len(v) != 4 {
		t.Fatalf("unexpected extra parameters: %v", v)
	}
}

func TestBuildListsAreCommaJoined(t *testing.T) {
	state := types.FilterState{
		Polymers:  []string{"HDPE", "PP"},
		Suppliers: []string{"SUP-A"},
	}
	v := Build(state, "")
	if v.Get("polymerCodes") != "HDPE,PP" {
		t.Fatalf("unexpected polymerCodes: %q", v.Get("polymerCodes"))
	}
	if v.Get("suppliers") != "SUP-A" {
		t.Fatalf("unexpected suppliers: %q", v.Get("suppliers"))
	}
}

func TestBuildBoundsAndFlags(t *testing.T) {
	state := types.FilterState{
		MIRange:       types.Range[float64]{From: fp(1.5), To: fp(12)},
		QuantityRange: types.Range[float64]{From: fp(250)},
		QualityControl: types.QualityControlFlags{
			Density: true,
		},
	}
	v := Build(state, "")

	if v.Get("minMi") != "1.5" || v.Get("maxMi") != "12" {
		t.Fatalf("unexpected mi bounds: %q / %q", v.Get("minMi"), v.Get("maxMi"))
	}
	if v.Get("minQty") != "250" {
		t.Fatalf("unexpected minQty: %q", v.Get("minQty"))
	}
	if _, present := v["maxQty"]; present {
		t.Fatal("unset bounds must not emit a parameter")
	}
	if v.Get("qcDensity") != "true" {
		t.Fatalf("unexpected qcDensity: %q", v.Get("qcDensity"))
	}
	if _, present := v["qcMi"]; present {
		t.Fatal("false flags must not emit a parameter")
	}
}

func TestBuildDatesAreUTCCalendarDays(t *testing.T) {
	// 2023-10-25 14:00 UTC stays on the 25th regardless of local offset
	from := time.Date(2023, 10, 25, 14, 0, 0, 0, time.UTC)
	offset := time.FixedZone("UTC+10", 10*3600)
	to := time.Date(2023, 11, 1, 5, 0, 0, 0, offset) // 2023-10-31 19:00 UTC

	state := types.FilterState{DateRange: types.DateRange{From: &from, To: &to}}
	v := Build(state, "")

	if v.Get("startDate") != "2023-10-25" {
		t.Fatalf("unexpected startDate: %q", v.Get("startDate"))
	}
	if v.Get("endDate") != "2023-10-31" {
		t.Fatalf("unexpected endDate: %q", v.Get("endDate"))
	}
}

func TestBuildSpecUsesCanonicalToken(t *testing.T) {
	v := BuildSpec(types.FilterState{}, types.SortSpec{Field: "density", Direction: types.Descending})
	if v.Get("sort") != "density,desc" {
		t.Fatalf("unexpected sort token: %q", v.Get("sort"))
	}
}

func TestBuildSearchTextAndLots(t *testing.T) {
	state := types.FilterState{
		SearchQuery: "hdpe",
		Lots:        []string{"100", "Batch"},
	}
	v := Build(state, "")
	if v.Get("searchText") != "hdpe" {
		t.Fatalf("unexpected searchText: %q", v.Get("searchText"))
	}
	if v.Get("lots") != "100,Batch" {
		t.Fatalf("unexpected lots: %q", v.Get("lots"))
	}
}
