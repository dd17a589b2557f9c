package filter

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/sunrise-ims/inventory-finder/pkg/types"
)

// Apply filters records against a FilterState in memory. The result preserves
// input order; a record survives only when every clause group passes. This is
// the same contract the remote API implements server side, usable on
// already-fetched data without a round trip.
func Apply(records []*types.InventoryRecord, state types.FilterState) []*types.InventoryRecord {
	out := make([]*types.InventoryRecord, 0, len(records))
	for _, r := range records {
		if Matches(r, state) {
			out = append(out, r)
		}
	}
	return out
}

// Matches evaluates a single record against every clause group.
func Matches(r *types.InventoryRecord, f types.FilterState) bool {
	if len(f.Suppliers) > 0 && !slices.Contains(f.Suppliers, r.SupplierCode) {
		return false
	}
	if len(f.Polymers) > 0 && !slices.Contains(f.Polymers, r.PolymerCode) {
		return false
	}
	if len(f.Forms) > 0 && !slices.Contains(f.Forms, r.FormCode) {
		return false
	}
	if len(f.Grades) > 0 {
		if r.GradeCode == "" || !slices.Contains(f.Grades, r.GradeCode) {
			return false
		}
	}
	if len(f.Folders) > 0 && !slices.Contains(f.Folders, r.FolderCode) {
		return false
	}
	if len(f.Locations) > 0 && !slices.Contains(f.Locations, r.LocationGroup) {
		return false
	}
	// Warehouse name may be blank for some records, so selection matches the
	// name or the location group.
	if len(f.Warehouses) > 0 {
		if !slices.Contains(f.Warehouses, r.WarehouseName) && !slices.Contains(f.Warehouses, r.LocationGroup) {
			return false
		}
	}

	if f.DateRange.From != nil && r.PanDate.Before(*f.DateRange.From) {
		return false
	}
	if f.DateRange.To != nil {
		// The upper bound is a calendar day, inclusive through 23:59:59.999.
		endOfDay := time.Date(
			f.DateRange.To.Year(), f.DateRange.To.Month(), f.DateRange.To.Day(),
			23, 59, 59, 999_000_000, f.DateRange.To.Location(),
		)
		if r.PanDate.After(endOfDay) {
			return false
		}
	}

	// Quality-control-only clauses run before the range clauses: a set flag
	// keeps only records missing that measurement.
	if f.QualityControl.MI && r.MI != nil {
		return false
	}
	if f.MIRange.Active() {
		if r.MI == nil {
			if !f.IncludeNAMI {
				return false
			}
		} else if !f.MIRange.Contains(*r.MI) {
			return false
		}
	}

	if f.QualityControl.Density && r.Density != nil {
		return false
	}
	if f.DensityRange.Active() {
		if r.Density == nil {
			if !f.IncludeNADensity {
				return false
			}
		} else if !f.DensityRange.Contains(*r.Density) {
			return false
		}
	}

	if f.QualityControl.Izod && r.Izod != nil {
		return false
	}
	if f.IzodRange.Active() {
		if r.Izod == nil {
			if !f.IncludeNAIzod {
				return false
			}
		} else if !f.IzodRange.Contains(*r.Izod) {
			return false
		}
	}

	// Quantity is always present, so no N/A case.
	if !f.QuantityRange.Contains(r.AvailableQty) {
		return false
	}

	// Partial lot numbers are valid queries, hence substring matching.
	if len(f.Lots) > 0 {
		lotName := strings.ToLower(r.LotName)
		lotNumber := strconv.FormatInt(r.Lot, 10)
		matched := false
		for _, selected := range f.Lots {
			s := strings.ToLower(selected)
			if strings.Contains(lotName, s) || strings.Contains(lotNumber, s) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if f.SearchQuery != "" {
		q := strings.ToLower(f.SearchQuery)
		if !containsFold(r.PolymerCode, q) &&
			!containsFold(r.GradeCode, q) &&
			!containsFold(r.SupplierCode, q) &&
			!containsFold(r.PO, q) &&
			!containsFold(r.ContainerNum, q) {
			return false
		}
	}

	return true
}

func containsFold(field, loweredQuery string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(strings.ToLower(field), loweredQuery)
}
