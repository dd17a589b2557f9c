package index

import (
	"sort"
	"strings"

	"github.com/sunrise-ims/inventory-finder/pkg/types"
)

// SortRecords orders records in place by the given spec. The sort is stable
// and records missing the sorted measurement go last regardless of direction,
// so N/A rows never crowd out real values at the top of either ordering.
func SortRecords(records []*types.InventoryRecord, spec types.SortSpec) {
	cmp := comparator(spec.Field)
	if cmp == nil {
		cmp = comparator(types.DefaultSort.Field)
	}
	desc := spec.Direction == types.Descending
	sort.SliceStable(records, func(a, b int) bool {
		c, missing := cmp(records[a], records[b])
		if missing != 0 {
			// One side has no value; keep it last either way.
			return missing < 0
		}
		if desc {
			return c > 0
		}
		return c < 0
	})
}

// recordCompare reports order between two records: c is the usual -1/0/1 and
// missing is non-zero when exactly one side lacks the value (-1 keeps a
// before b).
type recordCompare func(a, b *types.InventoryRecord) (c int, missing int)

func comparator(field string) recordCompare {
	switch field {
	case "panDate":
		return func(a, b *types.InventoryRecord) (int, int) {
			return a.PanDate.Compare(b.PanDate), 0
		}
	case "availableQty":
		return func(a, b *types.InventoryRecord) (int, int) {
			return compareFloat(a.AvailableQty, b.AvailableQty), 0
		}
	case "meltIndex":
		return func(a, b *types.InventoryRecord) (int, int) {
			return compareOptional(a.MI, b.MI)
		}
	case "density":
		return func(a, b *types.InventoryRecord) (int, int) {
			return compareOptional(a.Density, b.Density)
		}
	case "izodImpact":
		return func(a, b *types.InventoryRecord) (int, int) {
			return compareOptional(a.Izod, b.Izod)
		}
	case "lot":
		return func(a, b *types.InventoryRecord) (int, int) {
			return compareInt(a.Lot, b.Lot), 0
		}
	case "panId":
		return func(a, b *types.InventoryRecord) (int, int) {
			return compareInt(a.PanID, b.PanID), 0
		}
	case "supplierCode":
		return stringComparator(func(r *types.InventoryRecord) string { return r.SupplierCode })
	case "polymerCode":
		return stringComparator(func(r *types.InventoryRecord) string { return r.PolymerCode })
	case "formCode":
		return stringComparator(func(r *types.InventoryRecord) string { return r.FormCode })
	case "gradeCode":
		return stringComparator(func(r *types.InventoryRecord) string { return r.GradeCode })
	case "lotName":
		return stringComparator(func(r *types.InventoryRecord) string { return r.LotName })
	case "warehouseName":
		return stringComparator(func(r *types.InventoryRecord) string { return r.WarehouseName })
	case "locationGroup":
		return stringComparator(func(r *types.InventoryRecord) string { return r.LocationGroup })
	case "brand":
		return stringComparator(func(r *types.InventoryRecord) string { return r.Brand })
	case "purchaseOrder":
		return stringComparator(func(r *types.InventoryRecord) string { return r.PO })
	case "containerNum":
		return stringComparator(func(r *types.InventoryRecord) string { return r.ContainerNum })
	case "packing":
		return stringComparator(func(r *types.InventoryRecord) string { return r.Packing })
	case "rcCompartment":
		return stringComparator(func(r *types.InventoryRecord) string { return r.RcCompartment })
	}
	return nil
}

func stringComparator(get func(*types.InventoryRecord) string) recordCompare {
	return func(a, b *types.InventoryRecord) (int, int) {
		return strings.Compare(get(a), get(b)), 0
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareOptional(a, b *float64) (int, int) {
	switch {
	case a == nil && b == nil:
		return 0, 0
	case a == nil:
		return 0, 1
	case b == nil:
		return 0, -1
	}
	return compareFloat(*a, *b), 0
}
