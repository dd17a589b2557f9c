package filter

import (
	"github.com/sunrise-ims/inventory-finder/pkg/types"
)

// Key names a FilterState field for Update. Values match the state's JSON
// field names so hosts can route UI edits straight through.
type Key string

const (
	KeySuppliers      Key = "suppliers"
	KeyPolymers       Key = "polymers"
	KeyForms          Key = "forms"
	KeyGrades         Key = "grades"
	KeyFolders        Key = "folders"
	KeyLocations      Key = "locations"
	KeyWarehouses     Key = "warehouses"
	KeyLots           Key = "lots"
	KeyDateRange      Key = "dateRange"
	KeyMIRange        Key = "miRange"
	KeyDensityRange   Key = "densityRange"
	KeyIzodRange      Key = "izodRange"
	KeyQuantityRange  Key = "quantityRange"
	KeySearchQuery    Key = "searchQuery"
	KeyIncludeNAMI    Key = "includeNAMI"
	KeyIncludeNADens  Key = "includeNADensity"
	KeyIncludeNAIzod  Key = "includeNAIzod"
	KeyQualityControl Key = "qualityControl"
)

// Update applies one field change to a FilterState and returns the resulting
// state without mutating the input. Two reconciliation rules run as immediate
// side effects of the change, last writer wins:
//
//   - flipping a quality-control flag on clears the paired range and resets
//     the paired include-N/A flag to its default (true);
//   - setting any bound on an MI/density/izod range clears the paired
//     quality-control flag.
//
// Every other key is a plain replace. Unknown keys and mistyped values leave
// the state unchanged; the caller is expected to pass well-typed input.
func Update(state types.FilterState, key Key, value any) types.FilterState {
	next := state.Clone()

	switch key {
	case KeySuppliers:
		if v, ok := value.([]string); ok {
			next.Suppliers = v
		}
	case KeyPolymers:
		if v, ok := value.([]string); ok {
			next.Polymers = v
		}
	case KeyForms:
		if v, ok := value.([]string); ok {
			next.Forms = v
		}
	case KeyGrades:
		if v, ok := value.([]string); ok {
			next.Grades = v
		}
	case KeyFolders:
		if v, ok := value.([]string); ok {
			next.Folders = v
		}
	case KeyLocations:
		if v, ok := value.([]string); ok {
			next.Locations = v
		}
	case KeyWarehouses:
		if v, ok := value.([]string); ok {
			next.Warehouses = v
		}
	case KeyLots:
		if v, ok := value.([]string); ok {
			next.Lots = v
		}
	case KeyDateRange:
		if v, ok := value.(types.DateRange); ok {
			next.DateRange = v
		}
	case KeyMIRange:
		if v, ok := value.(types.Range[float64]); ok {
			next.MIRange = v
			if v.Active() {
				next.QualityControl.MI = false
			}
		}
	case KeyDensityRange:
		if v, ok := value.(types.Range[float64]); ok {
			next.DensityRange = v
			if v.Active() {
				next.QualityControl.Density = false
			}
		}
	case KeyIzodRange:
		if v, ok := value.(types.Range[float64]); ok {
			next.IzodRange = v
			if v.Active() {
				next.QualityControl.Izod = false
			}
		}
	case KeyQuantityRange:
		if v, ok := value.(types.Range[float64]); ok {
			next.QuantityRange = v
		}
	case KeySearchQuery:
		if v, ok := value.(string); ok {
			next.SearchQuery = v
		}
	case KeyIncludeNAMI:
		if v, ok := value.(bool); ok {
			next.IncludeNAMI = v
		}
	case KeyIncludeNADens:
		if v, ok := value.(bool); ok {
			next.IncludeNADensity = v
		}
	case KeyIncludeNAIzod:
		if v, ok := value.(bool); ok {
			next.IncludeNAIzod = v
		}
	case KeyQualityControl:
		if v, ok := value.(types.QualityControlFlags); ok {
			prev := next.QualityControl
			next.QualityControl = v
			if v.MI && !prev.MI {
				next.MIRange = types.Range[float64]{}
				next.IncludeNAMI = true
			}
			if v.Density && !prev.Density {
				next.DensityRange = types.Range[float64]{}
				next.IncludeNADensity = true
			}
			if v.Izod && !prev.Izod {
				next.IzodRange = types.Range[float64]{}
				next.IncludeNAIzod = true
			}
		}
	}
	return next
}
