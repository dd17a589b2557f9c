package types

import "strings"

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// SortSpec is the parsed form of the compact "field,direction" sort token.
type SortSpec struct {
	Field     string        `json:"field"`
	Direction SortDirection `json:"direction"`
}

// DefaultSort matches the server fallback: newest pans first.
var DefaultSort = SortSpec{Field: "panDate", Direction: Descending}

// legacySorts maps the opaque tokens older clients still send onto SortSpecs.
var legacySorts = map[string]SortSpec{
	"recent":        {Field: "panDate", Direction: Descending},
	"quantity-high": {Field: "availableQty", Direction: Descending},
	"quantity-low":  {Field: "availableQty", Direction: Ascending},
	"supplier":      {Field: "supplierCode", Direction: Ascending},
	"polymer":       {Field: "polymerCode", Direction: Ascending},
	"lot":           {Field: "lot", Direction: Ascending},
}

// SortFieldNames maps UI column keys to the property names the API sorts by.
// Must stay in sync with the server's accepted sort parameters.
var SortFieldNames = map[string]string{
	"polymerCode":   "polymerCode",
	"formCode":      "formCode",
	"gradeCode":     "gradeCode",
	"supplierCode":  "supplierCode",
	"availableQty":  "availableQty",
	"warehouseName": "warehouseName",
	"location":      "locationGroup",
	"density":       "density",
	"mi":            "meltIndex",
	"izod":          "izodImpact",
	"brand":         "brand",
	"date":          "panDate",
	"lot":           "lot",
	"lotName":       "lotName",
	"panId":         "panId",
	"po":            "purchaseOrder",
	"containerNum":  "containerNum",
	"packing":       "packing",
	"compartment":   "rcCompartment",
}

// descendingFirst are the numeric/date-like fields where users usually want
// "biggest/newest first" on the initial click.
var descendingFirst = map[string]struct{}{
	"availableQty": {},
	"panDate":      {},
	"density":      {},
	"meltIndex":    {},
	"izodImpact":   {},
}

// ParseSort resolves a sort token: legacy aliases first, then the generic
// "field,direction" form, then a bare field name defaulting to ascending.
// Empty tokens fall back to the default sort.
func ParseSort(token string) SortSpec {
	if token == "" {
		return DefaultSort
	}
	if spec, ok := legacySorts[token]; ok {
		return spec
	}
	if field, dir, ok := strings.Cut(token, ","); ok {
		spec := SortSpec{Field: field, Direction: Ascending}
		if strings.EqualFold(dir, string(Descending)) {
			spec.Direction = Descending
		}
		return spec
	}
	return SortSpec{Field: token, Direction: Ascending}
}

// Token renders the canonical "field,direction" form.
func (s SortSpec) Token() string {
	return s.Field + "," + string(s.Direction)
}

// Toggle computes the next sort after a column header click. Clicking the
// active column flips direction; clicking a new column applies that field's
// default direction. clickedField may be a UI column key or an API field name.
func Toggle(current SortSpec, clickedField string) SortSpec {
	target := clickedField
	if mapped, ok := SortFieldNames[clickedField]; ok {
		target = mapped
	}
	if current.Field == target {
		next := SortSpec{Field: target, Direction: Ascending}
		if current.Direction == Ascending {
			next.Direction = Descending
		}
		return next
	}
	next := SortSpec{Field: target, Direction: Ascending}
	if _, desc := descendingFirst[target]; desc {
		next.Direction = Descending
	}
	return next
}
