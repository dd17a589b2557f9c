package params

import (
	"net/url"
	"reflect"
	"time"

	"github.com/gorilla/schema"

	"github.com/sunrise-ims/inventory-finder/pkg/types"
)

// CommaList decodes a single comma-joined parameter into its values.
type CommaList []string

// Criteria is the server-side view of the filter parameters. Field names are
// the wire contract; keep them in sync with Build.
type Criteria struct {
	SearchText string `json:"searchText" schema:"searchText"`

	PolymerCodes   CommaList `json:"polymerCodes" schema:"polymerCodes"`
	FormCodes      CommaList `json:"formCodes" schema:"formCodes"`
	GradeCodes     CommaList `json:"gradeCodes" schema:"gradeCodes"`
	Suppliers      CommaList `json:"suppliers" schema:"suppliers"`
	WarehouseNames CommaList `json:"warehouseNames" schema:"warehouseNames"`
	LocationGroups CommaList `json:"locationGroups" schema:"locationGroups"`
	Lots           CommaList `json:"lots" schema:"lots"`

	MinMi      *float64 `json:"minMi" schema:"minMi"`
	MaxMi      *float64 `json:"maxMi" schema:"maxMi"`
	MinDensity *float64 `json:"minDensity" schema:"minDensity"`
	MaxDensity *float64 `json:"maxDensity" schema:"maxDensity"`
	MinIzod    *float64 `json:"minIzod" schema:"minIzod"`
	MaxIzod    *float64 `json:"maxIzod" schema:"maxIzod"`
	MinQty     *float64 `json:"minQty" schema:"minQty"`
	MaxQty     *float64 `json:"maxQty" schema:"maxQty"`

	QcMi      bool `json:"qcMi" schema:"qcMi"`
	QcDensity bool `json:"qcDensity" schema:"qcDensity"`
	QcIzod    bool `json:"qcIzod" schema:"qcIzod"`

	IncludeNAMI      bool `json:"includeNAMI" schema:"includeNAMI"`
	IncludeNADensity bool `json:"includeNADensity" schema:"includeNADensity"`
	IncludeNAIzod    bool `json:"includeNAIzod" schema:"includeNAIzod"`

	StartDate string `json:"startDate" schema:"startDate"`
	EndDate   string `json:"endDate" schema:"endDate"`
}

// SearchRequest is Criteria plus the pagination and sort surface of the list
// endpoint. Export requests decode bare Criteria instead.
type SearchRequest struct {
	Criteria
	Sort string `json:"sort" schema:"sort,default:recent"`
	Page int    `json:"page" schema:"page"`
	Size int    `json:"size" schema:"size,default:100"`
}

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
	decoder.RegisterConverter(CommaList{}, func(s string) reflect.Value {
		return reflect.ValueOf(CommaList(types.SplitCodes(s)))
	})
}

// Decode parses list-endpoint query parameters.
func Decode(query url.Values) (*SearchRequest, error) {
	sr := &SearchRequest{}
	if err := decoder.Decode(sr, query); err != nil {
		return nil, err
	}
	sr.Sanitize()
	return sr, nil
}

// DecodeCriteria parses export-endpoint query parameters: same filter surface,
// no pagination.
func DecodeCriteria(query url.Values) (*Criteria, string, error) {
	c := &Criteria{}
	if err := decoder.Decode(c, query); err != nil {
		return nil, "", err
	}
	sort := query.Get("sort")
	if sort == "" {
		sort = "recent"
	}
	return c, sort, nil
}

func clamp[T int | float64](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func (s *SearchRequest) Sanitize() {
	s.Page = clamp(s.Page, 0, 100000)
	s.Size = clamp(s.Size, 1, 1000)
	if s.Sort == "" {
		s.Sort = "recent"
	}
}

// FilterState converts decoded criteria back into the filter model. Flags
// derive strictly from the wire: an absent includeNA parameter means missing
// values do not pass an active range, matching what Build emits.
func (c *Criteria) FilterState() types.FilterState {
	f := types.FilterState{
		SearchQuery:      c.SearchText,
		Suppliers:        c.Suppliers,
		Polymers:         c.PolymerCodes,
		Forms:            c.FormCodes,
		Grades:           c.GradeCodes,
		Warehouses:       c.WarehouseNames,
		Locations:        c.LocationGroups,
		Lots:             c.Lots,
		IncludeNAMI:      c.IncludeNAMI,
		IncludeNADensity: c.IncludeNADensity,
		IncludeNAIzod:    c.IncludeNAIzod,
		QualityControl: types.QualityControlFlags{
			MI:      c.QcMi,
			Density: c.QcDensity,
			Izod:    c.QcIzod,
		},
	}
	f.MIRange = types.Range[float64]{From: c.MinMi, To: c.MaxMi}
	f.DensityRange = types.Range[float64]{From: c.MinDensity, To: c.MaxDensity}
	f.IzodRange = types.Range[float64]{From: c.MinIzod, To: c.MaxIzod}
	f.QuantityRange = types.Range[float64]{From: c.MinQty, To: c.MaxQty}
	f.DateRange = types.DateRange{
		From: parseDate(c.StartDate),
		To:   parseDate(c.EndDate),
	}
	return f
}

// parseDate reads a calendar date; anything unparseable falls back to an
// unset bound rather than an error.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
