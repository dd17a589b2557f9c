// Package params owns the query-parameter contract between clients and the
// inventory API: building parameters from a FilterState and decoding them back
// into search criteria. Search and export share this code so that an export
// always covers exactly the result set the user is looking at.
package params

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/sunrise-ims/inventory-finder/pkg/types"
)

// Build serializes a FilterState plus a sort token into API query parameters.
// Only active filters are emitted: empty sets, unset bounds, empty strings and
// false flags produce no parameter, so server-side absence-means-unconstrained
// semantics line up with the client's. Pagination is the caller's concern;
// export requests have none.
func Build(state types.FilterState, sort string) url.Values {
	v := url.Values{}

	if state.SearchQuery != "" {
		v.Set("searchText", state.SearchQuery)
	}

	setList(v, "polymerCodes", state.Polymers)
	setList(v, "suppliers", state.Suppliers)
	setList(v, "formCodes", state.Forms)
	setList(v, "gradeCodes", state.Grades)
	setList(v, "warehouseNames", state.Warehouses)
	setList(v, "locationGroups", state.Locations)
	setList(v, "lots", state.Lots)

	setBound(v, "minMi", state.MIRange.From)
	setBound(v, "maxMi", state.MIRange.To)
	setBound(v, "minDensity", state.DensityRange.From)
	setBound(v, "maxDensity", state.DensityRange.To)
	setBound(v, "minIzod", state.IzodRange.From)
	setBound(v, "maxIzod", state.IzodRange.To)

	// Calendar dates only: truncate the UTC instant to its date portion.
	// Time of day is not filterable and must not shift with timezones.
	if state.DateRange.From != nil {
		v.Set("startDate", state.DateRange.From.UTC().Format("2006-01-02"))
	}
	if state.DateRange.To != nil {
		v.Set("endDate", state.DateRange.To.UTC().Format("2006-01-02"))
	}

	setBound(v, "minQty", state.QuantityRange.From)
	setBound(v, "maxQty", state.QuantityRange.To)

	setFlag(v, "qcMi", state.QualityControl.MI)
	setFlag(v, "qcDensity", state.QualityControl.Density)
	setFlag(v, "qcIzod", state.QualityControl.Izod)

	setFlag(v, "includeNAMI", state.IncludeNAMI)
	setFlag(v, "includeNADensity", state.IncludeNADensity)
	setFlag(v, "includeNAIzod", state.IncludeNAIzod)

	if sort != "" {
		v.Set("sort", sort)
	}

	return v
}

// BuildSpec is Build with a parsed SortSpec.
func BuildSpec(state types.FilterState, sort types.SortSpec) url.Values {
	return Build(state, sort.Token())
}

func setList(v url.Values, key string, values []string) {
	if len(values) > 0 {
		v.Set(key, strings.Join(values, ","))
	}
}

func setBound(v url.Values, key string, bound *float64) {
	if bound != nil {
		v.Set(key, strconv.FormatFloat(*bound, 'f', -1, 64))
	}
}

func setFlag(v url.Values, key string, flag bool) {
	if flag {
		v.Set(key, "true")
	}
}
