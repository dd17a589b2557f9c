package types

import (
	"cmp"
	"time"
)

// Range is a closed numeric interval with optional bounds. A nil bound imposes
// no constraint on that side. When both bounds are set, From <= To is expected
// but not enforced here; the caller clamps input before it reaches the model.
type Range[T cmp.Ordered] struct {
	From *T `json:"from,omitempty"`
	To   *T `json:"to,omitempty"`
}

// Active reports whether at least one bound is set.
func (r Range[T]) Active() bool {
	return r.From != nil || r.To != nil
}

// Contains evaluates from <= v <= to using whichever bounds are defined.
func (r Range[T]) Contains(v T) bool {
	if r.From != nil && v < *r.From {
		return false
	}
	if r.To != nil && v > *r.To {
		return false
	}
	return true
}

// DateRange is a calendar interval. The To bound is inclusive through the end
// of its day; the predicate engine applies that adjustment.
type DateRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

func (r DateRange) Active() bool {
	return r.From != nil || r.To != nil
}

// QualityControlFlags select records whose corresponding measurement is
// missing. Each flag is mutually exclusive with a non-empty range on the same
// attribute; the reconciler in pkg/filter enforces that.
type QualityControlFlags struct {
	MI      bool `json:"mi"`
	Izod    bool `json:"izod"`
	Density bool `json:"density"`
}

// FilterState is the aggregate filter model. Empty sets and unset ranges mean
// "no constraint". A FilterState is a value; copy freely, share never.
type FilterState struct {
	Suppliers  []string `json:"suppliers"`
	Polymers   []string `json:"polymers"`
	Forms      []string `json:"forms"`
	Grades     []string `json:"grades"`
	Folders    []string `json:"folders"`
	Locations  []string `json:"locations"`
	Warehouses []string `json:"warehouses"`
	Lots       []string `json:"lots"`

	DateRange     DateRange      `json:"dateRange"`
	MIRange       Range[float64] `json:"miRange"`
	DensityRange  Range[float64] `json:"densityRange"`
	IzodRange     Range[float64] `json:"izodRange"`
	QuantityRange Range[float64] `json:"quantityRange"`

	SearchQuery string `json:"searchQuery"`

	IncludeNAMI      bool `json:"includeNAMI"`
	IncludeNADensity bool `json:"includeNADensity"`
	IncludeNAIzod    bool `json:"includeNAIzod"`

	QualityControl QualityControlFlags `json:"qualityControl"`
}

// DefaultFilterState is the all-inclusive session start state: no categorical
// constraints, no ranges, and missing measurements included by default.
func DefaultFilterState() FilterState {
	return FilterState{
		IncludeNAMI:      true,
		IncludeNADensity: true,
		IncludeNAIzod:    true,
	}
}

// Clone returns a deep copy. Slice and bound aliasing would break the
// copy-on-write contract of the reconciler.
func (f FilterState) Clone() FilterState {
	out := f
	out.Suppliers = cloneStrings(f.Suppliers)
	out.Polymers = cloneStrings(f.Polymers)
	out.Forms = cloneStrings(f.Forms)
	out.Grades = cloneStrings(f.Grades)
	out.Folders = cloneStrings(f.Folders)
	out.Locations = cloneStrings(f.Locations)
	out.Warehouses = cloneStrings(f.Warehouses)
	out.Lots = cloneStrings(f.Lots)
	out.DateRange = DateRange{From: cloneTime(f.DateRange.From), To: cloneTime(f.DateRange.To)}
	out.MIRange = cloneRange(f.MIRange)
	out.DensityRange = cloneRange(f.DensityRange)
	out.IzodRange = cloneRange(f.IzodRange)
	out.QuantityRange = cloneRange(f.QuantityRange)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneRange[T cmp.Ordered](r Range[T]) Range[T] {
	out := Range[T]{}
	if r.From != nil {
		v := *r.From
		out.From = &v
	}
	if r.To != nil {
		v := *r.To
		out.To = &v
	}
	return out
}
