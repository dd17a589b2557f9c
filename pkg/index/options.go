package index

import (
	"sort"
	"strconv"
	"time"
)

// FilterOptions is the payload of the filters endpoint: the categorical values
// and observed ranges that bound the UI controls. Ranges are [min, max] string
// pairs; a range key is omitted entirely when no record carries the
// measurement.
type FilterOptions struct {
	Suppliers  []string `json:"suppliers"`
	Grades     []string `json:"grades"`
	Forms      []string `json:"forms"`
	Polymers   []string `json:"polymers"`
	Warehouses []string `json:"warehouses"`
	Locations  []string `json:"locations"`
	Lots       []string `json:"lots"`

	MIRange       []string `json:"miRange,omitempty"`
	DensityRange  []string `json:"densityRange,omitempty"`
	IzodRange     []string `json:"izodRange,omitempty"`
	QuantityRange []string `json:"quantityRange,omitempty"`
	DateRange     []string `json:"dateRange"`
}

// FilterOptions scans the index for distinct non-empty categorical values and
// global measurement ranges.
func (i *Index) FilterOptions() *FilterOptions {
	records := i.All()

	suppliers := map[string]struct{}{}
	grades := map[string]struct{}{}
	forms := map[string]struct{}{}
	polymers := map[string]struct{}{}
	warehouses := map[string]struct{}{}
	locations := map[string]struct{}{}
	lots := map[string]struct{}{}

	var mi, density, izod, qty rangeAcc
	var minDate, maxDate *time.Time

	for _, r := range records {
		addNonEmpty(suppliers, r.SupplierCode)
		addNonEmpty(grades, r.GradeCode)
		addNonEmpty(forms, r.FormCode)
		addNonEmpty(polymers, r.PolymerCode)
		addNonEmpty(locations, r.LocationGroup)

		// Some records carry a blank or placeholder warehouse name; fall back
		// to the location group so every record remains selectable.
		if r.WarehouseName != "" && r.WarehouseName != "??" {
			warehouses[r.WarehouseName] = struct{}{}
		} else {
			addNonEmpty(warehouses, r.LocationGroup)
		}

		if r.LotName != "" {
			lots[r.LotName] = struct{}{}
		} else if r.Lot != 0 {
			lots[strconv.FormatInt(r.Lot, 10)] = struct{}{}
		}

		mi.observePtr(r.MI)
		density.observePtr(r.Density)
		izod.observePtr(r.Izod)
		qty.observe(r.AvailableQty)

		if !r.PanDate.IsZero() {
			if minDate == nil || r.PanDate.Before(*minDate) {
				d := r.PanDate
				minDate = &d
			}
			if maxDate == nil || r.PanDate.After(*maxDate) {
				d := r.PanDate
				maxDate = &d
			}
		}
	}

	opts := &FilterOptions{
		Suppliers:     sortedKeys(suppliers),
		Grades:        sortedKeys(grades),
		Forms:         sortedKeys(forms),
		Polymers:      sortedKeys(polymers),
		Warehouses:    sortedKeys(warehouses),
		Locations:     sortedKeys(locations),
		Lots:          sortedKeys(lots),
		MIRange:       mi.pair(),
		DensityRange:  density.pair(),
		IzodRange:     izod.pair(),
		QuantityRange: qty.pair(),
	}

	today := time.Now().Format("2006-01-02")
	opts.DateRange = []string{today, today}
	if minDate != nil {
		opts.DateRange = []string{minDate.Format("2006-01-02"), maxDate.Format("2006-01-02")}
	}
	return opts
}

type rangeAcc struct {
	min, max float64
	seen     bool
}

func (a *rangeAcc) observe(v float64) {
	if !a.seen || v < a.min {
		a.min = v
	}
	if !a.seen || v > a.max {
		a.max = v
	}
	a.seen = true
}

func (a *rangeAcc) observePtr(v *float64) {
	if v != nil {
		a.observe(*v)
	}
}

func (a *rangeAcc) pair() []string {
	if !a.seen {
		return nil
	}
	return []string{
		strconv.FormatFloat(a.min, 'f', -1, 64),
		strconv.FormatFloat(a.max, 'f', -1, 64),
	}
}

func addNonEmpty(set map[string]struct{}, v string) {
	if v != "" {
		set[v] = struct{}{}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
