package types

import (
	"strings"
	"time"
)

// InventoryRecord is one sellable pan/lot row as served by the inventory view.
// MI, Density and Izod are pointers because any quality-control measurement may
// legitimately be absent ("N/A") for a given record.
type InventoryRecord struct {
	ID           string    `json:"id"`
	PanID        int64     `json:"panId"`
	PanDate      time.Time `json:"panDate"`
	InventoryID  int64     `json:"inventoryId"`
	SupplierID   int64     `json:"supplierId"`
	SupplierCode string    `json:"supplierCode"`
	PO           string    `json:"po"`
	ContainerNum string    `json:"containerNum"`
	FolderID     int64     `json:"folderId"`
	FolderCode   string    `json:"folderCode"`
	Lot          int64     `json:"lot"`
	LotName      string    `json:"lotName"`
	Comment      string    `json:"comment,omitempty"`
	PolymerID    int64     `json:"polymerId"`
	PolymerCode  string    `json:"polymerCode"`
	FormID       int64     `json:"formId"`
	FormCode     string    `json:"formCode"`
	GradeID      int64     `json:"gradeId,omitempty"`
	GradeCode    string    `json:"gradeCode,omitempty"`
	PackID       int64     `json:"packId"`
	Packing      string    `json:"packing"`
	PackLeft     float64   `json:"packLeft"`
	WeightLeft   float64   `json:"weightLeft"`
	PartialLoad  float64   `json:"partialLoad"`
	Descriptor   string    `json:"descriptor,omitempty"`
	Brand        string    `json:"brand,omitempty"`

	Warehouse        int64  `json:"warehouse"`
	WarehouseName    string `json:"warehouseName"`
	WarehouseSection string `json:"warehouseSection,omitempty"`
	LocationGroup    string `json:"locationGroup"`
	RcCompartment    string `json:"rcCompartment"`

	Package                 int64   `json:"package"`
	PanLevelAllocated       float64 `json:"panLevelAllocated"`
	InventoryLevelAllocated float64 `json:"inventoryLevelAllocated"`
	TotalAllocated          float64 `json:"totalAllocated"`
	AvailableQty            float64 `json:"availableQty"`
	AllocationCount         int     `json:"allocationCount"`
	AllocationStatus        string  `json:"allocationStatus"`
	OverAllocatedBy         float64 `json:"overAllocatedBy"`

	MI      *float64 `json:"mi"`
	Density *float64 `json:"density"`
	Izod    *float64 `json:"izod"`

	SampleImages []string `json:"sampleImages,omitempty"`

	AllocatedCustomerCodes      string `json:"allocatedCustomerCodes,omitempty"`
	PanLevelCustomerCodes       string `json:"panLevelCustomerCodes,omitempty"`
	InventoryLevelCustomerCodes string `json:"inventoryLevelCustomerCodes,omitempty"`
	AllocatedPOs                string `json:"allocatedPOs,omitempty"`
	PanLevelPOs                 string `json:"panLevelPOs,omitempty"`
	InventoryLevelPOs           string `json:"inventoryLevelPOs,omitempty"`
	AllocatedAllocationIDs      string `json:"allocatedAllocationIds,omitempty"`
	AllocatedBookNums           string `json:"allocatedBookNums,omitempty"`
	AllocatedContNums           string `json:"allocatedContNums,omitempty"`
	AllocatedSOTypes            string `json:"allocatedSOtypes,omitempty"`
}

// CustomerLevel tags where an allocated customer code was recorded.
type CustomerLevel string

const (
	CustomerLevelPan       CustomerLevel = "pan"
	CustomerLevelInventory CustomerLevel = "inventory"
	CustomerLevelBoth      CustomerLevel = "both"
)

type AllocatedCustomer struct {
	Code  string        `json:"code"`
	Level CustomerLevel `json:"level"`
}

// SplitCodes splits a comma-delimited multi-value field, trimming whitespace
// and dropping empty entries. Order is preserved.
func SplitCodes(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// AllocatedCustomers merges the pan-level, inventory-level and combined
// customer code fields into a deduplicated list, tagging each code with the
// granularity it was recorded at. Pure derivation, no mutation of the record.
func (r *InventoryRecord) AllocatedCustomers() []AllocatedCustomer {
	pan := SplitCodes(r.PanLevelCustomerCodes)
	inv := SplitCodes(r.InventoryLevelCustomerCodes)
	all := SplitCodes(r.AllocatedCustomerCodes)

	panSet := make(map[string]struct{}, len(pan))
	for _, c := range pan {
		panSet[c] = struct{}{}
	}
	invSet := make(map[string]struct{}, len(inv))
	for _, c := range inv {
		invSet[c] = struct{}{}
	}

	seen := make(map[string]struct{})
	result := make([]AllocatedCustomer, 0, len(pan)+len(inv)+len(all))
	merged := make([]string, 0, len(pan)+len(inv)+len(all))
	merged = append(merged, pan...)
	merged = append(merged, inv...)
	merged = append(merged, all...)
	for _, c := range merged {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		_, inPan := panSet[c]
		_, inInv := invSet[c]
		level := CustomerLevelInventory
		if inPan && inInv {
			level = CustomerLevelBoth
		} else if inPan {
			level = CustomerLevelPan
		}
		result = append(result, AllocatedCustomer{Code: c, Level: level})
	}
	return result
}
