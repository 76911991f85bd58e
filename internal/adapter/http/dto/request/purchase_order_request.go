package request

import (
	"time"

	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase"
)

type PurchaseOrderItemRequest struct {
	Name string `json:"name" binding:"required"`
	Qty  int    `json:"qty" binding:"required"`
}

// PurchaseOrderRequest bundles pending requisitions against one supplier.
// Items and totalItems may be omitted; they are derived from the selected
// requisitions. ETA defaults server-side when absent.
type PurchaseOrderRequest struct {
	SupplierName   string                     `json:"supplierName" binding:"required"`
	SupplierID     string                     `json:"supplierId"`
	RequisitionIDs []string                   `json:"requisitionIds" binding:"required"`
	Items          []PurchaseOrderItemRequest `json:"items"`
	TotalItems     int                        `json:"totalItems"`
	ETA            *time.Time                 `json:"eta"`
}

func (r PurchaseOrderRequest) ToInput() usecase.PurchaseOrderInput {
	items := make([]entities.PurchaseOrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.PurchaseOrderItem{Name: it.Name, Qty: it.Qty})
	}
	return usecase.PurchaseOrderInput{
		SupplierName:   r.SupplierName,
		SupplierID:     r.SupplierID,
		RequisitionIDs: r.RequisitionIDs,
		Items:          items,
		TotalItems:     r.TotalItems,
		ETA:            r.ETA,
	}
}
