package entities

import "time"

// PurchaseOrderStatus is the supplier-facing order state.

type PurchaseOrderStatus string

const (
	PurchaseOrderStatusOrdered  PurchaseOrderStatus = "Ordered"
	PurchaseOrderStatusReceived PurchaseOrderStatus = "Received"
)

// PurchaseOrderItem is one line of a supplier order. Lines mirror the
// bundled requisitions; quantities are not consolidated across jobs.
type PurchaseOrderItem struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// PurchaseOrder bundles one or more requisitions against a single supplier.
// Requisitions are referenced by id, never owned: receipt is a single state
// flip that cascades to every linked requisition.
type PurchaseOrder struct {
	ID             string              `json:"id"`
	SupplierName   string              `json:"supplierName"`
	SupplierID     string              `json:"supplierId,omitempty"`
	RequisitionIDs []string            `json:"requisitionIds"`
	Items          []PurchaseOrderItem `json:"items"`
	TotalItems     int                 `json:"totalItems"`
	Status         PurchaseOrderStatus `json:"status"`
	ETA            time.Time           `json:"eta"`
	CreatedAt      time.Time           `json:"createdAt"`
	ReceivedAt     *time.Time          `json:"receivedAt,omitempty"`
}
