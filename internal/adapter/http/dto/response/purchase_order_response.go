package response

import (
	"time"

	"workshop_jobs/internal/domain/entities"
)

type PurchaseOrderResponse struct {
	ID             string                       `json:"id"`
	SupplierName   string                       `json:"supplierName"`
	SupplierID     string                       `json:"supplierId,omitempty"`
	RequisitionIDs []string                     `json:"requisitionIds"`
	Items          []entities.PurchaseOrderItem `json:"items"`
	TotalItems     int                          `json:"totalItems"`
	Status         string                       `json:"status"`
	ETA            time.Time                    `json:"eta"`
	CreatedAt      time.Time                    `json:"createdAt"`
	ReceivedAt     *time.Time                   `json:"receivedAt,omitempty"`
}

func FromPurchaseOrder(po entities.PurchaseOrder) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		ID:             po.ID,
		SupplierName:   po.SupplierName,
		SupplierID:     po.SupplierID,
		RequisitionIDs: po.RequisitionIDs,
		Items:          po.Items,
		TotalItems:     po.TotalItems,
		Status:         string(po.Status),
		ETA:            po.ETA,
		CreatedAt:      po.CreatedAt,
		ReceivedAt:     po.ReceivedAt,
	}
}

func FromPurchaseOrders(orders []entities.PurchaseOrder) []PurchaseOrderResponse {
	out := make([]PurchaseOrderResponse, 0, len(orders))
	for _, po := range orders {
		out = append(out, FromPurchaseOrder(po))
	}
	return out
}

type RequisitionResponse struct {
	ID          string     `json:"id"`
	PartName    string     `json:"partName"`
	Qty         int        `json:"qty"`
	Status      string     `json:"status"`
	Source      string     `json:"source,omitempty"`
	Timestamp   time.Time  `json:"timestamp"`
	JobID       int64      `json:"jobId"`
	RegNo       string     `json:"regNo,omitempty"`
	POID        string     `json:"poId,omitempty"`
	ETA         *time.Time `json:"eta,omitempty"`
	ConsumedQty int        `json:"consumedQty"`
}

func FromRequisition(r entities.Requisition) RequisitionResponse {
	return RequisitionResponse{
		ID:          r.ID,
		PartName:    r.PartName,
		Qty:         r.Qty,
		Status:      string(r.Status),
		Source:      string(r.Source),
		Timestamp:   r.Timestamp,
		JobID:       r.JobID,
		RegNo:       r.RegNo,
		POID:        r.POID,
		ETA:         r.ETA,
		ConsumedQty: r.ConsumedQty,
	}
}

func FromRequisitions(reqs []entities.Requisition) []RequisitionResponse {
	out := make([]RequisitionResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, FromRequisition(r))
	}
	return out
}
