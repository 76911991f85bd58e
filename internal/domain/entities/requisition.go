package entities

import "time"

// RequisitionStatus tracks a per-part fulfilment record from approval to
// consumption.
//
// Lifecycle:
//   - Procure Needed | Reserved  (set at approval, from the part source)
//   - Ordered                    (purchase order created)
//   - Received                   (purchase order receipt cascade)
//   - Consumed                   (usage logged; Reserved may jump here
//     directly without an Ordered/Received hop)

type RequisitionStatus string

const (
	RequisitionStatusProcureNeeded RequisitionStatus = "Procure Needed"
	RequisitionStatusReserved      RequisitionStatus = "Reserved"
	RequisitionStatusOrdered       RequisitionStatus = "Ordered"
	RequisitionStatusReceived      RequisitionStatus = "Received"
	RequisitionStatusConsumed      RequisitionStatus = "Consumed"
)

// Requisition is generated in one batch at customer approval, one record per
// estimate part. JobID and RegNo are back-references for procurement views;
// the parent job owns the record.
type Requisition struct {
	ID          string            `json:"id"`
	PartName    string            `json:"partName"`
	Qty         int               `json:"qty"`
	Status      RequisitionStatus `json:"status"`
	Source      PartSource        `json:"source,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
	JobID       int64             `json:"jobId"`
	RegNo       string            `json:"regNo,omitempty"`
	POID        string            `json:"poId,omitempty"`
	ETA         *time.Time        `json:"eta,omitempty"`
	ConsumedQty int               `json:"consumedQty"`
}

// Consumable reports whether usage may be logged against the requisition.
func (r Requisition) Consumable() bool {
	switch r.Status {
	case RequisitionStatusReserved, RequisitionStatusReceived, RequisitionStatusConsumed:
		return true
	}
	return false
}

// Remaining is the quantity still available for consumption.
func (r Requisition) Remaining() int {
	return r.Qty - r.ConsumedQty
}
