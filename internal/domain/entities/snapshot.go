package entities

// Snapshot is the full persisted state of the job store: every job, the
// currently active job mirror, and all purchase orders. The whole document
// is rewritten on every mutation (write-through, no incremental journaling).
//
// Storage model:
//   - serialized as one JSON document under a single key/row/item
//   - last write wins; there is exactly one logical writer
type Snapshot struct {
	Jobs           []Job           `json:"jobs"`
	ActiveJob      *Job            `json:"activeJob"`
	PurchaseOrders []PurchaseOrder `json:"purchaseOrders"`
}

// Normalize maps legacy status labels in a loaded snapshot onto the closed
// stage set. Called once on load, before the store serves any operation.
func (s *Snapshot) Normalize() {
	for i := range s.Jobs {
		s.Jobs[i].Status = NormalizeJobStatus(s.Jobs[i].Status)
	}
	if s.ActiveJob != nil {
		s.ActiveJob.Status = NormalizeJobStatus(s.ActiveJob.Status)
	}
}

// JobByID returns a pointer into the snapshot's job slice, or nil.
func (s *Snapshot) JobByID(id int64) *Job {
	for i := range s.Jobs {
		if s.Jobs[i].ID == id {
			return &s.Jobs[i]
		}
	}
	return nil
}

// PurchaseOrderByID returns a pointer into the snapshot's PO slice, or nil.
func (s *Snapshot) PurchaseOrderByID(id string) *PurchaseOrder {
	for i := range s.PurchaseOrders {
		if s.PurchaseOrders[i].ID == id {
			return &s.PurchaseOrders[i]
		}
	}
	return nil
}

// RequisitionByID scans every job for the requisition with the given id.
// The second return is the owning job.
func (s *Snapshot) RequisitionByID(id string) (*Requisition, *Job) {
	for i := range s.Jobs {
		for j := range s.Jobs[i].PartRequisitions {
			if s.Jobs[i].PartRequisitions[j].ID == id {
				return &s.Jobs[i].PartRequisitions[j], &s.Jobs[i]
			}
		}
	}
	return nil, nil
}
