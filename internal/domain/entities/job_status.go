package entities

// JobStatus represents the lifecycle stage of a workshop job.
//
// Domain notes:
//   - The job store is the source of truth for stage transitions.
//   - Stages are ordered; NextStage walks the order one step at a time and
//     the dedicated operations (approve, invoice, pay, deliver, close) target
//     their stage directly. Both paths are validated by the same table.
//   - "pending" is a legacy label produced by older snapshots; it is
//     normalized to draft on load and on any inbound status string.

type JobStatus string

const (
	JobStatusDraft           JobStatus = "draft"
	JobStatusPendingCustomer JobStatus = "pending_customer"
	JobStatusApproved        JobStatus = "approved"
	JobStatusPartsOrdered    JobStatus = "parts_ordered"
	JobStatusRepairing       JobStatus = "repairing"
	JobStatusReadyBilling    JobStatus = "ready_billing"
	JobStatusPaid            JobStatus = "paid"
	JobStatusCompleted       JobStatus = "completed"
	JobStatusClosed          JobStatus = "closed"
)

// legacyStatusPending is still found in snapshots written by earlier versions.
const legacyStatusPending JobStatus = "pending"

// StageOrder is the linear stage progression used by the advance operation.
var StageOrder = []JobStatus{
	JobStatusDraft,
	JobStatusPendingCustomer,
	JobStatusApproved,
	JobStatusPartsOrdered,
	JobStatusRepairing,
	JobStatusReadyBilling,
	JobStatusPaid,
	JobStatusCompleted,
	JobStatusClosed,
}

// allowedTransitions is the single authority for stage movement.
// approved -> repairing skips parts_ordered when nothing needs procurement.
var allowedTransitions = map[JobStatus][]JobStatus{
	JobStatusDraft:           {JobStatusPendingCustomer},
	JobStatusPendingCustomer: {JobStatusApproved},
	JobStatusApproved:        {JobStatusPartsOrdered, JobStatusRepairing},
	JobStatusPartsOrdered:    {JobStatusRepairing},
	JobStatusRepairing:       {JobStatusReadyBilling},
	JobStatusReadyBilling:    {JobStatusPaid},
	JobStatusPaid:            {JobStatusCompleted},
	JobStatusCompleted:       {JobStatusClosed},
	JobStatusClosed:          {},
}

// NormalizeJobStatus maps legacy labels onto the closed stage set.
func NormalizeJobStatus(s JobStatus) JobStatus {
	if s == legacyStatusPending {
		return JobStatusDraft
	}
	return s
}

// IsValidJobStatus reports whether s (after normalization) is a known stage.
func IsValidJobStatus(s JobStatus) bool {
	s = NormalizeJobStatus(s)
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransition reports whether moving from one stage to another is legal.
func CanTransition(from, to JobStatus) bool {
	for _, next := range allowedTransitions[NormalizeJobStatus(from)] {
		if next == NormalizeJobStatus(to) {
			return true
		}
	}
	return false
}

// NextStage returns the stage that follows s in the linear order.
// ok is false when s is terminal or unknown.
func NextStage(s JobStatus) (next JobStatus, ok bool) {
	s = NormalizeJobStatus(s)
	for i, stage := range StageOrder {
		if stage == s && i+1 < len(StageOrder) {
			return StageOrder[i+1], true
		}
	}
	return "", false
}

// IsTerminal reports whether no further transition leaves s.
func (s JobStatus) IsTerminal() bool {
	return NormalizeJobStatus(s) == JobStatusClosed
}
