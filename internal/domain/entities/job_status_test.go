package entities

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to JobStatus }{
		{JobStatusDraft, JobStatusPendingCustomer},
		{JobStatusPendingCustomer, JobStatusApproved},
		{JobStatusApproved, JobStatusPartsOrdered},
		{JobStatusApproved, JobStatusRepairing},
		{JobStatusPartsOrdered, JobStatusRepairing},
		{JobStatusRepairing, JobStatusReadyBilling},
		{JobStatusReadyBilling, JobStatusPaid},
		{JobStatusPaid, JobStatusCompleted},
		{JobStatusCompleted, JobStatusClosed},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Fatalf("expected %s -> %s allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to JobStatus }{
		{JobStatusDraft, JobStatusApproved},
		{JobStatusDraft, JobStatusPaid},
		{JobStatusApproved, JobStatusPendingCustomer},
		{JobStatusRepairing, JobStatusPaid},
		{JobStatusClosed, JobStatusDraft},
		{JobStatusClosed, JobStatusClosed},
		{JobStatusPaid, JobStatusReadyBilling},
	}
	for _, tc := range denied {
		if CanTransition(tc.from, tc.to) {
			t.Fatalf("expected %s -> %s denied", tc.from, tc.to)
		}
	}

	// Legacy labels are normalized on both sides.
	if !CanTransition("pending", JobStatusPendingCustomer) {
		t.Fatalf("expected legacy pending to behave as draft")
	}
}

func TestNextStage(t *testing.T) {
	if next, ok := NextStage(JobStatusDraft); !ok || next != JobStatusPendingCustomer {
		t.Fatalf("expected pending_customer after draft, got %s ok=%v", next, ok)
	}
	if next, ok := NextStage("pending"); !ok || next != JobStatusPendingCustomer {
		t.Fatalf("expected legacy pending to advance as draft, got %s ok=%v", next, ok)
	}
	if _, ok := NextStage(JobStatusClosed); ok {
		t.Fatalf("expected no stage after closed")
	}
	if _, ok := NextStage("painting"); ok {
		t.Fatalf("expected no stage for unknown status")
	}
}

func TestJobStatusIsTerminal(t *testing.T) {
	if !JobStatusClosed.IsTerminal() {
		t.Fatalf("expected closed terminal")
	}
	for _, s := range StageOrder[:len(StageOrder)-1] {
		if s.IsTerminal() {
			t.Fatalf("expected %s not terminal", s)
		}
	}
}
