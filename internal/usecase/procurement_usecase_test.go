package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"workshop_jobs/internal/domain/entities"
)

// approvedFixture creates a job and walks it to approval so its order-needed
// requisitions are pending procurement.
func approvedFixture(t *testing.T) (*Store, *JobUseCase, *ProcurementUseCase, entities.Job) {
	t.Helper()
	store := newTestStore(t)
	jobs := NewJobUseCase(store, nil)
	procurement := NewProcurementUseCase(store)
	job := mustCreateJob(t, jobs)
	job = mustReach(t, jobs, job.ID, entities.JobStatusApproved)
	return store, jobs, procurement, job
}

func pendingReqIDs(t *testing.T, procurement *ProcurementUseCase) []string {
	t.Helper()
	pending, err := procurement.ListPendingRequisitions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ids := make([]string, 0, len(pending))
	for _, req := range pending {
		ids = append(ids, req.ID)
	}
	return ids
}

func TestProcurementUseCase_ListPendingRequisitions(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		procurement := NewProcurementUseCase(newTestStore(t))
		pending, err := procurement.ListPendingRequisitions(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(pending) != 0 {
			t.Fatalf("expected no pending requisitions, got %d", len(pending))
		}
	})

	t.Run("only procure-needed requisitions across jobs", func(t *testing.T) {
		_, jobs, procurement, _ := approvedFixture(t)

		second := mustCreateJob(t, jobs)
		mustReach(t, jobs, second.ID, entities.JobStatusApproved)

		pending, err := procurement.ListPendingRequisitions(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Each fixture job has one in-stock and one order-needed part.
		if len(pending) != 2 {
			t.Fatalf("expected 2 pending requisitions, got %d", len(pending))
		}
		for _, req := range pending {
			if req.Status != entities.RequisitionStatusProcureNeeded {
				t.Fatalf("expected Procure Needed, got %s", req.Status)
			}
			if req.PartName != "Clutch Plate" {
				t.Fatalf("expected only order-needed parts, got %q", req.PartName)
			}
		}
	})
}

func TestProcurementUseCase_CreatePurchaseOrder(t *testing.T) {
	t.Run("missing supplier", func(t *testing.T) {
		procurement := NewProcurementUseCase(newTestStore(t))
		_, err := procurement.CreatePurchaseOrder(context.Background(), PurchaseOrderInput{RequisitionIDs: []string{"REQ-1"}})
		if !errors.Is(err, ErrMissingSupplier) {
			t.Fatalf("expected ErrMissingSupplier, got %v", err)
		}
	})

	t.Run("no requisitions selected", func(t *testing.T) {
		procurement := NewProcurementUseCase(newTestStore(t))
		_, err := procurement.CreatePurchaseOrder(context.Background(), PurchaseOrderInput{SupplierName: "AutoParts Ltd"})
		if !errors.Is(err, ErrNoRequisitionsSelected) {
			t.Fatalf("expected ErrNoRequisitionsSelected, got %v", err)
		}
	})

	t.Run("unknown requisition", func(t *testing.T) {
		procurement := NewProcurementUseCase(newTestStore(t))
		_, err := procurement.CreatePurchaseOrder(context.Background(), PurchaseOrderInput{
			SupplierName:   "AutoParts Ltd",
			RequisitionIDs: []string{"REQ-MISSING1"},
		})
		if !errors.Is(err, ErrRequisitionNotFound) {
			t.Fatalf("expected ErrRequisitionNotFound, got %v", err)
		}
	})

	t.Run("reserved requisition is not orderable", func(t *testing.T) {
		_, _, procurement, job := approvedFixture(t)
		var reservedID string
		for _, req := range job.PartRequisitions {
			if req.Status == entities.RequisitionStatusReserved {
				reservedID = req.ID
			}
		}
		_, err := procurement.CreatePurchaseOrder(context.Background(), PurchaseOrderInput{
			SupplierName:   "AutoParts Ltd",
			RequisitionIDs: []string{reservedID},
		})
		if !errors.Is(err, ErrRequisitionNotPending) {
			t.Fatalf("expected ErrRequisitionNotPending, got %v", err)
		}
	})

	t.Run("success flips requisitions to ordered", func(t *testing.T) {
		_, jobs, procurement, job := approvedFixture(t)
		ids := pendingReqIDs(t, procurement)

		before := time.Now().UTC()
		po, err := procurement.CreatePurchaseOrder(context.Background(), PurchaseOrderInput{
			SupplierName:   "AutoParts Ltd",
			SupplierID:     "SUP-7",
			RequisitionIDs: ids,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(po.ID, "PO-") {
			t.Fatalf("unexpected purchase order id %q", po.ID)
		}
		if po.Status != entities.PurchaseOrderStatusOrdered {
			t.Fatalf("expected Ordered, got %s", po.Status)
		}
		if len(po.Items) != len(ids) || po.Items[0].Name != "Clutch Plate" {
			t.Fatalf("expected items derived from requisitions, got %+v", po.Items)
		}
		if po.TotalItems != 1 {
			t.Fatalf("expected total items 1, got %d", po.TotalItems)
		}
		// Default ETA is roughly two days out.
		if po.ETA.Before(before.Add(47*time.Hour)) || po.ETA.After(before.Add(49*time.Hour)) {
			t.Fatalf("unexpected default ETA %v", po.ETA)
		}

		refreshed, err := jobs.GetJob(context.Background(), job.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, req := range refreshed.PartRequisitions {
			if req.ID != ids[0] {
				continue
			}
			if req.Status != entities.RequisitionStatusOrdered {
				t.Fatalf("expected Ordered requisition, got %s", req.Status)
			}
			if req.POID != po.ID || req.ETA == nil {
				t.Fatalf("expected PO stamp on requisition, got %+v", req)
			}
		}
		if len(pendingReqIDs(t, procurement)) != 0 {
			t.Fatalf("expected no pending requisitions after ordering")
		}
	})

	t.Run("explicit eta and items are honored", func(t *testing.T) {
		_, _, procurement, _ := approvedFixture(t)
		ids := pendingReqIDs(t, procurement)

		eta := time.Now().UTC().Add(5 * 24 * time.Hour)
		po, err := procurement.CreatePurchaseOrder(context.Background(), PurchaseOrderInput{
			SupplierName:   "AutoParts Ltd",
			RequisitionIDs: ids,
			Items:          []entities.PurchaseOrderItem{{Name: "Clutch Plate", Qty: 2}},
			TotalItems:     2,
			ETA:            &eta,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !po.ETA.Equal(eta) {
			t.Fatalf("expected eta %v, got %v", eta, po.ETA)
		}
		if po.TotalItems != 2 || po.Items[0].Qty != 2 {
			t.Fatalf("expected caller items honored, got %+v", po)
		}
	})
}

func TestProcurementUseCase_ReceivePurchaseOrder(t *testing.T) {
	t.Run("unknown po", func(t *testing.T) {
		procurement := NewProcurementUseCase(newTestStore(t))
		_, err := procurement.ReceivePurchaseOrder(context.Background(), "PO-MISSING1")
		if !errors.Is(err, ErrPurchaseOrderNotFound) {
			t.Fatalf("expected ErrPurchaseOrderNotFound, got %v", err)
		}
	})

	t.Run("receipt cascades only to its own requisitions", func(t *testing.T) {
		_, jobs, procurement, first := approvedFixture(t)
		second := mustCreateJob(t, jobs)
		second = mustReach(t, jobs, second.ID, entities.JobStatusApproved)

		var firstReqID, secondReqID string
		for _, req := range first.PartRequisitions {
			if req.Status == entities.RequisitionStatusProcureNeeded {
				firstReqID = req.ID
			}
		}
		for _, req := range second.PartRequisitions {
			if req.Status == entities.RequisitionStatusProcureNeeded {
				secondReqID = req.ID
			}
		}

		poA, err := procurement.CreatePurchaseOrder(context.Background(), PurchaseOrderInput{
			SupplierName:   "AutoParts Ltd",
			RequisitionIDs: []string{firstReqID},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		poB, err := procurement.CreatePurchaseOrder(context.Background(), PurchaseOrderInput{
			SupplierName:   "Gears & Co",
			RequisitionIDs: []string{secondReqID},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		received, err := procurement.ReceivePurchaseOrder(context.Background(), poA.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if received.Status != entities.PurchaseOrderStatusReceived || received.ReceivedAt == nil {
			t.Fatalf("expected received PO, got %+v", received)
		}

		firstAfter, _ := jobs.GetJob(context.Background(), first.ID)
		secondAfter, _ := jobs.GetJob(context.Background(), second.ID)
		for _, req := range firstAfter.PartRequisitions {
			if req.ID == firstReqID && req.Status != entities.RequisitionStatusReceived {
				t.Fatalf("expected Received requisition, got %s", req.Status)
			}
		}
		for _, req := range secondAfter.PartRequisitions {
			if req.ID == secondReqID && req.Status != entities.RequisitionStatusOrdered {
				t.Fatalf("expected untouched requisition on other PO, got %s", req.Status)
			}
		}

		otherPO, err := procurement.GetPurchaseOrder(context.Background(), poB.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if otherPO.Status != entities.PurchaseOrderStatusOrdered {
			t.Fatalf("expected other PO still ordered, got %s", otherPO.Status)
		}
	})

	t.Run("double receipt", func(t *testing.T) {
		_, _, procurement, _ := approvedFixture(t)
		ids := pendingReqIDs(t, procurement)
		po, err := procurement.CreatePurchaseOrder(context.Background(), PurchaseOrderInput{
			SupplierName:   "AutoParts Ltd",
			RequisitionIDs: ids,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := procurement.ReceivePurchaseOrder(context.Background(), po.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err = procurement.ReceivePurchaseOrder(context.Background(), po.ID)
		if !errors.Is(err, ErrPurchaseOrderAlreadyReceived) {
			t.Fatalf("expected ErrPurchaseOrderAlreadyReceived, got %v", err)
		}
	})

	t.Run("received part becomes consumable", func(t *testing.T) {
		_, jobs, procurement, job := approvedFixture(t)
		ids := pendingReqIDs(t, procurement)

		po, err := procurement.CreatePurchaseOrder(context.Background(), PurchaseOrderInput{
			SupplierName:   "AutoParts Ltd",
			RequisitionIDs: ids,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := procurement.ReceivePurchaseOrder(context.Background(), po.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		updated, err := jobs.LogPartsConsumption(context.Background(), job.ID, ids[0], 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, req := range updated.PartRequisitions {
			if req.ID == ids[0] && req.Status != entities.RequisitionStatusConsumed {
				t.Fatalf("expected Consumed, got %s", req.Status)
			}
		}
	})
}

func TestProcurementUseCase_ListPurchaseOrders(t *testing.T) {
	_, _, procurement, _ := approvedFixture(t)
	ids := pendingReqIDs(t, procurement)

	orders, err := procurement.ListPurchaseOrders(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected no purchase orders, got %d", len(orders))
	}

	if _, err := procurement.CreatePurchaseOrder(context.Background(), PurchaseOrderInput{
		SupplierName:   "AutoParts Ltd",
		RequisitionIDs: ids,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	orders, err = procurement.ListPurchaseOrders(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected one purchase order, got %d", len(orders))
	}
}
