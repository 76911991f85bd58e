package response

import (
	"testing"
	"time"

	"workshop_jobs/internal/domain/entities"
)

func TestFromJob(t *testing.T) {
	now := time.Now().UTC()
	j := entities.Job{
		ID:           1700000000000,
		Status:       entities.JobStatusRepairing,
		Vehicle:      entities.Vehicle{RegistrationNumber: "KA-01-AB-1234"},
		CustomerName: "Ravi Kumar",
		Estimate: entities.Estimate{
			EstimatedLaborTotal: 1000,
			EstimatedPartsTotal: 12100,
			EstimatedTotal:      13100,
		},
		IsWorking:      true,
		ActualLaborMin: 75,
		Milestones:     []entities.Milestone{{Type: "created", Timestamp: now}},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	res := FromJob(j)
	if res.ID != j.ID || res.Status != "repairing" {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	if res.Vehicle.RegistrationNumber != "KA-01-AB-1234" || res.CustomerName != "Ravi Kumar" {
		t.Fatalf("unexpected intake fields: %+v", res)
	}
	if res.Estimate.EstimatedTotal != 13100 {
		t.Fatalf("unexpected estimate: %+v", res.Estimate)
	}
	if !res.IsWorking || res.ActualLaborMin != 75 {
		t.Fatalf("unexpected labor fields: %+v", res)
	}
	if len(res.Milestones) != 1 {
		t.Fatalf("unexpected milestones: %+v", res.Milestones)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromPurchaseOrder(t *testing.T) {
	now := time.Now().UTC()
	po := entities.PurchaseOrder{
		ID:             "PO-4F2A91C3",
		SupplierName:   "AutoParts Ltd",
		RequisitionIDs: []string{"REQ-AB12CD34"},
		Items:          []entities.PurchaseOrderItem{{Name: "Clutch Plate", Qty: 1}},
		TotalItems:     1,
		Status:         entities.PurchaseOrderStatusOrdered,
		ETA:            now.Add(48 * time.Hour),
		CreatedAt:      now,
	}

	res := FromPurchaseOrder(po)
	if res.ID != "PO-4F2A91C3" || res.Status != "Ordered" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.RequisitionIDs) != 1 || len(res.Items) != 1 || res.TotalItems != 1 {
		t.Fatalf("unexpected item fields: %+v", res)
	}
	if res.ReceivedAt != nil {
		t.Fatalf("expected nil receivedAt, got %v", res.ReceivedAt)
	}
}
