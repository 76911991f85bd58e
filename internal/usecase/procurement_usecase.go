package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"workshop_jobs/internal/domain/entities"
)

var (
	ErrPurchaseOrderNotFound        = errors.New("purchase order not found")
	ErrPurchaseOrderAlreadyReceived = errors.New("purchase order already received")
	ErrMissingSupplier              = errors.New("missing supplier name")
	ErrNoRequisitionsSelected       = errors.New("no requisitions selected")
	ErrRequisitionNotPending        = errors.New("requisition not pending procurement")
)

// defaultETAWindow is applied when the caller does not give a delivery
// estimate for a new purchase order.
const defaultETAWindow = 48 * time.Hour

// PurchaseOrderInput bundles caller-selected pending requisitions against
// one supplier. Items default to one line per requisition; TotalItems
// defaults to the summed line quantities.
type PurchaseOrderInput struct {
	SupplierName   string
	SupplierID     string
	RequisitionIDs []string
	Items          []entities.PurchaseOrderItem
	TotalItems     int
	ETA            *time.Time
}

// IProcurementUseCase groups pending requisitions into purchase orders and
// reconciles receipt back into requisition state. Receipt is the sole
// transition that unblocks consumption for procured parts.

type IProcurementUseCase interface {
	CreatePurchaseOrder(ctx context.Context, input PurchaseOrderInput) (entities.PurchaseOrder, error)
	ReceivePurchaseOrder(ctx context.Context, poID string) (entities.PurchaseOrder, error)
	GetPurchaseOrder(ctx context.Context, poID string) (entities.PurchaseOrder, error)
	ListPurchaseOrders(ctx context.Context) ([]entities.PurchaseOrder, error)
	ListPendingRequisitions(ctx context.Context) ([]entities.Requisition, error)
}

type ProcurementUseCase struct {
	store *Store
}

var _ IProcurementUseCase = (*ProcurementUseCase)(nil)

func NewProcurementUseCase(store *Store) *ProcurementUseCase {
	return &ProcurementUseCase{store: store}
}

// CreatePurchaseOrder creates the PO and flips every referenced requisition
// to Ordered, stamping it with the PO id and ETA. Requisitions may span
// jobs; identical part names are tracked independently, never consolidated.
func (u *ProcurementUseCase) CreatePurchaseOrder(ctx context.Context, input PurchaseOrderInput) (entities.PurchaseOrder, error) {
	input.SupplierName = strings.TrimSpace(input.SupplierName)
	if input.SupplierName == "" {
		return entities.PurchaseOrder{}, ErrMissingSupplier
	}
	if len(input.RequisitionIDs) == 0 {
		return entities.PurchaseOrder{}, ErrNoRequisitionsSelected
	}

	var created entities.PurchaseOrder
	err := u.store.mutate(ctx, func(snap *entities.Snapshot) error {
		now := time.Now().UTC()
		eta := now.Add(defaultETAWindow)
		if input.ETA != nil {
			eta = input.ETA.UTC()
		}

		selected := make([]*entities.Requisition, 0, len(input.RequisitionIDs))
		for _, reqID := range input.RequisitionIDs {
			req, _ := snap.RequisitionByID(reqID)
			if req == nil {
				return ErrRequisitionNotFound
			}
			if req.Status != entities.RequisitionStatusProcureNeeded {
				return ErrRequisitionNotPending
			}
			selected = append(selected, req)
		}

		items := input.Items
		if len(items) == 0 {
			items = make([]entities.PurchaseOrderItem, 0, len(selected))
			for _, req := range selected {
				items = append(items, entities.PurchaseOrderItem{Name: req.PartName, Qty: req.Qty})
			}
		}
		totalItems := input.TotalItems
		if totalItems == 0 {
			for _, it := range items {
				totalItems += it.Qty
			}
		}

		po := entities.PurchaseOrder{
			ID:             displayID("PO"),
			SupplierName:   input.SupplierName,
			SupplierID:     strings.TrimSpace(input.SupplierID),
			RequisitionIDs: append([]string(nil), input.RequisitionIDs...),
			Items:          items,
			TotalItems:     totalItems,
			Status:         entities.PurchaseOrderStatusOrdered,
			ETA:            eta,
			CreatedAt:      now,
		}

		for _, req := range selected {
			req.Status = entities.RequisitionStatusOrdered
			req.POID = po.ID
			reqETA := eta
			req.ETA = &reqETA
		}

		snap.PurchaseOrders = append(snap.PurchaseOrders, po)
		created = po
		return nil
	})
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	log.Printf("[procurement][usecase] purchase order created po_id=%s supplier=%s requisitions=%d", created.ID, created.SupplierName, len(created.RequisitionIDs))
	return created, nil
}

// ReceivePurchaseOrder flips the PO to Received and cascades every
// requisition stamped with its id to Received. Requisitions on other POs
// are untouched.
func (u *ProcurementUseCase) ReceivePurchaseOrder(ctx context.Context, poID string) (entities.PurchaseOrder, error) {
	poID = strings.TrimSpace(poID)
	if poID == "" {
		return entities.PurchaseOrder{}, ErrPurchaseOrderNotFound
	}

	var received entities.PurchaseOrder
	err := u.store.mutate(ctx, func(snap *entities.Snapshot) error {
		po := snap.PurchaseOrderByID(poID)
		if po == nil {
			return ErrPurchaseOrderNotFound
		}
		if po.Status == entities.PurchaseOrderStatusReceived {
			return ErrPurchaseOrderAlreadyReceived
		}

		now := time.Now().UTC()
		po.Status = entities.PurchaseOrderStatusReceived
		po.ReceivedAt = &now

		for i := range snap.Jobs {
			for j := range snap.Jobs[i].PartRequisitions {
				req := &snap.Jobs[i].PartRequisitions[j]
				if req.POID == po.ID {
					req.Status = entities.RequisitionStatusReceived
				}
			}
		}

		received = *po
		return nil
	})
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	log.Printf("[procurement][usecase] purchase order received po_id=%s", received.ID)
	return received, nil
}

func (u *ProcurementUseCase) GetPurchaseOrder(ctx context.Context, poID string) (entities.PurchaseOrder, error) {
	poID = strings.TrimSpace(poID)
	var po *entities.PurchaseOrder
	u.store.view(func(snap *entities.Snapshot) {
		po = snap.PurchaseOrderByID(poID)
	})
	if po == nil {
		return entities.PurchaseOrder{}, ErrPurchaseOrderNotFound
	}
	return *po, nil
}

func (u *ProcurementUseCase) ListPurchaseOrders(ctx context.Context) ([]entities.PurchaseOrder, error) {
	var orders []entities.PurchaseOrder
	u.store.view(func(snap *entities.Snapshot) {
		orders = snap.PurchaseOrders
	})
	return orders, nil
}

// ListPendingRequisitions collects Procure Needed requisitions across all
// jobs for the procurement screen.
func (u *ProcurementUseCase) ListPendingRequisitions(ctx context.Context) ([]entities.Requisition, error) {
	var pending []entities.Requisition
	u.store.view(func(snap *entities.Snapshot) {
		for _, job := range snap.Jobs {
			for _, req := range job.PartRequisitions {
				if req.Status == entities.RequisitionStatusProcureNeeded {
					pending = append(pending, req)
				}
			}
		}
	})
	return pending, nil
}
