package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "workshop_jobs/internal/adapter/http/dto/request"
	response "workshop_jobs/internal/adapter/http/dto/response"
	"workshop_jobs/internal/usecase"
	"workshop_jobs/pkg"
)

var errInvalidPurchaseOrderPayload = pkg.NewDomainErrorSimple("INVALID_PURCHASE_ORDER_INPUT", "Invalid purchase order payload", http.StatusBadRequest)

// ProcurementHandler drives the procurement screen: pending requisitions
// across jobs, purchase order creation and receipt.

type ProcurementHandler struct {
	usecase usecase.IProcurementUseCase
}

func NewProcurementHandler(uc usecase.IProcurementUseCase) *ProcurementHandler {
	return &ProcurementHandler{usecase: uc}
}

func (h *ProcurementHandler) ListPendingRequisitions(c *gin.Context) {
	reqs, err := h.usecase.ListPendingRequisitions(c.Request.Context())
	if err != nil {
		appErr := mapProcurementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRequisitions(reqs))
}

// CreatePurchaseOrder bundles selected requisitions against one supplier.
func (h *ProcurementHandler) CreatePurchaseOrder(c *gin.Context) {
	var payload request.PurchaseOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPurchaseOrderPayload.HTTPStatus, errInvalidPurchaseOrderPayload.ToHTTPError())
		return
	}

	po, err := h.usecase.CreatePurchaseOrder(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[procurement][handler] create failed supplier=%s err=%v", payload.SupplierName, err)
		appErr := mapProcurementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[procurement][handler] create success po_id=%s supplier=%s", po.ID, po.SupplierName)

	c.JSON(http.StatusCreated, response.FromPurchaseOrder(po))
}

func (h *ProcurementHandler) ListPurchaseOrders(c *gin.Context) {
	orders, err := h.usecase.ListPurchaseOrders(c.Request.Context())
	if err != nil {
		appErr := mapProcurementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPurchaseOrders(orders))
}

func (h *ProcurementHandler) GetPurchaseOrder(c *gin.Context) {
	po, err := h.usecase.GetPurchaseOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProcurementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPurchaseOrder(po))
}

// ReceivePurchaseOrder flips the PO to Received and cascades to its
// requisitions.
func (h *ProcurementHandler) ReceivePurchaseOrder(c *gin.Context) {
	poID := c.Param("id")

	po, err := h.usecase.ReceivePurchaseOrder(c.Request.Context(), poID)
	if err != nil {
		log.Printf("[procurement][handler] receive failed po_id=%s err=%v", poID, err)
		appErr := mapProcurementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[procurement][handler] receive success po_id=%s", po.ID)

	c.JSON(http.StatusOK, response.FromPurchaseOrder(po))
}

func mapProcurementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingSupplier), errors.Is(err, usecase.ErrNoRequisitionsSelected):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPurchaseOrderNotFound):
		return pkg.NewDomainErrorSimple("PURCHASE_ORDER_NOT_FOUND", "Purchase order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequisitionNotFound):
		return pkg.NewDomainErrorSimple("REQUISITION_NOT_FOUND", "Requisition not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequisitionNotPending):
		return pkg.NewDomainErrorSimple("REQUISITION_NOT_PENDING", "Requisition is not pending procurement", http.StatusConflict)
	case errors.Is(err, usecase.ErrPurchaseOrderAlreadyReceived):
		return pkg.NewDomainErrorSimple("PURCHASE_ORDER_ALREADY_RECEIVED", "Purchase order already received", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
