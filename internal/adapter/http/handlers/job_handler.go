package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	request "workshop_jobs/internal/adapter/http/dto/request"
	response "workshop_jobs/internal/adapter/http/dto/response"
	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase"
	"workshop_jobs/pkg"
)

var (
	errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)
	errInvalidJobID      = pkg.NewDomainErrorSimple("INVALID_JOB_ID", "Invalid job id", http.StatusBadRequest)
)

// JobHandler drives the mechanic job workflow over the job store: intake,
// stage movement, labor tracking, parts consumption, billing and delivery.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// CreateJob registers a new intake from the new-job screen.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.CreateJob(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJob(job))
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.usecase.ListJobs(c.Request.Context())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

func (h *JobHandler) GetJob(c *gin.Context) {
	h.withJobID(c, func(id int64) (entities.Job, error) {
		return h.usecase.GetJob(c.Request.Context(), id)
	})
}

// UpdateJob applies draft edits without recording a milestone.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var payload request.UpdateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}
	h.withJobID(c, func(id int64) (entities.Job, error) {
		return h.usecase.UpdateJob(c.Request.Context(), id, payload.ToPatch())
	})
}

func (h *JobHandler) SetActiveJob(c *gin.Context) {
	h.withJobID(c, func(id int64) (entities.Job, error) {
		return h.usecase.SetActiveJob(c.Request.Context(), id)
	})
}

// AdvanceStage moves the job exactly one stage forward.
func (h *JobHandler) AdvanceStage(c *gin.Context) {
	h.withJobID(c, func(id int64) (entities.Job, error) {
		return h.usecase.AdvanceStage(c.Request.Context(), id)
	})
}

// UpdateJobStatus moves the job to an explicit stage.
func (h *JobHandler) UpdateJobStatus(c *gin.Context) {
	var payload request.JobStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}
	h.withJobID(c, func(id int64) (entities.Job, error) {
		return h.usecase.UpdateJobStatus(c.Request.Context(), id, entities.JobStatus(payload.Status), payload.Description)
	})
}

func (h *JobHandler) AddAuditLog(c *gin.Context) {
	var payload request.AuditLogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}
	h.withJobID(c, func(id int64) (entities.Job, error) {
		return h.usecase.AddAuditLog(c.Request.Context(), id, usecase.AuditInput{
			User:    payload.User,
			Action:  payload.Action,
			Details: payload.Details,
		})
	})
}

func (h *JobHandler) StartWork(c *gin.Context) {
	h.withJobID(c, func(id int64) (entities.Job, error) {
		return h.usecase.StartWork(c.Request.Context(), id)
	})
}

func (h *JobHandler) StopWork(c *gin.Context) {
	var payload request.StopWorkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}
	h.withJobID(c, func(id int64) (entities.Job, error) {
		return h.usecase.StopWork(c.Request.Context(), id, payload.DurationMinutes)
	})
}

func (h *JobHandler) LogPartsConsumption(c *gin.Context) {
	var payload request.ConsumptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}
	h.withJobID(c, func(id int64) (entities.Job, error) {
		return h.usecase.LogPartsConsumption(c.Request.Context(), id, payload.RequisitionID, payload.Qty)
	})
}

func (h *JobHandler) GenerateInvoice(c *gin.Context) {
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}
	h.withJobID(c, func(id int64) (entities.Job, error) {
		return h.usecase.GenerateInvoice(c.Request.Context(), id, payload.ToInput())
	})
}

func (h *JobHandler) PayInvoice(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}
	h.withJobID(c, func(id int64) (entities.Job, error) {
		return h.usecase.PayInvoice(c.Request.Context(), id, usecase.PaymentInput{
			Method:        payload.Method,
			TransactionID: payload.TransactionID,
		})
	})
}

func (h *JobHandler) DeliverVehicle(c *gin.Context) {
	var payload request.DeliveryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}
	h.withJobID(c, func(id int64) (entities.Job, error) {
		return h.usecase.DeliverVehicle(c.Request.Context(), id, usecase.DeliveryInput{
			ReceiverName:  payload.ReceiverName,
			PartsReturned: payload.PartsReturned,
		})
	})
}

func (h *JobHandler) CloseJob(c *gin.Context) {
	h.withJobID(c, func(id int64) (entities.Job, error) {
		return h.usecase.CloseJob(c.Request.Context(), id)
	})
}

// withJobID parses the :id path param, runs op and writes the standard
// job response or the mapped error.
func (h *JobHandler) withJobID(c *gin.Context, op func(id int64) (entities.Job, error)) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(errInvalidJobID.HTTPStatus, errInvalidJobID.ToHTTPError())
		return
	}

	job, err := op(id)
	if err != nil {
		log.Printf("[job][handler] operation failed job_id=%d err=%v", id, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingCustomerName),
		errors.Is(err, usecase.ErrMissingRegistrationNumber),
		errors.Is(err, usecase.ErrInvalidJobStatus),
		errors.Is(err, usecase.ErrInvalidDuration),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidInvoiceTotal),
		errors.Is(err, usecase.ErrMissingPaymentMethod),
		errors.Is(err, usecase.ErrMissingReceiverName),
		errors.Is(err, usecase.ErrMissingAuditUser),
		errors.Is(err, usecase.ErrMissingAuditAction),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found at the payment provider", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequisitionNotFound):
		return pkg.NewDomainErrorSimple("REQUISITION_NOT_FOUND", "Requisition not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobClosed):
		return pkg.NewDomainErrorSimple("JOB_CLOSED", "Job is closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Invalid stage transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateNotApprovable):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_APPROVABLE", "Estimate is not awaiting customer approval", http.StatusConflict)
	case errors.Is(err, usecase.ErrWorkAlreadyStarted):
		return pkg.NewDomainErrorSimple("WORK_ALREADY_STARTED", "Work already started", http.StatusConflict)
	case errors.Is(err, usecase.ErrWorkNotStarted):
		return pkg.NewDomainErrorSimple("WORK_NOT_STARTED", "Work not started", http.StatusConflict)
	case errors.Is(err, usecase.ErrRequisitionNotAvailable):
		return pkg.NewDomainErrorSimple("REQUISITION_NOT_AVAILABLE", "Requisition not available for consumption", http.StatusConflict)
	case errors.Is(err, usecase.ErrConsumptionExceedsQuantity):
		return pkg.NewDomainErrorSimple("CONSUMPTION_EXCEEDS_QUANTITY", "Consumption exceeds requisitioned quantity", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceAlreadyGenerated):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_GENERATED", "Invoice already generated", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceNotGenerated):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_GENERATED", "Invoice not generated", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceAlreadyPaid):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_PAID", "Invoice already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
