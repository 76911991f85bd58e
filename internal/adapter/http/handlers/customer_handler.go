package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	response "workshop_jobs/internal/adapter/http/dto/response"
	"workshop_jobs/internal/usecase"
)

// CustomerJobHandler drives the customer-facing job view: reading the shared
// job card and recording estimate approval. Approval is the step that
// derives the part requisitions and unlocks procurement.

type CustomerJobHandler struct {
	usecase usecase.IJobUseCase
}

func NewCustomerJobHandler(uc usecase.IJobUseCase) *CustomerJobHandler {
	return &CustomerJobHandler{usecase: uc}
}

// GetJob returns the customer view of a shared job card.
func (h *CustomerJobHandler) GetJob(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(errInvalidJobID.HTTPStatus, errInvalidJobID.ToHTTPError())
		return
	}

	job, err := h.usecase.GetJob(c.Request.Context(), id)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// ApproveEstimate records the customer's approval of the estimate.
func (h *CustomerJobHandler) ApproveEstimate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(errInvalidJobID.HTTPStatus, errInvalidJobID.ToHTTPError())
		return
	}
	log.Printf("[customer][handler] approval start job_id=%d", id)

	job, err := h.usecase.ApproveEstimate(c.Request.Context(), id)
	if err != nil {
		log.Printf("[customer][handler] approval failed job_id=%d err=%v", id, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[customer][handler] approval success job_id=%d requisitions=%d", id, len(job.PartRequisitions))

	c.JSON(http.StatusOK, response.FromJob(job))
}
