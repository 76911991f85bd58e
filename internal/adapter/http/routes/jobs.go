package routes

import (
	"workshop_jobs/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs         = "/jobs"
	PathCustomerJobs = "/customer/jobs"
)

func addJobRoutes(rg *gin.RouterGroup, jobHandler *handlers.JobHandler, customerHandler *handlers.CustomerJobHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:id", jobHandler.GetJob)
		jobs.PATCH("/:id", jobHandler.UpdateJob)
		jobs.POST("/:id/activate", jobHandler.SetActiveJob)
		jobs.POST("/:id/advance", jobHandler.AdvanceStage)
		jobs.PATCH("/:id/status", jobHandler.UpdateJobStatus)
		jobs.POST("/:id/audit", jobHandler.AddAuditLog)
		jobs.POST("/:id/work/start", jobHandler.StartWork)
		jobs.POST("/:id/work/stop", jobHandler.StopWork)
		jobs.POST("/:id/consumption", jobHandler.LogPartsConsumption)
		jobs.POST("/:id/invoice", jobHandler.GenerateInvoice)
		jobs.POST("/:id/invoice/payment", jobHandler.PayInvoice)
		jobs.POST("/:id/delivery", jobHandler.DeliverVehicle)
		jobs.POST("/:id/close", jobHandler.CloseJob)
	}

	customer := rg.Group(PathCustomerJobs)
	{
		// Visão do cliente: consulta e aprovação do orçamento.
		customer.GET("/:id", customerHandler.GetJob)
		customer.POST("/:id/approval", customerHandler.ApproveEstimate)
	}
}
