package response

import (
	"time"

	"workshop_jobs/internal/domain/entities"
)

// JobResponse is the API view of a job. Nested value types reuse the entity
// shapes; their JSON tags are part of the persisted layout and the API keeps
// the same field names.
type JobResponse struct {
	ID                int64                     `json:"id"`
	Status            string                    `json:"status"`
	Vehicle           entities.Vehicle          `json:"vehicle"`
	CustomerName      string                    `json:"customerName"`
	CustomerContactNo string                    `json:"customerContactNo,omitempty"`
	CustomerEmail     string                    `json:"customerEmail,omitempty"`
	InspectionNotes   string                    `json:"inspectionNotes,omitempty"`
	Symptoms          string                    `json:"symptoms,omitempty"`
	Estimate          entities.Estimate         `json:"estimate"`
	PartRequisitions  []entities.Requisition    `json:"partRequisitions,omitempty"`
	IsWorking         bool                      `json:"isWorking"`
	RepairStartTime   *time.Time                `json:"repairStartTime,omitempty"`
	ActualLaborMin    int                       `json:"actualLaborMinutes"`
	Invoice           *entities.Invoice         `json:"invoice,omitempty"`
	DeliveredAt       *time.Time                `json:"deliveredAt,omitempty"`
	DeliveryDetails   *entities.DeliveryDetails `json:"deliveryDetails,omitempty"`
	Milestones        []entities.Milestone      `json:"milestones"`
	AuditLog          []entities.AuditEntry     `json:"auditLog,omitempty"`
	Approvals         entities.Approvals        `json:"approvals"`
	CreatedAt         time.Time                 `json:"createdAt"`
	UpdatedAt         time.Time                 `json:"updatedAt"`
}

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		ID:                j.ID,
		Status:            string(j.Status),
		Vehicle:           j.Vehicle,
		CustomerName:      j.CustomerName,
		CustomerContactNo: j.CustomerContactNo,
		CustomerEmail:     j.CustomerEmail,
		InspectionNotes:   j.InspectionNotes,
		Symptoms:          j.Symptoms,
		Estimate:          j.Estimate,
		PartRequisitions:  j.PartRequisitions,
		IsWorking:         j.IsWorking,
		RepairStartTime:   j.RepairStartTime,
		ActualLaborMin:    j.ActualLaborMin,
		Invoice:           j.Invoice,
		DeliveredAt:       j.DeliveredAt,
		DeliveryDetails:   j.DeliveryDetails,
		Milestones:        j.Milestones,
		AuditLog:          j.AuditLog,
		Approvals:         j.Approvals,
		CreatedAt:         j.CreatedAt,
		UpdatedAt:         j.UpdatedAt,
	}
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}
