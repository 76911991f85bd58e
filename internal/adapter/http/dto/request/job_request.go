package request

import (
	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase"
)

type VehicleRequest struct {
	RegistrationNumber string `json:"registrationNumber" binding:"required"`
	Make               string `json:"make"`
	Model              string `json:"model"`
	Year               int    `json:"year"`
	KmReading          int    `json:"kmReading"`
}

type LaborItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Hours       float64 `json:"hours"`
	Rate        float64 `json:"rate"`
}

type PartRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity int     `json:"quantity" binding:"required"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Source   string  `json:"source"`
	LeadTime string  `json:"leadTime"`
}

// CreateJobRequest is the intake payload from the new-job screen.
type CreateJobRequest struct {
	Vehicle           VehicleRequest     `json:"vehicle" binding:"required"`
	CustomerName      string             `json:"customerName" binding:"required"`
	CustomerContactNo string             `json:"customerContactNo"`
	CustomerEmail     string             `json:"customerEmail"`
	InspectionNotes   string             `json:"inspectionNotes"`
	Symptoms          string             `json:"symptoms"`
	LaborItems        []LaborItemRequest `json:"laborItems"`
	Parts             []PartRequest      `json:"parts"`
}

func (r CreateJobRequest) ToInput() usecase.CreateJobInput {
	return usecase.CreateJobInput{
		Vehicle:           r.Vehicle.toEntity(),
		CustomerName:      r.CustomerName,
		CustomerContactNo: r.CustomerContactNo,
		CustomerEmail:     r.CustomerEmail,
		InspectionNotes:   r.InspectionNotes,
		Symptoms:          r.Symptoms,
		LaborItems:        toLaborItems(r.LaborItems),
		Parts:             toParts(r.Parts),
	}
}

// UpdateJobRequest carries draft edits; absent fields are left untouched.
type UpdateJobRequest struct {
	Vehicle           *VehicleRequest     `json:"vehicle"`
	CustomerName      *string             `json:"customerName"`
	CustomerContactNo *string             `json:"customerContactNo"`
	CustomerEmail     *string             `json:"customerEmail"`
	InspectionNotes   *string             `json:"inspectionNotes"`
	Symptoms          *string             `json:"symptoms"`
	LaborItems        *[]LaborItemRequest `json:"laborItems"`
	Parts             *[]PartRequest      `json:"parts"`
}

func (r UpdateJobRequest) ToPatch() usecase.JobPatch {
	patch := usecase.JobPatch{
		CustomerName:      r.CustomerName,
		CustomerContactNo: r.CustomerContactNo,
		CustomerEmail:     r.CustomerEmail,
		InspectionNotes:   r.InspectionNotes,
		Symptoms:          r.Symptoms,
	}
	if r.Vehicle != nil {
		v := r.Vehicle.toEntity()
		patch.Vehicle = &v
	}
	if r.LaborItems != nil {
		items := toLaborItems(*r.LaborItems)
		patch.LaborItems = &items
	}
	if r.Parts != nil {
		parts := toParts(*r.Parts)
		patch.Parts = &parts
	}
	return patch
}

type JobStatusRequest struct {
	Status      string `json:"status" binding:"required"`
	Description string `json:"description"`
}

type AuditLogRequest struct {
	User    string `json:"user" binding:"required"`
	Action  string `json:"action" binding:"required"`
	Details string `json:"details"`
}

type StopWorkRequest struct {
	DurationMinutes int `json:"durationMinutes"`
}

type ConsumptionRequest struct {
	RequisitionID string `json:"requisitionId" binding:"required"`
	Qty           int    `json:"qty" binding:"required"`
}

type InvoiceRequest struct {
	LaborSubtotal float64            `json:"laborSubtotal"`
	PartsSubtotal float64            `json:"partsSubtotal"`
	Tax           float64            `json:"tax"`
	FinalTotal    float64            `json:"finalTotal" binding:"required"`
	LaborItems    []LaborItemRequest `json:"laborItems"`
	Parts         []PartRequest      `json:"parts"`
}

func (r InvoiceRequest) ToInput() usecase.InvoiceInput {
	return usecase.InvoiceInput{
		LaborSubtotal: r.LaborSubtotal,
		PartsSubtotal: r.PartsSubtotal,
		Tax:           r.Tax,
		FinalTotal:    r.FinalTotal,
		LaborItems:    toLaborItems(r.LaborItems),
		Parts:         toParts(r.Parts),
	}
}

type PaymentRequest struct {
	Method        string `json:"method" binding:"required"`
	TransactionID string `json:"transactionId"`
}

type DeliveryRequest struct {
	ReceiverName  string `json:"receiverName" binding:"required"`
	PartsReturned bool   `json:"partsReturned"`
}

func (r VehicleRequest) toEntity() entities.Vehicle {
	return entities.Vehicle{
		RegistrationNumber: r.RegistrationNumber,
		Make:               r.Make,
		Model:              r.Model,
		Year:               r.Year,
		KmReading:          r.KmReading,
	}
}

func toLaborItems(in []LaborItemRequest) []entities.LaborItem {
	if len(in) == 0 {
		return nil
	}
	out := make([]entities.LaborItem, 0, len(in))
	for _, li := range in {
		out = append(out, entities.LaborItem{
			Description: li.Description,
			Hours:       li.Hours,
			Rate:        li.Rate,
		})
	}
	return out
}

func toParts(in []PartRequest) []entities.Part {
	if len(in) == 0 {
		return nil
	}
	out := make([]entities.Part, 0, len(in))
	for _, p := range in {
		out = append(out, entities.Part{
			Name:     p.Name,
			Quantity: p.Quantity,
			Price:    p.Price,
			Category: entities.PartCategory(p.Category),
			Source:   entities.PartSource(p.Source),
			LeadTime: p.LeadTime,
		})
	}
	return out
}
