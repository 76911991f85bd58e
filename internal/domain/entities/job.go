package entities

import "time"

// PartCategory classifies an estimate line item part.

type PartCategory string

const (
	PartCategoryOEM         PartCategory = "OEM"
	PartCategoryAftermarket PartCategory = "Aftermarket"
	PartCategoryCustom      PartCategory = "Custom"
)

// PartSource declares how an estimate part is fulfilled. Anything other than
// "In Stock" (including an empty source) is treated as needing procurement.

type PartSource string

const (
	PartSourceInStock     PartSource = "In Stock"
	PartSourceOrderNeeded PartSource = "Order Needed"
)

// Vehicle identifies the serviced vehicle at intake time.
type Vehicle struct {
	RegistrationNumber string `json:"registrationNumber"`
	Make               string `json:"make,omitempty"`
	Model              string `json:"model,omitempty"`
	Year               int    `json:"year,omitempty"`
	KmReading          int    `json:"kmReading,omitempty"`
}

// Part is an estimate line item. It has no identity outside its parent job.
type Part struct {
	ID               string       `json:"id,omitempty"`
	Name             string       `json:"name"`
	Quantity         int          `json:"quantity"`
	Price            float64      `json:"price"`
	Category         PartCategory `json:"category,omitempty"`
	Status           string       `json:"status,omitempty"`
	CustomerApproved bool         `json:"customerApproved,omitempty"`
	Source           PartSource   `json:"source,omitempty"`
	LeadTime         string       `json:"leadTime,omitempty"`
}

// LaborItem is a proposed labor line on the estimate.
type LaborItem struct {
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	Rate        float64 `json:"rate"`
}

// Estimate is the mechanic-proposed labor + parts breakdown presented to the
// customer before approval. Totals are derived; Recalculate keeps them
// consistent with the line items.
type Estimate struct {
	LaborItems          []LaborItem `json:"laborItems,omitempty"`
	Labor               float64     `json:"labor"`
	Parts               []Part      `json:"parts,omitempty"`
	EstimatedPartsTotal float64     `json:"estimated_parts_total"`
	EstimatedLaborTotal float64     `json:"estimated_labor_total"`
	EstimatedTotal      float64     `json:"estimated_total"`
}

// Recalculate rederives the estimate totals from its line items.
func (e *Estimate) Recalculate() {
	labor := 0.0
	for _, li := range e.LaborItems {
		labor += li.Hours * li.Rate
	}
	parts := 0.0
	for _, p := range e.Parts {
		parts += float64(p.Quantity) * p.Price
	}
	e.Labor = labor
	e.EstimatedLaborTotal = labor
	e.EstimatedPartsTotal = parts
	e.EstimatedTotal = labor + parts
}

// InvoiceStatus tracks whether the generated invoice has been settled.

type InvoiceStatus string

const (
	InvoiceStatusUnpaid InvoiceStatus = "unpaid"
	InvoiceStatusPaid   InvoiceStatus = "paid"
)

// Invoice exists on a job only after generation.
type Invoice struct {
	InvoiceNo     string        `json:"invoiceNo"`
	GeneratedAt   time.Time     `json:"generatedAt"`
	LaborSubtotal float64       `json:"laborSubtotal"`
	PartsSubtotal float64       `json:"partsSubtotal"`
	Tax           float64       `json:"tax"`
	FinalTotal    float64       `json:"finalTotal"`
	Status        InvoiceStatus `json:"status"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
	TransactionID string        `json:"transactionId,omitempty"`
	PaidAt        *time.Time    `json:"paidAt,omitempty"`
	LaborItems    []LaborItem   `json:"laborItems,omitempty"`
	Parts         []Part        `json:"parts,omitempty"`
}

// Milestone is an append-only, user-facing lifecycle marker. Entries are
// never mutated in place.
type Milestone struct {
	Type        string    `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description,omitempty"`
}

// AuditEntry is the actor-attributed action record (superset of milestones).
type AuditEntry struct {
	User      string    `json:"user"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// DeliveryDetails captures the vehicle handover at the end of the job.
type DeliveryDetails struct {
	ReceiverName  string `json:"receiverName"`
	PartsReturned bool   `json:"partsReturned"`
	Signature     string `json:"signature,omitempty"`
}

// Approvals tracks the two-party sign-off on the estimate.
type Approvals struct {
	Customer bool `json:"customer"`
	Mechanic bool `json:"mechanic"`
}

// Job is the central aggregate: one vehicle service engagement from intake
// to delivery. The job store owns every Job; requisitions are embedded in
// their parent job and only referenced by purchase orders.
//
// Field names keep the persisted snapshot layout stable across versions.
type Job struct {
	ID                int64            `json:"id"`
	Status            JobStatus        `json:"status"`
	Vehicle           Vehicle          `json:"vehicle"`
	CustomerName      string           `json:"customerName"`
	CustomerContactNo string           `json:"customerContactNo,omitempty"`
	CustomerEmail     string           `json:"customerEmail,omitempty"`
	InspectionNotes   string           `json:"inspectionNotes,omitempty"`
	Symptoms          string           `json:"symptoms,omitempty"`
	Estimate          Estimate         `json:"estimate"`
	PartRequisitions  []Requisition    `json:"partRequisitions,omitempty"`
	IsWorking         bool             `json:"isWorking"`
	RepairStartTime   *time.Time       `json:"repairStartTime,omitempty"`
	ActualLaborMin    int              `json:"actualLaborMinutes"`
	Invoice           *Invoice         `json:"invoice,omitempty"`
	DeliveredAt       *time.Time       `json:"deliveredAt,omitempty"`
	DeliveryDetails   *DeliveryDetails `json:"deliveryDetails,omitempty"`
	Milestones        []Milestone      `json:"milestones"`
	AuditLog          []AuditEntry     `json:"auditLog,omitempty"`
	Media             []string         `json:"media"`
	Approvals         Approvals        `json:"approvals"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}
