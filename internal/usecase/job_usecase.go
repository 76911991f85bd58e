package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"
)

var (
	ErrJobNotFound                = errors.New("job not found")
	ErrJobClosed                  = errors.New("job is closed")
	ErrInvalidJobStatus           = errors.New("invalid job status")
	ErrInvalidTransition          = errors.New("invalid stage transition")
	ErrMissingCustomerName        = errors.New("missing customer name")
	ErrMissingRegistrationNumber  = errors.New("missing vehicle registration number")
	ErrEstimateNotApprovable      = errors.New("estimate not awaiting customer approval")
	ErrWorkAlreadyStarted         = errors.New("work already started")
	ErrWorkNotStarted             = errors.New("work not started")
	ErrInvalidDuration            = errors.New("invalid duration")
	ErrRequisitionNotFound        = errors.New("requisition not found")
	ErrRequisitionNotAvailable    = errors.New("requisition not available for consumption")
	ErrConsumptionExceedsQuantity = errors.New("consumption exceeds requisition quantity")
	ErrInvalidQuantity            = errors.New("invalid quantity")
	ErrInvoiceAlreadyGenerated    = errors.New("invoice already generated")
	ErrInvoiceNotGenerated        = errors.New("invoice not generated")
	ErrInvoiceAlreadyPaid         = errors.New("invoice already paid")
	ErrInvalidInvoiceTotal        = errors.New("invalid invoice total")
	ErrMissingPaymentMethod       = errors.New("missing payment method")
	ErrPaymentGatewayUnavailable  = errors.New("payment gateway not configured")
	ErrMissingReceiverName        = errors.New("missing receiver name")
	ErrMissingAuditUser           = errors.New("missing audit user")
	ErrMissingAuditAction         = errors.New("missing audit action")

	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentMethodMercadoPago routes the settlement through the external
// payment gateway; every other method is recorded as settled in-shop.
const PaymentMethodMercadoPago = "mercadopago"

const deliverySignatureMarker = "[signature-on-file]"

// CreateJobInput is the intake payload captured by the new-job screen.
type CreateJobInput struct {
	Vehicle           entities.Vehicle
	CustomerName      string
	CustomerContactNo string
	CustomerEmail     string
	InspectionNotes   string
	Symptoms          string
	LaborItems        []entities.LaborItem
	Parts             []entities.Part
}

// JobPatch shallow-merges draft edits into a job. Nil fields are untouched.
type JobPatch struct {
	Vehicle           *entities.Vehicle
	CustomerName      *string
	CustomerContactNo *string
	CustomerEmail     *string
	InspectionNotes   *string
	Symptoms          *string
	LaborItems        *[]entities.LaborItem
	Parts             *[]entities.Part
}

// AuditInput is one actor-attributed action record.
type AuditInput struct {
	User    string
	Action  string
	Details string
}

// InvoiceInput carries the billing breakdown frozen onto the invoice.
type InvoiceInput struct {
	LaborSubtotal float64
	PartsSubtotal float64
	Tax           float64
	FinalTotal    float64
	LaborItems    []entities.LaborItem
	Parts         []entities.Part
}

// PaymentInput settles a generated invoice.
type PaymentInput struct {
	Method        string
	TransactionID string
}

// DeliveryInput confirms the vehicle handover.
type DeliveryInput struct {
	ReceiverName  string
	PartsReturned bool
}

// IJobUseCase exposes every job-store operation: the mechanic workflow,
// the customer approval step, labor tracking, billing and delivery.
//
// Unknown job ids fail with ErrJobNotFound and persist nothing; a closed job
// rejects every further mutation with ErrJobClosed.

type IJobUseCase interface {
	CreateJob(ctx context.Context, input CreateJobInput) (entities.Job, error)
	UpdateJob(ctx context.Context, id int64, patch JobPatch) (entities.Job, error)
	UpdateJobStatus(ctx context.Context, id int64, status entities.JobStatus, description string) (entities.Job, error)
	AdvanceStage(ctx context.Context, id int64) (entities.Job, error)
	AddAuditLog(ctx context.Context, id int64, entry AuditInput) (entities.Job, error)
	ApproveEstimate(ctx context.Context, id int64) (entities.Job, error)
	StartWork(ctx context.Context, id int64) (entities.Job, error)
	StopWork(ctx context.Context, id int64, durationMinutes int) (entities.Job, error)
	LogPartsConsumption(ctx context.Context, id int64, requisitionID string, qty int) (entities.Job, error)
	GenerateInvoice(ctx context.Context, id int64, input InvoiceInput) (entities.Job, error)
	PayInvoice(ctx context.Context, id int64, input PaymentInput) (entities.Job, error)
	DeliverVehicle(ctx context.Context, id int64, input DeliveryInput) (entities.Job, error)
	CloseJob(ctx context.Context, id int64) (entities.Job, error)
	SetActiveJob(ctx context.Context, id int64) (entities.Job, error)
	GetJob(ctx context.Context, id int64) (entities.Job, error)
	ListJobs(ctx context.Context) ([]entities.Job, error)
}

type JobUseCase struct {
	store   *Store
	gateway interfaces.IPaymentGateway
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(store *Store, gateway interfaces.IPaymentGateway) *JobUseCase {
	return &JobUseCase{store: store, gateway: gateway}
}

// CreateJob registers a new intake in draft with its opening milestone.
// Estimate totals are derived from whatever line items intake captured.
func (u *JobUseCase) CreateJob(ctx context.Context, input CreateJobInput) (entities.Job, error) {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.Vehicle.RegistrationNumber = strings.TrimSpace(input.Vehicle.RegistrationNumber)
	if input.CustomerName == "" {
		return entities.Job{}, ErrMissingCustomerName
	}
	if input.Vehicle.RegistrationNumber == "" {
		return entities.Job{}, ErrMissingRegistrationNumber
	}

	var created entities.Job
	err := u.store.mutate(ctx, func(snap *entities.Snapshot) error {
		now := time.Now().UTC()
		id := now.UnixMilli()
		for snap.JobByID(id) != nil {
			id++
		}

		job := entities.Job{
			ID:                id,
			Status:            entities.JobStatusDraft,
			Vehicle:           input.Vehicle,
			CustomerName:      input.CustomerName,
			CustomerContactNo: strings.TrimSpace(input.CustomerContactNo),
			CustomerEmail:     strings.TrimSpace(input.CustomerEmail),
			InspectionNotes:   input.InspectionNotes,
			Symptoms:          input.Symptoms,
			Estimate: entities.Estimate{
				LaborItems: input.LaborItems,
				Parts:      input.Parts,
			},
			Milestones: []entities.Milestone{{
				Type:        "created",
				Timestamp:   now,
				Description: "Job created",
			}},
			Media:     []string{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		job.Estimate.Recalculate()

		snap.Jobs = append(snap.Jobs, job)
		created = job
		return nil
	})
	if err != nil {
		return entities.Job{}, err
	}
	log.Printf("[job][usecase] created job_id=%d reg_no=%s", created.ID, created.Vehicle.RegistrationNumber)
	return created, nil
}

// UpdateJob applies draft edits. No milestone is recorded; the active-job
// mirror is refreshed when it points at the same job.
func (u *JobUseCase) UpdateJob(ctx context.Context, id int64, patch JobPatch) (entities.Job, error) {
	return u.mutateJob(ctx, id, func(snap *entities.Snapshot, job *entities.Job) error {
		if patch.Vehicle != nil {
			job.Vehicle = *patch.Vehicle
		}
		if patch.CustomerName != nil {
			job.CustomerName = strings.TrimSpace(*patch.CustomerName)
		}
		if patch.CustomerContactNo != nil {
			job.CustomerContactNo = strings.TrimSpace(*patch.CustomerContactNo)
		}
		if patch.CustomerEmail != nil {
			job.CustomerEmail = strings.TrimSpace(*patch.CustomerEmail)
		}
		if patch.InspectionNotes != nil {
			job.InspectionNotes = *patch.InspectionNotes
		}
		if patch.Symptoms != nil {
			job.Symptoms = *patch.Symptoms
		}
		if patch.LaborItems != nil {
			job.Estimate.LaborItems = *patch.LaborItems
		}
		if patch.Parts != nil {
			job.Estimate.Parts = *patch.Parts
		}
		if patch.LaborItems != nil || patch.Parts != nil {
			job.Estimate.Recalculate()
		}
		return nil
	})
}

// UpdateJobStatus moves the job to an explicit stage, validated against the
// transition table, and appends one milestone typed after the new stage.
func (u *JobUseCase) UpdateJobStatus(ctx context.Context, id int64, status entities.JobStatus, description string) (entities.Job, error) {
	status = entities.NormalizeJobStatus(status)
	if !entities.IsValidJobStatus(status) {
		return entities.Job{}, ErrInvalidJobStatus
	}
	return u.mutateJob(ctx, id, func(snap *entities.Snapshot, job *entities.Job) error {
		if !entities.CanTransition(job.Status, status) {
			return ErrInvalidTransition
		}
		job.Status = status
		appendMilestone(job, string(status), description)
		return nil
	})
}

// AdvanceStage moves the job exactly one step forward in the stage order.
func (u *JobUseCase) AdvanceStage(ctx context.Context, id int64) (entities.Job, error) {
	return u.mutateJob(ctx, id, func(snap *entities.Snapshot, job *entities.Job) error {
		next, ok := entities.NextStage(job.Status)
		if !ok || !entities.CanTransition(job.Status, next) {
			return ErrInvalidTransition
		}
		job.Status = next
		appendMilestone(job, string(next), "")
		return nil
	})
}

// AddAuditLog appends a timestamped actor-attributed entry. The job is not
// otherwise mutated and no milestone is recorded.
func (u *JobUseCase) AddAuditLog(ctx context.Context, id int64, entry AuditInput) (entities.Job, error) {
	entry.User = strings.TrimSpace(entry.User)
	entry.Action = strings.TrimSpace(entry.Action)
	if entry.User == "" {
		return entities.Job{}, ErrMissingAuditUser
	}
	if entry.Action == "" {
		return entities.Job{}, ErrMissingAuditAction
	}
	return u.mutateJob(ctx, id, func(snap *entities.Snapshot, job *entities.Job) error {
		job.AuditLog = append(job.AuditLog, entities.AuditEntry{
			User:      entry.User,
			Action:    entry.Action,
			Details:   entry.Details,
			Timestamp: time.Now().UTC(),
		})
		return nil
	})
}

// ApproveEstimate records customer approval and derives the part
// requisitions in one batch: one record per estimate part, Reserved for
// in-stock parts and Procure Needed for everything else.
func (u *JobUseCase) ApproveEstimate(ctx context.Context, id int64) (entities.Job, error) {
	job, err := u.mutateJob(ctx, id, func(snap *entities.Snapshot, job *entities.Job) error {
		if !entities.CanTransition(job.Status, entities.JobStatusApproved) {
			return ErrEstimateNotApprovable
		}
		now := time.Now().UTC()
		job.Status = entities.JobStatusApproved
		job.Approvals.Customer = true
		for i := range job.Estimate.Parts {
			job.Estimate.Parts[i].CustomerApproved = true
		}
		job.PartRequisitions = buildRequisitions(*job, now)
		appendMilestone(job, string(entities.JobStatusApproved), "Customer approved estimate")
		return nil
	})
	if err != nil {
		return entities.Job{}, err
	}
	log.Printf("[job][usecase] estimate approved job_id=%d requisitions=%d", job.ID, len(job.PartRequisitions))
	return job, nil
}

// StartWork opens the repair session: stage repairing, working flag set and
// the wall-clock start recorded for the session timer.
func (u *JobUseCase) StartWork(ctx context.Context, id int64) (entities.Job, error) {
	return u.mutateJob(ctx, id, func(snap *entities.Snapshot, job *entities.Job) error {
		if job.IsWorking {
			return ErrWorkAlreadyStarted
		}
		if job.Status != entities.JobStatusRepairing && !entities.CanTransition(job.Status, entities.JobStatusRepairing) {
			return ErrInvalidTransition
		}
		now := time.Now().UTC()
		if job.Status != entities.JobStatusRepairing {
			job.Status = entities.JobStatusRepairing
			appendMilestone(job, string(entities.JobStatusRepairing), "Repair work started")
		}
		job.IsWorking = true
		job.RepairStartTime = &now
		return nil
	})
}

// StopWork closes the current session and accumulates its duration. The
// session timer is display-only; stored labor changes only here.
func (u *JobUseCase) StopWork(ctx context.Context, id int64, durationMinutes int) (entities.Job, error) {
	if durationMinutes < 0 {
		return entities.Job{}, ErrInvalidDuration
	}
	return u.mutateJob(ctx, id, func(snap *entities.Snapshot, job *entities.Job) error {
		if !job.IsWorking {
			return ErrWorkNotStarted
		}
		job.IsWorking = false
		job.RepairStartTime = nil
		job.ActualLaborMin += durationMinutes
		appendMilestone(job, "work_stopped", fmt.Sprintf("Logged %d min of labor", durationMinutes))
		return nil
	})
}

// LogPartsConsumption records usage against a requisition. Consumption is
// allowed from Reserved or Received (Reserved parts never travel through a
// purchase order) and is capped at the requisitioned quantity.
func (u *JobUseCase) LogPartsConsumption(ctx context.Context, id int64, requisitionID string, qty int) (entities.Job, error) {
	requisitionID = strings.TrimSpace(requisitionID)
	if requisitionID == "" {
		return entities.Job{}, ErrRequisitionNotFound
	}
	if qty <= 0 {
		return entities.Job{}, ErrInvalidQuantity
	}
	return u.mutateJob(ctx, id, func(snap *entities.Snapshot, job *entities.Job) error {
		var req *entities.Requisition
		for i := range job.PartRequisitions {
			if job.PartRequisitions[i].ID == requisitionID {
				req = &job.PartRequisitions[i]
				break
			}
		}
		if req == nil {
			return ErrRequisitionNotFound
		}
		if !req.Consumable() {
			return ErrRequisitionNotAvailable
		}
		if qty > req.Remaining() {
			return ErrConsumptionExceedsQuantity
		}
		req.ConsumedQty += qty
		req.Status = entities.RequisitionStatusConsumed
		job.AuditLog = append(job.AuditLog, entities.AuditEntry{
			User:      "mechanic",
			Action:    "parts_consumed",
			Details:   fmt.Sprintf("%s x%d (%s)", req.PartName, qty, req.ID),
			Timestamp: time.Now().UTC(),
		})
		return nil
	})
}

// GenerateInvoice freezes the billing breakdown onto the job and moves it to
// ready_billing with an unpaid invoice.
func (u *JobUseCase) GenerateInvoice(ctx context.Context, id int64, input InvoiceInput) (entities.Job, error) {
	if input.FinalTotal <= 0 {
		return entities.Job{}, ErrInvalidInvoiceTotal
	}
	return u.mutateJob(ctx, id, func(snap *entities.Snapshot, job *entities.Job) error {
		if job.Invoice != nil {
			return ErrInvoiceAlreadyGenerated
		}
		if !entities.CanTransition(job.Status, entities.JobStatusReadyBilling) {
			return ErrInvalidTransition
		}
		now := time.Now().UTC()
		job.Invoice = &entities.Invoice{
			InvoiceNo:     displayID("INV"),
			GeneratedAt:   now,
			LaborSubtotal: input.LaborSubtotal,
			PartsSubtotal: input.PartsSubtotal,
			Tax:           input.Tax,
			FinalTotal:    input.FinalTotal,
			Status:        entities.InvoiceStatusUnpaid,
			LaborItems:    input.LaborItems,
			Parts:         input.Parts,
		}
		job.Status = entities.JobStatusReadyBilling
		appendMilestone(job, string(entities.JobStatusReadyBilling), fmt.Sprintf("Invoice %s generated", job.Invoice.InvoiceNo))
		return nil
	})
}

// PayInvoice settles the invoice and moves the job to paid. The mercadopago
// method is processed through the payment gateway and records the provider
// payment id as the transaction id; every other method settles in-shop with
// a locally generated transaction id.
func (u *JobUseCase) PayInvoice(ctx context.Context, id int64, input PaymentInput) (entities.Job, error) {
	input.Method = strings.ToLower(strings.TrimSpace(input.Method))
	if input.Method == "" {
		return entities.Job{}, ErrMissingPaymentMethod
	}
	if input.Method == PaymentMethodMercadoPago && u.gateway == nil {
		return entities.Job{}, ErrPaymentGatewayUnavailable
	}
	job, err := u.mutateJob(ctx, id, func(snap *entities.Snapshot, job *entities.Job) error {
		if job.Invoice == nil {
			return ErrInvoiceNotGenerated
		}
		if job.Invoice.Status == entities.InvoiceStatusPaid {
			return ErrInvoiceAlreadyPaid
		}
		if !entities.CanTransition(job.Status, entities.JobStatusPaid) {
			return ErrInvalidTransition
		}

		transactionID := strings.TrimSpace(input.TransactionID)
		if input.Method == PaymentMethodMercadoPago {
			providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, gatewayPayload(job))
			if err != nil {
				log.Printf("[job][usecase] payment gateway failed job_id=%d err=%v", job.ID, err)
				return classifyGatewayError(err)
			}
			log.Printf("[job][usecase] payment gateway success job_id=%d provider_payment_id=%s provider_status=%s", job.ID, providerID, providerStatus)
			transactionID = providerID
		}
		if transactionID == "" {
			transactionID = displayID("TXN")
		}

		now := time.Now().UTC()
		job.Invoice.Status = entities.InvoiceStatusPaid
		job.Invoice.PaymentMethod = input.Method
		job.Invoice.TransactionID = transactionID
		job.Invoice.PaidAt = &now
		job.Status = entities.JobStatusPaid
		appendMilestone(job, string(entities.JobStatusPaid), fmt.Sprintf("Invoice %s paid via %s", job.Invoice.InvoiceNo, input.Method))
		return nil
	})
	if err != nil {
		return entities.Job{}, err
	}
	log.Printf("[job][usecase] invoice paid job_id=%d txn_id=%s method=%s", job.ID, job.Invoice.TransactionID, input.Method)
	return job, nil
}

// DeliverVehicle confirms the handover: receiver recorded, signature marker
// attached, stage completed.
func (u *JobUseCase) DeliverVehicle(ctx context.Context, id int64, input DeliveryInput) (entities.Job, error) {
	input.ReceiverName = strings.TrimSpace(input.ReceiverName)
	if input.ReceiverName == "" {
		return entities.Job{}, ErrMissingReceiverName
	}
	return u.mutateJob(ctx, id, func(snap *entities.Snapshot, job *entities.Job) error {
		if !entities.CanTransition(job.Status, entities.JobStatusCompleted) {
			return ErrInvalidTransition
		}
		now := time.Now().UTC()
		job.Status = entities.JobStatusCompleted
		job.DeliveredAt = &now
		job.DeliveryDetails = &entities.DeliveryDetails{
			ReceiverName:  input.ReceiverName,
			PartsReturned: input.PartsReturned,
			Signature:     deliverySignatureMarker,
		}
		appendMilestone(job, string(entities.JobStatusCompleted), fmt.Sprintf("Vehicle delivered to %s", input.ReceiverName))
		return nil
	})
}

// CloseJob retires a delivered job. closed is terminal: every mutating
// operation rejects the job afterwards.
func (u *JobUseCase) CloseJob(ctx context.Context, id int64) (entities.Job, error) {
	return u.mutateJob(ctx, id, func(snap *entities.Snapshot, job *entities.Job) error {
		if !entities.CanTransition(job.Status, entities.JobStatusClosed) {
			return ErrInvalidTransition
		}
		job.Status = entities.JobStatusClosed
		appendMilestone(job, string(entities.JobStatusClosed), "Job closed")
		return nil
	})
}

// SetActiveJob points the snapshot's active-job mirror at the given job.
func (u *JobUseCase) SetActiveJob(ctx context.Context, id int64) (entities.Job, error) {
	var result entities.Job
	err := u.store.mutate(ctx, func(snap *entities.Snapshot) error {
		job := snap.JobByID(id)
		if job == nil {
			return ErrJobNotFound
		}
		mirror := *job
		snap.ActiveJob = &mirror
		result = *job
		return nil
	})
	if err != nil {
		return entities.Job{}, err
	}
	return result, nil
}

func (u *JobUseCase) GetJob(ctx context.Context, id int64) (entities.Job, error) {
	var job *entities.Job
	u.store.view(func(snap *entities.Snapshot) {
		job = snap.JobByID(id)
	})
	if job == nil {
		return entities.Job{}, ErrJobNotFound
	}
	return *job, nil
}

func (u *JobUseCase) ListJobs(ctx context.Context) ([]entities.Job, error) {
	var jobs []entities.Job
	u.store.view(func(snap *entities.Snapshot) {
		jobs = snap.Jobs
	})
	return jobs, nil
}

// mutateJob wraps store.mutate with the shared per-job guards: the job must
// exist and must not be closed. The active-job mirror is refreshed after fn.
func (u *JobUseCase) mutateJob(ctx context.Context, id int64, fn func(snap *entities.Snapshot, job *entities.Job) error) (entities.Job, error) {
	var result entities.Job
	err := u.store.mutate(ctx, func(snap *entities.Snapshot) error {
		job := snap.JobByID(id)
		if job == nil {
			return ErrJobNotFound
		}
		if job.Status.IsTerminal() {
			return ErrJobClosed
		}
		if err := fn(snap, job); err != nil {
			return err
		}
		job.UpdatedAt = time.Now().UTC()
		if snap.ActiveJob != nil && snap.ActiveJob.ID == job.ID {
			mirror := *job
			snap.ActiveJob = &mirror
		}
		result = *job
		return nil
	})
	if err != nil {
		return entities.Job{}, err
	}
	return result, nil
}

func appendMilestone(job *entities.Job, milestoneType, description string) {
	job.Milestones = append(job.Milestones, entities.Milestone{
		Type:        milestoneType,
		Timestamp:   time.Now().UTC(),
		Description: description,
	})
}

// gatewayPayload builds the provider request for an invoice settlement.
// The invoice in the store is the source of truth for the amount.
func gatewayPayload(job *entities.Job) json.RawMessage {
	payload := map[string]any{
		"transaction_amount": job.Invoice.FinalTotal,
		"description":        fmt.Sprintf("Invoice %s", job.Invoice.InvoiceNo),
		"external_reference": job.Invoice.InvoiceNo,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return json.RawMessage("{}")
	}
	return b
}

// classifyGatewayError folds the provider SDK error into the package-level
// gateway errors so handlers can map them without parsing provider bodies.
func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
