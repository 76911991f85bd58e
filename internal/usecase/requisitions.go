package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"workshop_jobs/internal/domain/entities"
)

// buildRequisitions derives the fulfilment records for an approved estimate.
//
// This is a pure 1:1 map over the estimate parts: one requisition per part,
// full quantity, Reserved when the part is declared in stock and Procure
// Needed otherwise. A missing or unrecognized source counts as not in stock.
// No aggregation across duplicate part names and no partial-stock modeling.
func buildRequisitions(job entities.Job, now time.Time) []entities.Requisition {
	if len(job.Estimate.Parts) == 0 {
		return nil
	}

	reqs := make([]entities.Requisition, 0, len(job.Estimate.Parts))
	for _, part := range job.Estimate.Parts {
		status := entities.RequisitionStatusProcureNeeded
		if part.Source == entities.PartSourceInStock {
			status = entities.RequisitionStatusReserved
		}
		reqs = append(reqs, entities.Requisition{
			ID:        displayID("REQ"),
			PartName:  part.Name,
			Qty:       part.Quantity,
			Status:    status,
			Source:    part.Source,
			Timestamp: now,
			JobID:     job.ID,
			RegNo:     job.Vehicle.RegistrationNumber,
		})
	}
	return reqs
}

// displayID builds a human-facing id with a stable prefix and a UUID-derived
// token, e.g. "PO-4F2A91C3".
func displayID(prefix string) string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s-%s", prefix, token)
}
