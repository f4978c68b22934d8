package services

import (
	"context"
	"fmt"
	"time"

	"github.com/weblynx/backoffice_backend/analytics"
	"github.com/weblynx/backoffice_backend/models"
	"github.com/weblynx/backoffice_backend/repositories"
)

// WorkflowService implements the two-collection derived-write workflows.
// Both are two independent writes with no transaction: if the second write
// fails the first is NOT rolled back and the error is surfaced to the caller
// for manual correction.
type WorkflowService struct {
	store repositories.RecordStore
	now   func() time.Time
}

// NewWorkflowService creates a workflow service over the given store
func NewWorkflowService(store repositories.RecordStore) *WorkflowService {
	return &WorkflowService{store: store, now: time.Now}
}

// ConvertLeadToSale marks the lead converted and creates a zero-amount
// pending sale from the lead's current in-memory snapshot. No re-read or
// compare-and-swap happens: a concurrent edit to the lead between fetch and
// conversion is overwritten. Converting twice creates a second sale.
func (s *WorkflowService) ConvertLeadToSale(ctx context.Context, lead models.Record) (string, error) {
	err := s.store.Update(ctx, "leads", lead.ID(), models.Record{
		"convertedToSale": true,
		"status":          "Converted",
	})
	if err != nil {
		return "", fmt.Errorf("update lead: %w", err)
	}

	saleID, err := s.store.Create(ctx, "sales", models.Record{
		"clientName":    analytics.Str(lead, "name"),
		"project":       "Converted from Lead",
		"amount":        0,
		"date":          s.now().Format("2006-01-02"),
		"paymentStatus": "Pending",
		"executive":     analytics.Str(lead, "executive"),
		"description":   "Converted from lead: " + analytics.Str(lead, "notes"),
		"createdAt":     s.now().Format(time.RFC3339),
	})
	if err != nil {
		// Lead is already marked converted at this point; accepted.
		return "", fmt.Errorf("create sale: %w", err)
	}
	return saleID, nil
}

// CompleteInternship marks the intern completed and writes an internship
// certificate from the intern's snapshot. There is no dedupe: triggering
// completion again produces a second certificate.
func (s *WorkflowService) CompleteInternship(ctx context.Context, intern models.Record) (string, error) {
	err := s.store.Update(ctx, "interns", intern.ID(), models.Record{
		"status":         "Completed",
		"completionDate": s.now().Format(time.RFC3339),
	})
	if err != nil {
		return "", fmt.Errorf("update intern: %w", err)
	}

	endDate := analytics.Str(intern, "endDate")
	if endDate == "" {
		endDate = s.now().Format("2006-01-02")
	}

	certID, err := s.store.Create(ctx, "certificates", models.Record{
		"type":          "Internship",
		"recipientName": analytics.Str(intern, "name"),
		"course":        analytics.Str(intern, "course"),
		"college":       analytics.Str(intern, "college"),
		"startDate":     analytics.Str(intern, "startDate"),
		"endDate":       endDate,
		"performance":   analytics.Num(intern, "performance"),
		"generatedAt":   s.now().Format(time.RFC3339),
	})
	if err != nil {
		// Intern already flipped to Completed; accepted.
		return "", fmt.Errorf("create certificate: %w", err)
	}
	return certID, nil
}
