package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weblynx/backoffice_backend/models"
	"github.com/weblynx/backoffice_backend/repositories"
)

var fixedNow = time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

func newFixedWorkflow(store repositories.RecordStore) *WorkflowService {
	svc := NewWorkflowService(store)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestConvertLeadToSale(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemStore()
	svc := newFixedWorkflow(store)

	leadID, err := store.Create(ctx, "leads", models.Record{
		"name":      "Acme Corp",
		"status":    "Interested",
		"executive": "Asha",
		"notes":     "wants a web app",
	})
	require.NoError(t, err)

	lead, err := store.GetOne(ctx, "leads", leadID)
	require.NoError(t, err)

	saleID, err := svc.ConvertLeadToSale(ctx, lead)
	require.NoError(t, err)

	updatedLead, err := store.GetOne(ctx, "leads", leadID)
	require.NoError(t, err)
	assert.Equal(t, true, updatedLead["convertedToSale"])
	assert.Equal(t, "Converted", updatedLead["status"])
	assert.Equal(t, "Asha", updatedLead["executive"], "untouched fields survive the partial update")

	sale, err := store.GetOne(ctx, "sales", saleID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", sale["clientName"])
	assert.Equal(t, "Converted from Lead", sale["project"])
	assert.Equal(t, 0, sale["amount"])
	assert.Equal(t, "2025-03-15", sale["date"])
	assert.Equal(t, "Pending", sale["paymentStatus"])
	assert.Equal(t, "Asha", sale["executive"])
	assert.Equal(t, "Converted from lead: wants a web app", sale["description"])
}

func TestConvertLeadToSaleUsesSnapshotNotStore(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemStore()
	svc := newFixedWorkflow(store)

	leadID, err := store.Create(ctx, "leads", models.Record{"name": "Old Name", "executive": "Asha"})
	require.NoError(t, err)

	snapshot, err := store.GetOne(ctx, "leads", leadID)
	require.NoError(t, err)

	// A concurrent edit lands between fetch and conversion
	require.NoError(t, store.Update(ctx, "leads", leadID, models.Record{"name": "New Name"}))

	saleID, err := svc.ConvertLeadToSale(ctx, snapshot)
	require.NoError(t, err)

	sale, err := store.GetOne(ctx, "sales", saleID)
	require.NoError(t, err)
	assert.Equal(t, "Old Name", sale["clientName"], "the sale is built from the caller's snapshot")
}

func TestConvertLeadTwiceCreatesTwoSales(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemStore()
	svc := newFixedWorkflow(store)

	leadID, err := store.Create(ctx, "leads", models.Record{"name": "Acme Corp"})
	require.NoError(t, err)

	lead, err := store.GetOne(ctx, "leads", leadID)
	require.NoError(t, err)

	_, err = svc.ConvertLeadToSale(ctx, lead)
	require.NoError(t, err)
	_, err = svc.ConvertLeadToSale(ctx, lead)
	require.NoError(t, err)

	sales, err := store.ListAll(ctx, "sales")
	require.NoError(t, err)
	assert.Len(t, sales, 2, "conversion has no dedupe guard")
}

func TestConvertLeadPartialFailureLeavesLeadConverted(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemStore()
	store.FailCreate["sales"] = true
	svc := newFixedWorkflow(store)

	leadID, err := store.Create(ctx, "leads", models.Record{"name": "Acme Corp"})
	require.NoError(t, err)

	lead, err := store.GetOne(ctx, "leads", leadID)
	require.NoError(t, err)

	_, err = svc.ConvertLeadToSale(ctx, lead)
	require.Error(t, err)

	updatedLead, err := store.GetOne(ctx, "leads", leadID)
	require.NoError(t, err)
	assert.Equal(t, true, updatedLead["convertedToSale"],
		"the first write is not rolled back when the second fails")

	sales, err := store.ListAll(ctx, "sales")
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestCompleteInternship(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemStore()
	svc := newFixedWorkflow(store)

	internID, err := store.Create(ctx, "interns", models.Record{
		"name":        "Priya",
		"course":      "CS",
		"college":     "IIT",
		"startDate":   "2025-01-01",
		"endDate":     "2025-03-01",
		"performance": 92.0,
		"status":      "Active",
	})
	require.NoError(t, err)

	intern, err := store.GetOne(ctx, "interns", internID)
	require.NoError(t, err)

	certID, err := svc.CompleteInternship(ctx, intern)
	require.NoError(t, err)

	updatedIntern, err := store.GetOne(ctx, "interns", internID)
	require.NoError(t, err)
	assert.Equal(t, "Completed", updatedIntern["status"])
	assert.Equal(t, fixedNow.Format(time.RFC3339), updatedIntern["completionDate"])

	cert, err := store.GetOne(ctx, "certificates", certID)
	require.NoError(t, err)
	assert.Equal(t, "Internship", cert["type"])
	assert.Equal(t, "Priya", cert["recipientName"])
	assert.Equal(t, "CS", cert["course"])
	assert.Equal(t, "IIT", cert["college"])
	assert.Equal(t, "2025-01-01", cert["startDate"])
	assert.Equal(t, "2025-03-01", cert["endDate"])
	assert.Equal(t, 92.0, cert["performance"])
}

func TestCompleteInternshipDefaultsEmptyEndDate(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemStore()
	svc := newFixedWorkflow(store)

	internID, err := store.Create(ctx, "interns", models.Record{"name": "Priya"})
	require.NoError(t, err)

	intern, err := store.GetOne(ctx, "interns", internID)
	require.NoError(t, err)

	certID, err := svc.CompleteInternship(ctx, intern)
	require.NoError(t, err)

	cert, err := store.GetOne(ctx, "certificates", certID)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-15", cert["endDate"], "missing end date defaults to the completion day")
}

func TestCompleteInternshipTwiceCreatesTwoCertificates(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemStore()
	svc := newFixedWorkflow(store)

	internID, err := store.Create(ctx, "interns", models.Record{"name": "Priya"})
	require.NoError(t, err)

	intern, err := store.GetOne(ctx, "interns", internID)
	require.NoError(t, err)

	_, err = svc.CompleteInternship(ctx, intern)
	require.NoError(t, err)
	_, err = svc.CompleteInternship(ctx, intern)
	require.NoError(t, err)

	certs, err := store.ListAll(ctx, "certificates")
	require.NoError(t, err)
	assert.Len(t, certs, 2, "completion has no certificate dedupe")
}
