package response

import (
	"testing"
	"time"

	"quotebot/internal/domain/entities"
	"quotebot/internal/usecase"
)

func TestFromProject(t *testing.T) {
	now := time.Now().UTC()
	details := entities.ExtractedDetails{Model: entities.StringPtr("PP650")}
	p := entities.Project{
		ID:               "p-1",
		CustomerRequest:  "I need a PP650",
		ExtractedDetails: &details,
		Status:           entities.ProjectStatusPendingExtractionApproval,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	res := FromProject(p)
	if res.ProjectID != "p-1" || res.Status != "pending_extraction_approval" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.AwaitingDecision != entities.ArtifactDetails {
		t.Fatalf("unexpected awaiting decision: %q", res.AwaitingDecision)
	}
	if res.ExtractedDetails == nil || *res.ExtractedDetails.Model != "PP650" {
		t.Fatalf("unexpected details: %+v", res.ExtractedDetails)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}

	p.Status = entities.ProjectStatusCompleted
	if FromProject(p).AwaitingDecision != "" {
		t.Fatalf("completed project awaits nothing")
	}
}

func TestFromProposal(t *testing.T) {
	res := FromProposal(usecase.Proposal{
		ProjectID: "p-1",
		Status:    entities.ProjectStatusPendingEmailApproval,
		Artifact:  entities.ArtifactEmail,
		Value:     "Dear Jane",
		Editable:  "Dear Jane",
	})
	if res.Artifact != "email" || res.Proposed != "Dear Jane" || res.Status != "pending_email_approval" {
		t.Fatalf("unexpected proposal: %+v", res)
	}
}

func TestFromCatalog(t *testing.T) {
	res := FromCatalog([]entities.PricingEntry{
		{ItemType: "service", Material: "Labor_Rate", UnitCost: 85, UnitKind: entities.UnitKindPerHour},
	})
	if res.Count != 1 || res.Entries[0].Unit != "per_hour" || res.Entries[0].UnitCost != 85 {
		t.Fatalf("unexpected catalog: %+v", res)
	}

	empty := FromCatalog(nil)
	if empty.Entries == nil || empty.Count != 0 {
		t.Fatalf("empty catalog must render an empty list: %+v", empty)
	}
}
