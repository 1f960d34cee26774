package entities

import (
	"testing"
	"time"
)

func TestProjectStatus_Helpers(t *testing.T) {
	gates := map[ProjectStatus]string{
		ProjectStatusPendingExtractionApproval: ArtifactDetails,
		ProjectStatusPendingQuoteApproval:      ArtifactQuote,
		ProjectStatusPendingEmailApproval:      ArtifactEmail,
		ProjectStatusQuoteApproved:             "",
		ProjectStatusCompleted:                 "",
	}
	for s, want := range gates {
		if got := s.AwaitingGate(); got != want {
			t.Fatalf("%s.AwaitingGate() = %q, want %q", s, got, want)
		}
	}

	if !ProjectStatusCompleted.IsTerminal() || !ProjectStatusAbortedByHuman.IsTerminal() || !ProjectStatusQuoteFailed.IsTerminal() {
		t.Fatalf("expected terminal statuses")
	}
	if ProjectStatusPendingQuoteApproval.IsTerminal() {
		t.Fatalf("gate status must not be terminal")
	}
	if !ProjectStatusEmailDraftFailed.IsFailed() || ProjectStatusAbortedByHuman.IsFailed() {
		t.Fatalf("unexpected IsFailed result")
	}
}

func TestProjectUpdate_Apply(t *testing.T) {
	created := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	details := ExtractedDetails{Model: StringPtr("PP650")}
	p := Project{
		ID:               "p-1",
		CustomerRequest:  "PP650 please",
		ExtractedDetails: &details,
		Status:           ProjectStatusExtractedDetailsApproved,
		CreatedAt:        created,
		UpdatedAt:        created,
	}

	quote := QuoteDraft{QuoteItems: []QuoteItem{}}
	later := created.Add(time.Minute)
	got := ProjectUpdate{Status: ProjectStatusPendingQuoteApproval, QuoteDraft: &quote}.Apply(p, later)

	if got.Status != ProjectStatusPendingQuoteApproval || got.QuoteDraft == nil {
		t.Fatalf("update not applied: %+v", got)
	}
	if got.ExtractedDetails != &details {
		t.Fatalf("unset fields must be left untouched")
	}
	if !got.CreatedAt.Equal(created) || !got.UpdatedAt.Equal(later) {
		t.Fatalf("unexpected timestamps: %v %v", got.CreatedAt, got.UpdatedAt)
	}
}
