package entities

import "time"

// ProjectStatus is the workflow stage a project last completed.
//
// Forward order:
//
//	pending_extraction -> pending_extraction_approval -> extracted_details_approved
//	-> pending_quote_approval -> quote_approved -> availability_checked
//	-> pending_email_approval -> completed
//
// aborted_by_human is reachable from every approval gate; the *_failed
// statuses are reached when the matching collaborator call fails. Terminal
// projects are never resumed.
type ProjectStatus string

const (
	ProjectStatusPendingExtraction         ProjectStatus = "pending_extraction"
	ProjectStatusPendingExtractionApproval ProjectStatus = "pending_extraction_approval"
	ProjectStatusExtractedDetailsApproved  ProjectStatus = "extracted_details_approved"
	ProjectStatusPendingQuoteApproval      ProjectStatus = "pending_quote_approval"
	ProjectStatusQuoteApproved             ProjectStatus = "quote_approved"
	ProjectStatusAvailabilityChecked       ProjectStatus = "availability_checked"
	ProjectStatusPendingEmailApproval      ProjectStatus = "pending_email_approval"
	ProjectStatusCompleted                 ProjectStatus = "completed"
	ProjectStatusAbortedByHuman            ProjectStatus = "aborted_by_human"
	ProjectStatusExtractionFailed          ProjectStatus = "extraction_failed"
	ProjectStatusQuoteFailed               ProjectStatus = "quote_failed"
	ProjectStatusEmailDraftFailed          ProjectStatus = "email_draft_failed"
)

// IsTerminal reports whether no further transition is possible.
func (s ProjectStatus) IsTerminal() bool {
	switch s {
	case ProjectStatusCompleted, ProjectStatusAbortedByHuman,
		ProjectStatusExtractionFailed, ProjectStatusQuoteFailed, ProjectStatusEmailDraftFailed:
		return true
	}
	return false
}

// IsFailed reports whether a collaborator call ended the project.
func (s ProjectStatus) IsFailed() bool {
	switch s {
	case ProjectStatusExtractionFailed, ProjectStatusQuoteFailed, ProjectStatusEmailDraftFailed:
		return true
	}
	return false
}

// AwaitingGate returns the artifact a human must review in this status, or ""
// when the status is not an approval gate.
func (s ProjectStatus) AwaitingGate() string {
	switch s {
	case ProjectStatusPendingExtractionApproval:
		return ArtifactDetails
	case ProjectStatusPendingQuoteApproval:
		return ArtifactQuote
	case ProjectStatusPendingEmailApproval:
		return ArtifactEmail
	}
	return ""
}

// Project is the persisted record of one customer inquiry.
//
// Storage model:
//   - PK: project_id
//   - artifact fields are filled in stage order and never cleared
//
// ErrorDetails holds the collaborator error text for *_failed projects.
type Project struct {
	ID               string            `json:"project_id"`
	CustomerRequest  string            `json:"customer_request"`
	ExtractedDetails *ExtractedDetails `json:"extracted_details"`
	QuoteDraft       *QuoteDraft       `json:"quote_draft"`
	FinalQuote       *QuoteDraft       `json:"final_quote"`
	EmailDraft       *string           `json:"email_draft"`
	AvailabilityInfo *AvailabilityInfo `json:"availability_info"`
	Status           ProjectStatus     `json:"status"`
	ErrorDetails     *string           `json:"error_details,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// ProjectUpdate names the fields to merge into a stored project. Nil fields
// are left untouched; Status is always written.
type ProjectUpdate struct {
	Status           ProjectStatus
	ExtractedDetails *ExtractedDetails
	QuoteDraft       *QuoteDraft
	FinalQuote       *QuoteDraft
	EmailDraft       *string
	AvailabilityInfo *AvailabilityInfo
	ErrorDetails     *string
}

// Apply merges u into p and stamps UpdatedAt.
func (u ProjectUpdate) Apply(p Project, now time.Time) Project {
	p.Status = u.Status
	if u.ExtractedDetails != nil {
		p.ExtractedDetails = u.ExtractedDetails
	}
	if u.QuoteDraft != nil {
		p.QuoteDraft = u.QuoteDraft
	}
	if u.FinalQuote != nil {
		p.FinalQuote = u.FinalQuote
	}
	if u.EmailDraft != nil {
		p.EmailDraft = u.EmailDraft
	}
	if u.AvailabilityInfo != nil {
		p.AvailabilityInfo = u.AvailabilityInfo
	}
	if u.ErrorDetails != nil {
		p.ErrorDetails = u.ErrorDetails
	}
	p.UpdatedAt = now
	return p
}
