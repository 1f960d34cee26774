package response

import (
	"time"

	"quotebot/internal/domain/entities"
	"quotebot/internal/usecase"
)

type ProjectResponse struct {
	ProjectID        string                     `json:"project_id"`
	CustomerRequest  string                     `json:"customer_request"`
	Status           string                     `json:"status"`
	AwaitingDecision string                     `json:"awaiting_decision,omitempty"`
	ExtractedDetails *entities.ExtractedDetails `json:"extracted_details"`
	QuoteDraft       *entities.QuoteDraft       `json:"quote_draft"`
	FinalQuote       *entities.QuoteDraft       `json:"final_quote"`
	AvailabilityInfo *entities.AvailabilityInfo `json:"availability_info"`
	EmailDraft       *string                    `json:"email_draft"`
	ErrorDetails     *string                    `json:"error_details,omitempty"`
	CreatedAt        time.Time                  `json:"created_at"`
	UpdatedAt        time.Time                  `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:        p.ID,
		CustomerRequest:  p.CustomerRequest,
		Status:           string(p.Status),
		AwaitingDecision: p.Status.AwaitingGate(),
		ExtractedDetails: p.ExtractedDetails,
		QuoteDraft:       p.QuoteDraft,
		FinalQuote:       p.FinalQuote,
		AvailabilityInfo: p.AvailabilityInfo,
		EmailDraft:       p.EmailDraft,
		ErrorDetails:     p.ErrorDetails,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

type ProposalResponse struct {
	ProjectID string `json:"project_id"`
	Status    string `json:"status"`
	Artifact  string `json:"artifact"`
	Proposed  any    `json:"proposed"`
	Editable  string `json:"editable"`
}

func FromProposal(p usecase.Proposal) ProposalResponse {
	return ProposalResponse{
		ProjectID: p.ProjectID,
		Status:    string(p.Status),
		Artifact:  p.Artifact,
		Proposed:  p.Value,
		Editable:  p.Editable,
	}
}
