package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"quotebot/internal/domain/entities"
	"quotebot/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound        = errors.New("project not found")
	ErrInvalidProjectID       = errors.New("invalid project id")
	ErrInvalidCustomerRequest = errors.New("invalid customer request")
	ErrInvalidDecision        = errors.New("invalid decision")
	ErrNoPendingGate          = errors.New("project is not awaiting a decision")
)

// IWorkflowUseCase drives one customer inquiry through the approval-gated
// quoting workflow.
//
//   - Submit: create the record and run extraction
//   - Approve / Modify / Reject: answer the gate the project currently awaits
//   - Get / Proposal: read the record or the artifact under review

type IWorkflowUseCase interface {
	Submit(ctx context.Context, customerRequest string) (entities.Project, error)
	Review(ctx context.Context, projectID string, d entities.Decision) (entities.Project, error)
	Approve(ctx context.Context, projectID string) (entities.Project, error)
	Modify(ctx context.Context, projectID string, payload string) (entities.Project, error)
	Reject(ctx context.Context, projectID string) (entities.Project, error)
	Get(ctx context.Context, projectID string) (entities.Project, error)
	Proposal(ctx context.Context, projectID string) (Proposal, error)
}

// Proposal is the artifact a human is asked to review, with the raw text
// offered for editing.
type Proposal struct {
	ProjectID string                 `json:"project_id"`
	Status    entities.ProjectStatus `json:"status"`
	Artifact  string                 `json:"artifact"`
	Value     any                    `json:"value"`
	Editable  string                 `json:"editable"`
}

// WorkflowUseCase is the only writer of Project records. Every stage result,
// decision and failure is persisted before the next step runs.
type WorkflowUseCase struct {
	projects  interfaces.IProjectRepository
	catalog   ICatalogUseCase
	extractor interfaces.IRequestExtractor
	quoter    interfaces.IQuoteGenerator
	drafter   interfaces.IEmailDrafter
	now       func() time.Time
}

var _ IWorkflowUseCase = (*WorkflowUseCase)(nil)

type WorkflowOption func(*WorkflowUseCase)

// WithClock overrides the clock used for timestamps and availability.
func WithClock(now func() time.Time) WorkflowOption {
	return func(u *WorkflowUseCase) { u.now = now }
}

func NewWorkflowUseCase(
	projects interfaces.IProjectRepository,
	catalog ICatalogUseCase,
	extractor interfaces.IRequestExtractor,
	quoter interfaces.IQuoteGenerator,
	drafter interfaces.IEmailDrafter,
	opts ...WorkflowOption,
) *WorkflowUseCase {
	u := &WorkflowUseCase{
		projects:  projects,
		catalog:   catalog,
		extractor: extractor,
		quoter:    quoter,
		drafter:   drafter,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *WorkflowUseCase) Submit(ctx context.Context, customerRequest string) (entities.Project, error) {
	customerRequest = strings.TrimSpace(customerRequest)
	if customerRequest == "" {
		return entities.Project{}, ErrInvalidCustomerRequest
	}

	now := u.now().UTC()
	p := entities.Project{
		ID:              uuid.NewString(),
		CustomerRequest: customerRequest,
		Status:          entities.ProjectStatusPendingExtraction,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	created, err := u.projects.Create(ctx, p)
	if err != nil {
		log.Printf("[workflow][usecase] create failed err=%v", err)
		return entities.Project{}, err
	}
	log.Printf("[workflow][usecase] project created project_id=%s", created.ID)

	return u.runExtraction(ctx, created)
}

func (u *WorkflowUseCase) Approve(ctx context.Context, projectID string) (entities.Project, error) {
	return u.Review(ctx, projectID, entities.Decision{Action: entities.DecisionApprove})
}

func (u *WorkflowUseCase) Modify(ctx context.Context, projectID string, payload string) (entities.Project, error) {
	return u.Review(ctx, projectID, entities.Decision{Action: entities.DecisionModify, Payload: payload})
}

func (u *WorkflowUseCase) Reject(ctx context.Context, projectID string) (entities.Project, error) {
	return u.Review(ctx, projectID, entities.Decision{Action: entities.DecisionReject})
}

// Review answers the gate the project is waiting on. A ValidationError leaves
// the stored record exactly as it was.
func (u *WorkflowUseCase) Review(ctx context.Context, projectID string, d entities.Decision) (entities.Project, error) {
	p, err := u.Get(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	log.Printf("[workflow][usecase] review project_id=%s status=%s action=%s", p.ID, p.Status, d.Action)

	switch p.Status.AwaitingGate() {
	case entities.ArtifactDetails:
		return u.reviewDetails(ctx, p, d)
	case entities.ArtifactQuote:
		return u.reviewQuote(ctx, p, d)
	case entities.ArtifactEmail:
		return u.reviewEmail(ctx, p, d)
	default:
		return p, ErrNoPendingGate
	}
}

func (u *WorkflowUseCase) Get(ctx context.Context, projectID string) (entities.Project, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *WorkflowUseCase) Proposal(ctx context.Context, projectID string) (Proposal, error) {
	p, err := u.Get(ctx, projectID)
	if err != nil {
		return Proposal{}, err
	}

	prop := Proposal{ProjectID: p.ID, Status: p.Status, Artifact: p.Status.AwaitingGate()}
	switch prop.Artifact {
	case entities.ArtifactDetails:
		if p.ExtractedDetails == nil {
			return Proposal{}, ErrNoPendingGate
		}
		prop.Value = *p.ExtractedDetails
	case entities.ArtifactQuote:
		if p.QuoteDraft == nil {
			return Proposal{}, ErrNoPendingGate
		}
		prop.Value = *p.QuoteDraft
	case entities.ArtifactEmail:
		if p.EmailDraft == nil {
			return Proposal{}, ErrNoPendingGate
		}
		prop.Value = *p.EmailDraft
		prop.Editable = *p.EmailDraft
		return prop, nil
	default:
		return Proposal{}, ErrNoPendingGate
	}

	editable, err := EditableJSON(prop.Value)
	if err != nil {
		return Proposal{}, err
	}
	prop.Editable = editable
	return prop, nil
}

// EditableJSON renders an artifact the way it is offered for editing.
func EditableJSON(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (u *WorkflowUseCase) runExtraction(ctx context.Context, p entities.Project) (entities.Project, error) {
	log.Printf("[workflow][usecase] extraction start project_id=%s", p.ID)
	details, err := u.extractor.Extract(ctx, p.CustomerRequest)
	if err == nil {
		err = details.Validate()
	}
	if err != nil {
		return u.fail(ctx, p, entities.ProjectStatusExtractionFailed, asExtractionError(err))
	}

	return u.update(ctx, p.ID, entities.ProjectUpdate{
		Status:           entities.ProjectStatusPendingExtractionApproval,
		ExtractedDetails: &details,
	})
}

func (u *WorkflowUseCase) reviewDetails(ctx context.Context, p entities.Project, d entities.Decision) (entities.Project, error) {
	if p.ExtractedDetails == nil {
		return p, fmt.Errorf("%w: no extracted details on record", ErrNoPendingGate)
	}
	gate := NewGate(entities.ArtifactDetails, *p.ExtractedDetails, parseDetailsPayload)
	if err := gate.Decide(d); err != nil {
		log.Printf("[workflow][usecase] details decision refused project_id=%s err=%v", p.ID, err)
		return p, err
	}
	if gate.State() == GateRejected {
		return u.abort(ctx, p)
	}

	approved, _ := gate.Value()
	p, err := u.update(ctx, p.ID, entities.ProjectUpdate{
		Status:           entities.ProjectStatusExtractedDetailsApproved,
		ExtractedDetails: &approved,
	})
	if err != nil {
		return p, err
	}
	return u.runQuoting(ctx, p, approved)
}

func (u *WorkflowUseCase) runQuoting(ctx context.Context, p entities.Project, details entities.ExtractedDetails) (entities.Project, error) {
	log.Printf("[workflow][usecase] quoting start project_id=%s", p.ID)
	catalog, err := u.catalog.All(ctx)
	if err != nil {
		return u.fail(ctx, p, entities.ProjectStatusQuoteFailed, asQuotingError(fmt.Errorf("load catalog: %w", err)))
	}

	quote, err := u.quoter.GenerateQuote(ctx, details, catalog)
	if err == nil {
		err = quote.Validate()
	}
	if err != nil {
		return u.fail(ctx, p, entities.ProjectStatusQuoteFailed, asQuotingError(err))
	}

	return u.update(ctx, p.ID, entities.ProjectUpdate{
		Status:     entities.ProjectStatusPendingQuoteApproval,
		QuoteDraft: &quote,
	})
}

func (u *WorkflowUseCase) reviewQuote(ctx context.Context, p entities.Project, d entities.Decision) (entities.Project, error) {
	if p.QuoteDraft == nil {
		return p, fmt.Errorf("%w: no quote draft on record", ErrNoPendingGate)
	}
	gate := NewGate(entities.ArtifactQuote, *p.QuoteDraft, parseQuotePayload)
	if err := gate.Decide(d); err != nil {
		log.Printf("[workflow][usecase] quote decision refused project_id=%s err=%v", p.ID, err)
		return p, err
	}
	if gate.State() == GateRejected {
		return u.abort(ctx, p)
	}

	final, _ := gate.Value()
	p, err := u.update(ctx, p.ID, entities.ProjectUpdate{
		Status:     entities.ProjectStatusQuoteApproved,
		FinalQuote: &final,
	})
	if err != nil {
		return p, err
	}

	names := ServiceNamesFromQuote(final)
	availability := CheckAvailability(names, u.now())
	log.Printf("[workflow][usecase] availability checked project_id=%s services=%q slots=%d",
		p.ID, strings.Join(names, ", "), len(availability.AvailableSlots))
	p, err = u.update(ctx, p.ID, entities.ProjectUpdate{
		Status:           entities.ProjectStatusAvailabilityChecked,
		AvailabilityInfo: &availability,
	})
	if err != nil {
		return p, err
	}

	return u.runDrafting(ctx, p)
}

func (u *WorkflowUseCase) runDrafting(ctx context.Context, p entities.Project) (entities.Project, error) {
	log.Printf("[workflow][usecase] drafting start project_id=%s", p.ID)
	if p.ExtractedDetails == nil || p.FinalQuote == nil || p.AvailabilityInfo == nil {
		return u.fail(ctx, p, entities.ProjectStatusEmailDraftFailed,
			&entities.DraftingError{Err: errors.New("record is missing approved details, final quote or availability")})
	}

	email, err := u.drafter.DraftEmail(ctx, p.CustomerRequest, *p.ExtractedDetails, *p.FinalQuote, *p.AvailabilityInfo)
	if err == nil && strings.TrimSpace(email) == "" {
		err = errors.New("drafter returned an empty email")
	}
	if err != nil {
		return u.fail(ctx, p, entities.ProjectStatusEmailDraftFailed, asDraftingError(err))
	}

	return u.update(ctx, p.ID, entities.ProjectUpdate{
		Status:     entities.ProjectStatusPendingEmailApproval,
		EmailDraft: &email,
	})
}

func (u *WorkflowUseCase) reviewEmail(ctx context.Context, p entities.Project, d entities.Decision) (entities.Project, error) {
	if p.EmailDraft == nil {
		return p, fmt.Errorf("%w: no email draft on record", ErrNoPendingGate)
	}
	gate := NewGate(entities.ArtifactEmail, *p.EmailDraft, entities.ParseEmail)
	if err := gate.Decide(d); err != nil {
		log.Printf("[workflow][usecase] email decision refused project_id=%s err=%v", p.ID, err)
		return p, err
	}
	if gate.State() == GateRejected {
		return u.abort(ctx, p)
	}

	final, _ := gate.Value()
	p, err := u.update(ctx, p.ID, entities.ProjectUpdate{
		Status:     entities.ProjectStatusCompleted,
		EmailDraft: &final,
	})
	if err != nil {
		return p, err
	}
	log.Printf("[workflow][usecase] project completed project_id=%s", p.ID)
	return p, nil
}

func (u *WorkflowUseCase) abort(ctx context.Context, p entities.Project) (entities.Project, error) {
	log.Printf("[workflow][usecase] aborted by human project_id=%s from=%s", p.ID, p.Status)
	return u.update(ctx, p.ID, entities.ProjectUpdate{Status: entities.ProjectStatusAbortedByHuman})
}

// fail persists a *_failed status with the collaborator error and returns
// that error together with the stored record.
func (u *WorkflowUseCase) fail(ctx context.Context, p entities.Project, status entities.ProjectStatus, stageErr error) (entities.Project, error) {
	log.Printf("[workflow][usecase] stage failed project_id=%s status=%s err=%v", p.ID, status, stageErr)
	msg := stageErr.Error()
	updated, err := u.update(ctx, p.ID, entities.ProjectUpdate{Status: status, ErrorDetails: &msg})
	if err != nil {
		return p, errors.Join(stageErr, err)
	}
	return updated, stageErr
}

func (u *WorkflowUseCase) update(ctx context.Context, id string, upd entities.ProjectUpdate) (entities.Project, error) {
	p, err := u.projects.Update(ctx, id, upd)
	if err != nil {
		log.Printf("[workflow][usecase] persist failed project_id=%s status=%s err=%v", id, upd.Status, err)
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func asExtractionError(err error) error {
	var target *entities.ExtractionError
	if errors.As(err, &target) {
		return target
	}
	return &entities.ExtractionError{Err: err}
}

func asQuotingError(err error) error {
	var target *entities.QuotingError
	if errors.As(err, &target) {
		return target
	}
	return &entities.QuotingError{Err: err}
}

func asDraftingError(err error) error {
	var target *entities.DraftingError
	if errors.As(err, &target) {
		return target
	}
	return &entities.DraftingError{Err: err}
}
