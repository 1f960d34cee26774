package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "quotebot/internal/adapter/http/dto/request"
	response "quotebot/internal/adapter/http/dto/response"
	"quotebot/internal/domain/entities"
	"quotebot/internal/usecase"
	"quotebot/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)
	errInvalidModifyPayload  = pkg.NewDomainErrorSimple("INVALID_MODIFY_INPUT", "Invalid modify payload", http.StatusBadRequest)
)

// ProjectHandler exposes the approval-gated quoting workflow over HTTP.

type ProjectHandler struct {
	usecase usecase.IWorkflowUseCase
}

func NewProjectHandler(uc usecase.IWorkflowUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// CreateProject accepts a customer request and runs extraction.
//
// @Summary  Submit a customer request
// @Tags     projects
// @Accept   json
// @Produce  json
// @Param    body  body      request.CreateProjectRequest  true  "customer request"
// @Success  201   {object}  response.ProjectResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  502   {object}  pkg.HTTPError
// @Router   /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload request.CreateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.Submit(c.Request.Context(), payload.ResolveCustomerRequest())
	if err != nil {
		log.Printf("[project][handler] submit failed project_id=%s err=%v", project.ID, err)
		setProjectLocation(c, project)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[project][handler] submit success project_id=%s status=%s", project.ID, project.Status)

	c.JSON(http.StatusCreated, response.FromProject(project))
}

// GetProject returns the stored record.
//
// @Summary  Get a project
// @Tags     projects
// @Produce  json
// @Param    id   path      string  true  "project id"
// @Success  200  {object}  response.ProjectResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

// GetProposal returns the artifact awaiting review.
//
// @Summary  Get the artifact awaiting a decision
// @Tags     projects
// @Produce  json
// @Param    id   path      string  true  "project id"
// @Success  200  {object}  response.ProposalResponse
// @Failure  404  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Router   /projects/{id}/proposal [get]
func (h *ProjectHandler) GetProposal(c *gin.Context) {
	proposal, err := h.usecase.Proposal(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

// ApproveProject
//
// @Summary  Approve the pending artifact
// @Tags     projects
// @Produce  json
// @Param    id   path      string  true  "project id"
// @Success  200  {object}  response.ProjectResponse
// @Failure  409  {object}  pkg.HTTPError
// @Failure  502  {object}  pkg.HTTPError
// @Router   /projects/{id}/approve [patch]
func (h *ProjectHandler) ApproveProject(c *gin.Context) {
	h.decide(c, "approve", h.usecase.Approve)
}

// RejectProject
//
// @Summary  Reject the pending artifact and abort
// @Tags     projects
// @Produce  json
// @Param    id   path      string  true  "project id"
// @Success  200  {object}  response.ProjectResponse
// @Failure  409  {object}  pkg.HTTPError
// @Router   /projects/{id}/reject [patch]
func (h *ProjectHandler) RejectProject(c *gin.Context) {
	h.decide(c, "reject", h.usecase.Reject)
}

// ModifyProject replaces the pending artifact with the human's edit and
// continues as approved. An invalid edit leaves the record untouched.
//
// @Summary  Replace the pending artifact
// @Tags     projects
// @Accept   json
// @Produce  json
// @Param    id    path      string                  true  "project id"
// @Param    body  body      request.ModifyRequest  true  "replacement artifact"
// @Success  200   {object}  response.ProjectResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  409   {object}  pkg.HTTPError
// @Router   /projects/{id}/modify [patch]
func (h *ProjectHandler) ModifyProject(c *gin.Context) {
	var payload request.ModifyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidModifyPayload.HTTPStatus, errInvalidModifyPayload.ToHTTPError())
		return
	}
	raw, err := payload.ResolvePayload()
	if err != nil {
		c.JSON(errInvalidModifyPayload.HTTPStatus, errInvalidModifyPayload.ToHTTPError())
		return
	}

	h.decide(c, "modify", func(ctx context.Context, id string) (entities.Project, error) {
		return h.usecase.Modify(ctx, id, raw)
	})
}

func (h *ProjectHandler) decide(
	c *gin.Context,
	action string,
	decide func(ctx context.Context, projectID string) (entities.Project, error),
) {
	projectID := c.Param("id")
	log.Printf("[project][handler] %s start project_id=%s", action, projectID)

	project, err := decide(c.Request.Context(), projectID)
	if err != nil {
		log.Printf("[project][handler] %s failed project_id=%s err=%v", action, projectID, err)
		setProjectLocation(c, project)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[project][handler] %s success project_id=%s status=%s", action, projectID, project.Status)

	c.JSON(http.StatusOK, response.FromProject(project))
}

// setProjectLocation points at the stored record when a stage failed after
// the project was persisted.
func setProjectLocation(c *gin.Context, p entities.Project) {
	if p.ID != "" {
		c.Header("Location", "/v1/projects/"+p.ID)
	}
}

func mapWorkflowError(err error) *pkg.AppError {
	var (
		validationErr *entities.ValidationError
		extractionErr *entities.ExtractionError
		quotingErr    *entities.QuotingError
		draftingErr   *entities.DraftingError
	)
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidCustomerRequest), errors.Is(err, usecase.ErrInvalidDecision):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoPendingGate):
		return pkg.NewDomainErrorSimple("NO_PENDING_DECISION", "Project is not awaiting a decision", http.StatusConflict)
	// collaborator errors may wrap a ValidationError of the model output
	case errors.As(err, &extractionErr):
		return pkg.NewDomainError("EXTRACTION_FAILED", "Extraction failed", extractionErr, http.StatusBadGateway)
	case errors.As(err, &quotingErr):
		return pkg.NewDomainError("QUOTE_FAILED", "Quote generation failed", quotingErr, http.StatusBadGateway)
	case errors.As(err, &draftingErr):
		return pkg.NewDomainError("EMAIL_DRAFT_FAILED", "Email drafting failed", draftingErr, http.StatusBadGateway)
	case errors.As(err, &validationErr):
		return pkg.NewDomainError("INVALID_ARTIFACT", "Edited artifact is invalid", validationErr, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
