// Package cli drives the workflow from a terminal: every gate shows the
// proposed artifact and asks for approve, reject or modify.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"quotebot/internal/domain/entities"
	"quotebot/internal/usecase"
)

// endOfEdit terminates a multi-line modification.
const endOfEdit = "done"

var gateTitles = map[string]string{
	entities.ArtifactDetails: "Extracted Details",
	entities.ArtifactQuote:   "Quote Draft",
	entities.ArtifactEmail:   "Email Draft",
}

type Session struct {
	workflow usecase.IWorkflowUseCase
	in       *bufio.Reader
	out      io.Writer
}

func NewSession(workflow usecase.IWorkflowUseCase, in io.Reader, out io.Writer) *Session {
	return &Session{workflow: workflow, in: bufio.NewReader(in), out: out}
}

// Run submits the request and answers gates until the project is terminal.
// The returned project is the last stored state.
func (s *Session) Run(ctx context.Context, customerRequest string) (entities.Project, error) {
	fmt.Fprintf(s.out, "\n--- Processing request ---\n%s\n", customerRequest)

	p, err := s.workflow.Submit(ctx, customerRequest)
	if err != nil {
		return p, err
	}
	fmt.Fprintf(s.out, "Project ID: %s\n", p.ID)
	return s.Resume(ctx, p.ID)
}

// Resume answers the gates of an existing project.
func (s *Session) Resume(ctx context.Context, projectID string) (entities.Project, error) {
	p, err := s.workflow.Get(ctx, projectID)
	if err != nil {
		return p, err
	}

	for p.Status.AwaitingGate() != "" {
		proposal, err := s.workflow.Proposal(ctx, p.ID)
		if err != nil {
			return p, err
		}
		d, err := s.ask(proposal)
		if err != nil {
			return p, err
		}

		next, err := s.workflow.Review(ctx, p.ID, d)
		var ve *entities.ValidationError
		if errors.As(err, &ve) && next.Status.AwaitingGate() != "" {
			fmt.Fprintf(s.out, "Invalid %s: %s. Please try again.\n", proposal.Artifact, ve.Reason)
			continue
		}
		if next.ID != "" {
			p = next
		}
		if err != nil {
			return p, err
		}
	}

	s.summarize(p)
	return p, nil
}

// ask shows the proposal and reads one decision.
func (s *Session) ask(p usecase.Proposal) (entities.Decision, error) {
	fmt.Fprintf(s.out, "\n--- Human Approval Needed: %s ---\n", gateTitles[p.Artifact])
	fmt.Fprintf(s.out, "Proposed:\n%s\n", p.Editable)

	for {
		fmt.Fprint(s.out, "Approve? (y/n/m for modify): ")
		line, err := s.readLine()
		if err != nil {
			return entities.Decision{}, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return entities.Decision{Action: entities.DecisionApprove}, nil
		case "n", "no":
			return entities.Decision{Action: entities.DecisionReject}, nil
		case "m", "modify":
			payload, err := s.readEdit(p.Artifact)
			if err != nil {
				return entities.Decision{}, err
			}
			return entities.Decision{Action: entities.DecisionModify, Payload: payload}, nil
		default:
			fmt.Fprintln(s.out, "Invalid input. Please enter 'y', 'n', or 'm'.")
		}
	}
}

func (s *Session) readEdit(artifact string) (string, error) {
	format := "JSON format"
	if artifact == entities.ArtifactEmail {
		format = "plain text"
	}
	fmt.Fprintf(s.out, "Enter modified data (%s, type '%s' on a new line when finished):\n", format, endOfEdit)

	var lines []string
	for {
		line, err := s.in.ReadString('\n')
		trimmed := strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(trimmed) == endOfEdit {
			return strings.Join(lines, "\n"), nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", io.ErrUnexpectedEOF
			}
			return "", err
		}
		lines = append(lines, trimmed)
	}
}

func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", io.ErrUnexpectedEOF
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Session) summarize(p entities.Project) {
	fmt.Fprintf(s.out, "\n--- Project %s finished: %s ---\n", p.ID, p.Status)
	switch {
	case p.Status == entities.ProjectStatusCompleted && p.EmailDraft != nil:
		fmt.Fprintf(s.out, "Final email:\n%s\n", *p.EmailDraft)
	case p.Status == entities.ProjectStatusAbortedByHuman:
		fmt.Fprintln(s.out, "Workflow aborted by human.")
	case p.Status.IsFailed() && p.ErrorDetails != nil:
		fmt.Fprintf(s.out, "Error: %s\n", *p.ErrorDetails)
	}
}
