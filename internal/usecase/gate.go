package usecase

import (
	"quotebot/internal/domain/entities"
)

// GateState is the lifecycle of one approval gate.
type GateState string

const (
	GateAwaiting GateState = "awaiting"
	GateApproved GateState = "approved"
	GateRejected GateState = "rejected"
)

// Gate holds one AI-proposed artifact until a human approves it (possibly
// after replacing it) or rejects it.
//
// All replacements go through parse, so a malformed edit returns an error and
// leaves the gate awaiting.
type Gate[T any] struct {
	artifact string
	proposed T
	parse    func(raw string) (T, error)
	state    GateState
	value    T
}

func NewGate[T any](artifact string, proposed T, parse func(raw string) (T, error)) *Gate[T] {
	return &Gate[T]{artifact: artifact, proposed: proposed, parse: parse, state: GateAwaiting}
}

func (g *Gate[T]) Artifact() string { return g.artifact }

func (g *Gate[T]) State() GateState { return g.state }

// Value returns the approved artifact; ok is false unless the gate is approved.
func (g *Gate[T]) Value() (T, bool) {
	return g.value, g.state == GateApproved
}

// Decide applies a human decision.
func (g *Gate[T]) Decide(d entities.Decision) error {
	if g.state != GateAwaiting {
		return ErrNoPendingGate
	}
	switch d.Action {
	case entities.DecisionApprove:
		g.value = g.proposed
		g.state = GateApproved
	case entities.DecisionModify:
		v, err := g.parse(d.Payload)
		if err != nil {
			return err
		}
		g.value = v
		g.state = GateApproved
	case entities.DecisionReject:
		g.state = GateRejected
	default:
		return ErrInvalidDecision
	}
	return nil
}

func parseDetailsPayload(raw string) (entities.ExtractedDetails, error) {
	return entities.ParseExtractedDetails([]byte(raw))
}

func parseQuotePayload(raw string) (entities.QuoteDraft, error) {
	return entities.ParseQuoteDraft([]byte(raw))
}
