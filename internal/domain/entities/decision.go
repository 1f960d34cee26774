package entities

// DecisionAction is what a human chose at an approval gate.
type DecisionAction string

const (
	DecisionApprove DecisionAction = "approve"
	DecisionModify  DecisionAction = "modify"
	DecisionReject  DecisionAction = "reject"
)

// Decision is one human answer at a gate. Payload carries the raw edited
// artifact for DecisionModify: JSON text for details and quotes, plain text
// for the email.
type Decision struct {
	Action  DecisionAction
	Payload string
}
