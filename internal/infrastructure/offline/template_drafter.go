package offline

import (
	"context"
	"fmt"
	"strings"

	"quotebot/internal/domain/entities"
	"quotebot/internal/usecase/interfaces"
)

// TemplateDrafter renders the customer reply from a fixed layout.
type TemplateDrafter struct {
	company string
}

var _ interfaces.IEmailDrafter = (*TemplateDrafter)(nil)

func NewTemplateDrafter(company string) *TemplateDrafter {
	if company == "" {
		company = "CustomCraft"
	}
	return &TemplateDrafter{company: company}
}

func (t *TemplateDrafter) DraftEmail(
	_ context.Context,
	_ string,
	d entities.ExtractedDetails,
	q entities.QuoteDraft,
	a entities.AvailabilityInfo,
) (string, error) {
	name := "Customer"
	if d.CustomerName != nil {
		name = *d.CustomerName
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Subject: Your %s quote\n\n", t.company)
	fmt.Fprintf(&b, "Dear %s,\n\n", name)
	fmt.Fprintf(&b, "Thank you for contacting %s. Here is the estimate for your request:\n\n", t.company)

	for _, it := range q.QuoteItems {
		fmt.Fprintf(&b, "  - %s x%s: %s\n", it.Item, formatQty(it.Quantity), it.LineTotal)
	}
	fmt.Fprintf(&b, "\nSubtotal: %s\n", entities.FormatMoney(q.Subtotal))
	fmt.Fprintf(&b, "Shipping: %s\n", entities.FormatMoney(q.Shipping))
	fmt.Fprintf(&b, "Total estimated cost: %s\n", entities.FormatMoney(q.TotalEstimatedCost))
	if q.Notes != nil {
		fmt.Fprintf(&b, "\nNote: %s\n", *q.Notes)
	}

	if len(a.AvailableSlots) > 0 {
		b.WriteString("\nWe can schedule a visit at one of these times:\n")
		for _, s := range a.AvailableSlots {
			fmt.Fprintf(&b, "  - %s, %s\n", s.Date, s.Time)
		}
	}
	if a.Note != "" {
		fmt.Fprintf(&b, "\n%s\n", a.Note)
	}

	b.WriteString("\nPlease reply to this email to confirm or ask any questions.\n\n")
	fmt.Fprintf(&b, "Best regards,\nThe %s Team\n", t.company)
	return b.String(), nil
}
