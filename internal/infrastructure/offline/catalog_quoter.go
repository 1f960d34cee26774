package offline

import (
	"context"
	"fmt"
	"strings"

	"quotebot/internal/domain/entities"
	"quotebot/internal/usecase/interfaces"
)

const (
	notFoundBreakdown = "Price not found in database."
	tbdNote           = "Items marked TBD were not found in the pricing catalog and need manual pricing."
	noItemsNote       = "No billable items were identified in the request."
)

// CatalogQuoter prices approved details with plain catalog arithmetic.
//
// Shipping_Standard is charged once when any physical item is priced or when
// it is listed as a service; it never appears as a quote line.
type CatalogQuoter struct{}

var _ interfaces.IQuoteGenerator = (*CatalogQuoter)(nil)

func NewCatalogQuoter() *CatalogQuoter { return &CatalogQuoter{} }

func (q *CatalogQuoter) GenerateQuote(_ context.Context, d entities.ExtractedDetails, catalog []entities.PricingEntry) (entities.QuoteDraft, error) {
	byName := make(map[string]entities.PricingEntry, len(catalog))
	var shipping *entities.PricingEntry
	for i, p := range catalog {
		byName[entities.NormalizeName(p.Material)] = p
		if p.Material == entities.ShippingMaterial {
			shipping = &catalog[i]
		}
	}

	var (
		items        = []entities.QuoteItem{}
		subtotal     float64
		physical     bool
		wantShipping bool
	)
	add := func(name string, qty float64) {
		p, ok := byName[entities.NormalizeName(name)]
		if !ok {
			items = append(items, entities.QuoteItem{
				Item:          name,
				Quantity:      qty,
				UnitPrice:     entities.TBDAmount(),
				LineTotal:     entities.TBDAmount(),
				CostBreakdown: notFoundBreakdown,
			})
			return
		}
		it := priceLine(p, qty)
		subtotal += it.LineTotal.Value
		if !p.IsService() {
			physical = true
		}
		items = append(items, it)
	}

	if d.Model != nil {
		add(*d.Model, 1)
	}
	if d.HoseLengthFt != nil {
		if hose, ok := hoseForLength(catalog, *d.HoseLengthFt); ok {
			add(hose.Material, 1)
		} else {
			add(fmt.Sprintf("%sft Hose", formatQty(*d.HoseLengthFt)), 1)
		}
	}
	if d.AttachmentSet != nil {
		add(*d.AttachmentSet, 1)
	}
	for _, part := range d.PartsNeeded {
		add(part.PartName, float64(part.Quantity))
	}
	for _, svc := range d.Services {
		if entities.NormalizeName(svc) == entities.NormalizeName(entities.ShippingMaterial) {
			wantShipping = true
			continue
		}
		add(svc, 1)
	}

	out := entities.QuoteDraft{QuoteItems: items, Subtotal: entities.Round2(subtotal)}
	if shipping != nil && (physical || wantShipping) {
		out.Shipping = entities.Round2(shipping.UnitCost)
	}
	out.TotalEstimatedCost = entities.Round2(out.Subtotal + out.Shipping)

	switch {
	case out.HasTBD():
		out.Notes = entities.StringPtr(tbdNote)
	case len(items) == 0:
		out.Notes = entities.StringPtr(noItemsNote)
	}
	return out, nil
}

func priceLine(p entities.PricingEntry, qty float64) entities.QuoteItem {
	it := entities.QuoteItem{Item: p.Material, Quantity: qty, UnitPrice: entities.Price(p.UnitCost)}
	cost := entities.FormatMoney(p.UnitCost)
	switch p.UnitKind {
	case entities.UnitKindFlatFee:
		it.Quantity = 1
		it.LineTotal = entities.Price(p.UnitCost)
		it.CostBreakdown = "Flat fee"
	case entities.UnitKindLinearFt:
		it.LineTotal = entities.Price(qty * p.UnitCost)
		it.CostBreakdown = fmt.Sprintf("%s ft @ %s/ft", formatQty(qty), cost)
	case entities.UnitKindPerHour:
		it.LineTotal = entities.Price(qty * p.UnitCost)
		it.CostBreakdown = fmt.Sprintf("%s hr @ %s/hr", formatQty(qty), cost)
	default:
		it.LineTotal = entities.Price(qty * p.UnitCost)
		it.CostBreakdown = fmt.Sprintf("%s unit @ %s/unit", formatQty(qty), cost)
	}
	return it
}

// hoseForLength picks the hose whose material starts with "<n>ft".
func hoseForLength(catalog []entities.PricingEntry, feet float64) (entities.PricingEntry, bool) {
	prefix := strings.ToLower(formatQty(feet)) + "ft"
	for _, p := range catalog {
		if p.ItemType != entities.ItemTypeHose {
			continue
		}
		if strings.HasPrefix(strings.ToLower(p.Material), prefix) {
			return p, true
		}
	}
	return entities.PricingEntry{}, false
}
