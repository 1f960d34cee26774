package offline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"quotebot/internal/domain/entities"
	"quotebot/internal/infrastructure/catalog"
)

type staticCatalog struct {
	entries []entities.PricingEntry
	err     error
}

func (s staticCatalog) All(context.Context) ([]entities.PricingEntry, error) {
	return s.entries, s.err
}

func defaultCatalog(t *testing.T) []entities.PricingEntry {
	t.Helper()
	entries, err := catalog.Default()
	if err != nil {
		t.Fatalf("load default catalog: %v", err)
	}
	return entries
}

func TestKeywordExtractor_Extract(t *testing.T) {
	ex := NewKeywordExtractor(staticCatalog{entries: defaultCatalog(t)})

	t.Run("model with installation", func(t *testing.T) {
		d, err := ex.Extract(context.Background(), "I need a PP650 with installation")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if d.Model == nil || *d.Model != "PP650" {
			t.Fatalf("expected model PP650, got %+v", d.Model)
		}
		if len(d.Services) != 1 || d.Services[0] != "New_System_Installation" {
			t.Fatalf("unexpected services: %v", d.Services)
		}
		if d.ItemRequested == nil || *d.ItemRequested != entities.ItemTypePowerUnit {
			t.Fatalf("unexpected item_requested: %+v", d.ItemRequested)
		}
		if err := d.Validate(); err != nil {
			t.Fatalf("extracted details must validate: %v", err)
		}
	})

	t.Run("hose, part, alias and name", func(t *testing.T) {
		d, err := ex.Extract(context.Background(),
			"Hi, my name is Jane Doe. I want a 50 ft hose, a HEPA filter and a tune up.")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if d.HoseLengthFt == nil || *d.HoseLengthFt != 50 {
			t.Fatalf("expected 50ft hose, got %+v", d.HoseLengthFt)
		}
		if len(d.PartsNeeded) != 1 || d.PartsNeeded[0].PartName != "HEPA_Filter" || d.PartsNeeded[0].Quantity != 1 {
			t.Fatalf("unexpected parts: %+v", d.PartsNeeded)
		}
		if len(d.Services) != 1 || d.Services[0] != "System_Tune_Up" {
			t.Fatalf("unexpected services: %v", d.Services)
		}
		if d.CustomerName == nil || *d.CustomerName != "Jane Doe" {
			t.Fatalf("unexpected name: %+v", d.CustomerName)
		}
	})

	t.Run("named installation service suppresses alias", func(t *testing.T) {
		d, err := ex.Extract(context.Background(), "Quote for an additional inlet installation please")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(d.Services) != 1 || d.Services[0] != "Additional_Inlet_Installation" {
			t.Fatalf("unexpected services: %v", d.Services)
		}
	})

	t.Run("nothing recognised", func(t *testing.T) {
		d, err := ex.Extract(context.Background(), "hello there")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if d.Model != nil || d.ItemRequested != nil || d.Services != nil {
			t.Fatalf("expected empty details, got %+v", d)
		}
	})

	t.Run("catalog error", func(t *testing.T) {
		bad := NewKeywordExtractor(staticCatalog{err: errors.New("db down")})
		_, err := bad.Extract(context.Background(), "PP650")
		var ee *entities.ExtractionError
		if !errors.As(err, &ee) {
			t.Fatalf("expected ExtractionError, got %v", err)
		}
	})
}

func TestCatalogQuoter_GenerateQuote(t *testing.T) {
	cat := defaultCatalog(t)
	q := NewCatalogQuoter()
	ctx := context.Background()

	t.Run("PP650 with installation", func(t *testing.T) {
		got, err := q.GenerateQuote(ctx, entities.ExtractedDetails{
			Model:    entities.StringPtr("PP650"),
			Services: []string{"New_System_Installation"},
		}, cat)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(got.QuoteItems) != 2 {
			t.Fatalf("expected 2 lines, got %+v", got.QuoteItems)
		}
		if got.Subtotal != 1950 || got.Shipping != 50 || got.TotalEstimatedCost != 2000 {
			t.Fatalf("unexpected totals: %+v", got)
		}
		if got.QuoteItems[1].CostBreakdown != "Flat fee" {
			t.Fatalf("unexpected breakdown: %q", got.QuoteItems[1].CostBreakdown)
		}
		if got.Notes != nil {
			t.Fatalf("expected no notes, got %q", *got.Notes)
		}
		if err := got.Validate(); err != nil {
			t.Fatalf("quote must validate: %v", err)
		}
	})

	t.Run("unknown model is TBD and excluded from subtotal", func(t *testing.T) {
		got, err := q.GenerateQuote(ctx, entities.ExtractedDetails{
			Model:         entities.StringPtr("PP9000"),
			AttachmentSet: entities.StringPtr("Bare Floor Set"),
		}, cat)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !got.QuoteItems[0].UnitPrice.TBD || !got.QuoteItems[0].LineTotal.TBD {
			t.Fatalf("expected TBD line, got %+v", got.QuoteItems[0])
		}
		if got.QuoteItems[0].CostBreakdown != notFoundBreakdown {
			t.Fatalf("unexpected breakdown: %q", got.QuoteItems[0].CostBreakdown)
		}
		if got.Subtotal != 120 || got.TotalEstimatedCost != 170 {
			t.Fatalf("unexpected totals: %+v", got)
		}
		if got.Notes == nil || !strings.Contains(*got.Notes, "TBD") {
			t.Fatalf("expected TBD note, got %+v", got.Notes)
		}
	})

	t.Run("hose length and quantities", func(t *testing.T) {
		got, err := q.GenerateQuote(ctx, entities.ExtractedDetails{
			HoseLengthFt: entities.FloatPtr(50),
			PartsNeeded: []entities.PartRequest{
				{PartName: "Low_Voltage_Wiring", Quantity: 20},
				{PartName: "HEPA_Filter", Quantity: 2},
			},
		}, cat)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.QuoteItems[0].Item != "50ft_Retractable" || got.QuoteItems[0].LineTotal.Value != 350 {
			t.Fatalf("unexpected hose line: %+v", got.QuoteItems[0])
		}
		if got.QuoteItems[1].LineTotal.Value != 70 || got.QuoteItems[1].CostBreakdown != "20 ft @ $3.50/ft" {
			t.Fatalf("unexpected wiring line: %+v", got.QuoteItems[1])
		}
		if got.QuoteItems[2].LineTotal.Value != 150 {
			t.Fatalf("unexpected filter line: %+v", got.QuoteItems[2])
		}
		if got.Subtotal != 570 || got.TotalEstimatedCost != 620 {
			t.Fatalf("unexpected totals: %+v", got)
		}
	})

	t.Run("unknown hose length", func(t *testing.T) {
		got, _ := q.GenerateQuote(ctx, entities.ExtractedDetails{HoseLengthFt: entities.FloatPtr(45)}, cat)
		if got.QuoteItems[0].Item != "45ft Hose" || !got.QuoteItems[0].LineTotal.TBD {
			t.Fatalf("unexpected line: %+v", got.QuoteItems[0])
		}
		if got.Shipping != 0 {
			t.Fatalf("TBD-only quote must not ship, got %v", got.Shipping)
		}
	})

	t.Run("services only ship nothing", func(t *testing.T) {
		got, _ := q.GenerateQuote(ctx, entities.ExtractedDetails{Services: []string{"System_Tune_Up"}}, cat)
		if got.Subtotal != 180 || got.Shipping != 0 || got.TotalEstimatedCost != 180 {
			t.Fatalf("unexpected totals: %+v", got)
		}
	})

	t.Run("explicit shipping service", func(t *testing.T) {
		got, _ := q.GenerateQuote(ctx, entities.ExtractedDetails{Services: []string{"Shipping_Standard"}}, cat)
		if len(got.QuoteItems) != 0 || got.Shipping != 50 || got.TotalEstimatedCost != 50 {
			t.Fatalf("unexpected quote: %+v", got)
		}
	})

	t.Run("empty details", func(t *testing.T) {
		got, _ := q.GenerateQuote(ctx, entities.ExtractedDetails{}, cat)
		if got.QuoteItems == nil || len(got.QuoteItems) != 0 || got.TotalEstimatedCost != 0 {
			t.Fatalf("unexpected quote: %+v", got)
		}
		if err := got.Validate(); err != nil {
			t.Fatalf("empty quote must validate: %v", err)
		}
	})
}

func TestTemplateDrafter_DraftEmail(t *testing.T) {
	d := NewTemplateDrafter("")
	email, err := d.DraftEmail(context.Background(), "req",
		entities.ExtractedDetails{CustomerName: entities.StringPtr("Jane")},
		entities.QuoteDraft{
			QuoteItems: []entities.QuoteItem{
				{Item: "PP650", Quantity: 1, UnitPrice: entities.Price(1200), LineTotal: entities.Price(1200)},
				{Item: "PP9000", Quantity: 1, UnitPrice: entities.TBDAmount(), LineTotal: entities.TBDAmount()},
			},
			Subtotal: 1200, Shipping: 50, TotalEstimatedCost: 1250,
		},
		entities.AvailabilityInfo{
			AvailableSlots: []entities.Slot{{Date: "2025-03-13", Time: "9:00 AM - 12:00 PM"}},
			Note:           "preliminary",
		},
	)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, want := range []string{"Dear Jane", "PP650 x1: $1200.00", "PP9000 x1: TBD", "Total estimated cost: $1250.00", "2025-03-13, 9:00 AM - 12:00 PM", "CustomCraft"} {
		if !strings.Contains(email, want) {
			t.Fatalf("email missing %q:\n%s", want, email)
		}
	}
}
