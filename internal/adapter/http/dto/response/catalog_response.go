package response

import (
	"quotebot/internal/domain/entities"
)

type PricingEntryResponse struct {
	ItemType string  `json:"item_type"`
	Material string  `json:"material"`
	UnitCost float64 `json:"unit_cost"`
	Unit     string  `json:"unit"`
}

type CatalogResponse struct {
	Count   int                    `json:"count"`
	Entries []PricingEntryResponse `json:"entries"`
}

func FromCatalog(entries []entities.PricingEntry) CatalogResponse {
	out := CatalogResponse{Count: len(entries), Entries: make([]PricingEntryResponse, 0, len(entries))}
	for _, e := range entries {
		out.Entries = append(out.Entries, PricingEntryResponse{
			ItemType: e.ItemType,
			Material: e.Material,
			UnitCost: e.UnitCost,
			Unit:     string(e.UnitKind),
		})
	}
	return out
}
