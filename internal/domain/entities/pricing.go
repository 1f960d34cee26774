package entities

import "strings"

// UnitKind tells how a catalog unit cost scales with the requested quantity.
type UnitKind string

const (
	UnitKindUnit     UnitKind = "unit"
	UnitKindLinearFt UnitKind = "linear_ft"
	UnitKindFlatFee  UnitKind = "flat_fee"
	UnitKindPerHour  UnitKind = "per_hour"
)

func (k UnitKind) Valid() bool {
	switch k {
	case UnitKindUnit, UnitKindLinearFt, UnitKindFlatFee, UnitKindPerHour:
		return true
	}
	return false
}

// Catalog item types used by the seed data.
const (
	ItemTypePowerUnit     = "power_unit"
	ItemTypeHose          = "hose"
	ItemTypeAttachmentSet = "attachment_set"
	ItemTypePart          = "part"
	ItemTypeService       = "service"
)

// ShippingMaterial is the catalog service row used for the quote shipping line.
const ShippingMaterial = "Shipping_Standard"

// PricingEntry is one priced catalog row.
//
// Storage model:
//   - composite key: (item_type, material)
//   - seeded once, read-only afterwards
type PricingEntry struct {
	ItemType string   `json:"item_type" yaml:"item_type"`
	Material string   `json:"material" yaml:"material"`
	UnitCost float64  `json:"unit_cost" yaml:"unit_cost"`
	UnitKind UnitKind `json:"unit_kind" yaml:"unit_kind"`
}

// Key returns the composite catalog key.
func (p PricingEntry) Key() string {
	return p.ItemType + "|" + p.Material
}

// IsService reports whether the entry is labour rather than a shipped product.
func (p PricingEntry) IsService() bool {
	return p.ItemType == ItemTypeService
}

// NormalizeName folds case and the separators used interchangeably in
// material names ("50ft_Retractable", "50ft retractable", "tune-up").
func NormalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "-", " ", "-").Replace(s)
}
