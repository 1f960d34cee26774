package offline

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"quotebot/internal/domain/entities"
	"quotebot/internal/usecase/interfaces"
)

var (
	nonWordRe      = regexp.MustCompile(`[^a-z0-9]+`)
	hoseLengthRe   = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*-?\s*(?:ft|feet|foot)\b`)
	customerNameRe = regexp.MustCompile(`(?i:my name is|this is)\s+([A-Z][\w'-]*(?:\s+[A-Z][\w'-]*)*)`)
)

// serviceAliases maps everyday wording to service materials. An alias only
// applies when no service containing the same word was matched by name.
var serviceAliases = []struct {
	word     string
	material string
}{
	{"installation", "New_System_Installation"},
	{"install", "New_System_Installation"},
	{"tune-up", "System_Tune_Up"},
	{"clog", "Clog_Removal"},
	{"diagnostic", "Service_Call_Diagnostic"},
	{"service-call", "Service_Call_Diagnostic"},
	{"repair", "Service_Call_Diagnostic"},
}

// KeywordExtractor finds catalog material names and a few common phrases in
// the request text.
type KeywordExtractor struct {
	catalog CatalogSource
}

var _ interfaces.IRequestExtractor = (*KeywordExtractor)(nil)

func NewKeywordExtractor(catalog CatalogSource) *KeywordExtractor {
	return &KeywordExtractor{catalog: catalog}
}

func (e *KeywordExtractor) Extract(ctx context.Context, customerRequest string) (entities.ExtractedDetails, error) {
	entries, err := e.catalog.All(ctx)
	if err != nil {
		return entities.ExtractedDetails{}, &entities.ExtractionError{Err: err}
	}

	text := tokenize(customerRequest)
	var (
		d         entities.ExtractedDetails
		firstType string
	)
	for _, p := range entries {
		if !containsWord(text, entities.NormalizeName(p.Material)) {
			continue
		}
		switch p.ItemType {
		case entities.ItemTypePowerUnit:
			if d.Model != nil {
				continue
			}
			d.Model = entities.StringPtr(p.Material)
		case entities.ItemTypeHose:
			if d.HoseLengthFt == nil {
				if n, ok := leadingFeet(p.Material); ok {
					d.HoseLengthFt = entities.FloatPtr(n)
				}
			}
		case entities.ItemTypeAttachmentSet:
			if d.AttachmentSet != nil {
				continue
			}
			d.AttachmentSet = entities.StringPtr(p.Material)
		case entities.ItemTypePart:
			d.PartsNeeded = append(d.PartsNeeded, entities.PartRequest{PartName: p.Material, Quantity: 1})
		case entities.ItemTypeService:
			d.Services = append(d.Services, p.Material)
		default:
			continue
		}
		if firstType == "" || itemPriority(p.ItemType) < itemPriority(firstType) {
			firstType = p.ItemType
		}
	}

	for _, a := range serviceAliases {
		if !containsWord(text, a.word) || hasServiceWith(d.Services, a.word) || hasService(d.Services, a.material) {
			continue
		}
		d.Services = append(d.Services, a.material)
		if firstType == "" {
			firstType = entities.ItemTypeService
		}
	}

	if d.HoseLengthFt == nil {
		if m := hoseLengthRe.FindStringSubmatch(customerRequest); m != nil {
			if n, err := strconv.ParseFloat(m[1], 64); err == nil && n > 0 {
				d.HoseLengthFt = entities.FloatPtr(n)
				if firstType == "" {
					firstType = entities.ItemTypeHose
				}
			}
		}
	}

	if m := customerNameRe.FindStringSubmatch(customerRequest); m != nil {
		d.CustomerName = entities.StringPtr(m[1])
	}
	if firstType != "" {
		d.ItemRequested = entities.StringPtr(firstType)
	}
	return d, nil
}

func itemPriority(itemType string) int {
	switch itemType {
	case entities.ItemTypePowerUnit:
		return 0
	case entities.ItemTypeHose:
		return 1
	case entities.ItemTypeAttachmentSet:
		return 2
	case entities.ItemTypePart:
		return 3
	}
	return 4
}

// leadingFeet reads the length from hose materials such as "50ft_Retractable".
func leadingFeet(material string) (float64, bool) {
	i := strings.Index(strings.ToLower(material), "ft")
	if i <= 0 {
		return 0, false
	}
	n, err := strconv.ParseFloat(material[:i], 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// tokenize lowercases s and joins its words with "-", with a leading and a
// trailing "-" so containsWord can match at word boundaries.
func tokenize(s string) string {
	return "-" + strings.Trim(nonWordRe.ReplaceAllString(strings.ToLower(s), "-"), "-") + "-"
}

func containsWord(text, word string) bool {
	return strings.Contains(text, "-"+word+"-")
}

func hasServiceWith(services []string, word string) bool {
	for _, s := range services {
		if strings.Contains(entities.NormalizeName(s), word) {
			return true
		}
	}
	return false
}

func hasService(services []string, material string) bool {
	for _, s := range services {
		if s == material {
			return true
		}
	}
	return false
}
