package repository

import (
	"encoding/json"
	"os"
	"time"

	"quotebot/internal/domain/entities"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// encodeJSON returns "" for nil artifacts so absent columns stay empty.
func encodeJSON[T any](v *T) (string, error) {
	if v == nil {
		return "", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeJSON[T any](s string) (*T, error) {
	if s == "" {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// projectColumns is the flat storage form of a Project shared by both backends.
type projectColumns struct {
	ProjectID        string `dynamodbav:"project_id"`
	CustomerRequest  string `dynamodbav:"customer_request"`
	ExtractedDetails string `dynamodbav:"extracted_details,omitempty"`
	QuoteDraft       string `dynamodbav:"quote_draft,omitempty"`
	FinalQuote       string `dynamodbav:"final_quote,omitempty"`
	EmailDraft       string `dynamodbav:"email_draft,omitempty"`
	AvailabilityInfo string `dynamodbav:"availability_info,omitempty"`
	Status           string `dynamodbav:"status"`
	ErrorDetails     string `dynamodbav:"error_details,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

func toProjectColumns(p entities.Project) (projectColumns, error) {
	var (
		c   projectColumns
		err error
	)
	c.ProjectID = p.ID
	c.CustomerRequest = p.CustomerRequest
	if c.ExtractedDetails, err = encodeJSON(p.ExtractedDetails); err != nil {
		return c, err
	}
	if c.QuoteDraft, err = encodeJSON(p.QuoteDraft); err != nil {
		return c, err
	}
	if c.FinalQuote, err = encodeJSON(p.FinalQuote); err != nil {
		return c, err
	}
	if c.AvailabilityInfo, err = encodeJSON(p.AvailabilityInfo); err != nil {
		return c, err
	}
	c.EmailDraft = derefString(p.EmailDraft)
	c.Status = string(p.Status)
	c.ErrorDetails = derefString(p.ErrorDetails)
	c.CreatedAt = formatTime(p.CreatedAt)
	c.UpdatedAt = formatTime(p.UpdatedAt)
	return c, nil
}

func fromProjectColumns(c projectColumns) (entities.Project, error) {
	p := entities.Project{
		ID:              c.ProjectID,
		CustomerRequest: c.CustomerRequest,
		EmailDraft:      optionalString(c.EmailDraft),
		Status:          entities.ProjectStatus(c.Status),
		ErrorDetails:    optionalString(c.ErrorDetails),
		CreatedAt:       parseTime(c.CreatedAt),
		UpdatedAt:       parseTime(c.UpdatedAt),
	}
	var err error
	if p.ExtractedDetails, err = decodeJSON[entities.ExtractedDetails](c.ExtractedDetails); err != nil {
		return entities.Project{}, err
	}
	if p.QuoteDraft, err = decodeJSON[entities.QuoteDraft](c.QuoteDraft); err != nil {
		return entities.Project{}, err
	}
	if p.FinalQuote, err = decodeJSON[entities.QuoteDraft](c.FinalQuote); err != nil {
		return entities.Project{}, err
	}
	if p.AvailabilityInfo, err = decodeJSON[entities.AvailabilityInfo](c.AvailabilityInfo); err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

// updateColumns lists the column/value pairs written by a ProjectUpdate, in a
// fixed order. Status and updated_at are always present.
func updateColumns(u entities.ProjectUpdate, now time.Time) ([][2]string, error) {
	cols := [][2]string{{"status", string(u.Status)}}

	type jsonField struct {
		name string
		enc  func() (string, error)
		set  bool
	}
	fields := []jsonField{
		{"extracted_details", func() (string, error) { return encodeJSON(u.ExtractedDetails) }, u.ExtractedDetails != nil},
		{"quote_draft", func() (string, error) { return encodeJSON(u.QuoteDraft) }, u.QuoteDraft != nil},
		{"final_quote", func() (string, error) { return encodeJSON(u.FinalQuote) }, u.FinalQuote != nil},
		{"availability_info", func() (string, error) { return encodeJSON(u.AvailabilityInfo) }, u.AvailabilityInfo != nil},
	}
	for _, f := range fields {
		if !f.set {
			continue
		}
		v, err := f.enc()
		if err != nil {
			return nil, err
		}
		cols = append(cols, [2]string{f.name, v})
	}
	if u.EmailDraft != nil {
		cols = append(cols, [2]string{"email_draft", *u.EmailDraft})
	}
	if u.ErrorDetails != nil {
		cols = append(cols, [2]string{"error_details", *u.ErrorDetails})
	}
	cols = append(cols, [2]string{"updated_at", formatTime(now)})
	return cols, nil
}
