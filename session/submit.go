package session

import (
	"strings"

	"github.com/linesmerrill/report-nui/form"
	"github.com/linesmerrill/report-nui/models"
	"github.com/linesmerrill/report-nui/schema"
)

// PlaceholderSubject is sent when neither an override field nor the
// generic input provides a subject
const PlaceholderSubject = "Report"

// BuildReport assembles the submitReport payload from a validated draft.
// fields are the selected category's fields.
func BuildReport(d *form.Draft, fields []schema.Field, identity *models.PlayerData) models.Report {
	subject, description := SubjectAndDescription(d, fields)

	attachments := d.Attachments()
	customFields := make(map[string]string, len(d.CustomFields))
	for k, v := range d.CustomFields {
		customFields[k] = v
	}

	reporter := models.Reporter{Identifiers: map[string]string{}}
	if identity != nil {
		reporter.FivemID = identity.FivemID
		reporter.Name = identity.Name
		reporter.Position = identity.Position
		for k, v := range identity.Identifiers {
			reporter.Identifiers[k] = v
		}
	}

	return models.Report{
		Category:     d.Category,
		Subject:      subject,
		Description:  description,
		Priority:     models.PriorityNormal,
		Reporter:     reporter,
		Targets:      append([]models.Target{}, d.Targets...),
		Attachments:  attachments,
		CustomFields: customFields,
		EvidenceURLs: append([]string{}, attachments...),
	}
}

// SubjectAndDescription picks the final subject and description. A text
// field labelled "subject" or a textarea labelled "description" with a
// non-blank value overrides the trimmed generic input and is sent as typed.
func SubjectAndDescription(d *form.Draft, fields []schema.Field) (string, string) {
	subject := strings.TrimSpace(d.Subject)
	description := strings.TrimSpace(d.Description)

	if f, ok := findOverride(fields, schema.FieldText, "subject"); ok {
		if v := d.CustomFields[f.ID]; strings.TrimSpace(v) != "" {
			subject = v
		}
	}
	if f, ok := findOverride(fields, schema.FieldTextarea, "description"); ok {
		if v := d.CustomFields[f.ID]; strings.TrimSpace(v) != "" {
			description = v
		}
	}

	if subject == "" {
		subject = PlaceholderSubject
	}
	return subject, description
}

func findOverride(fields []schema.Field, t schema.FieldType, word string) (schema.Field, bool) {
	for _, f := range fields {
		if f.Type == t && strings.Contains(strings.ToLower(f.Label), word) {
			return f, true
		}
	}
	return schema.Field{}, false
}
