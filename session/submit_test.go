package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linesmerrill/report-nui/form"
	"github.com/linesmerrill/report-nui/models"
	"github.com/linesmerrill/report-nui/schema"
	"github.com/linesmerrill/report-nui/session"
)

func TestSubjectAndDescription_Overrides(t *testing.T) {
	fields := []schema.Field{
		{ID: "incident_subject", Label: "Incident Subject", Type: schema.FieldText},
		{ID: "details", Label: "Full description", Type: schema.FieldTextarea},
	}
	d := form.NewDraft()
	d.Subject = "generic"
	d.Description = "generic description"

	subject, description := session.SubjectAndDescription(d, fields)
	assert.Equal(t, "generic", subject)
	assert.Equal(t, "generic description", description)

	d.SetField("incident_subject", "  from field  ")
	d.SetField("details", "field description\n")
	subject, description = session.SubjectAndDescription(d, fields)
	assert.Equal(t, "  from field  ", subject)
	assert.Equal(t, "field description\n", description)

	// blank override values fall back to the generic inputs
	d.SetField("incident_subject", "   ")
	d.SetField("details", "")
	subject, description = session.SubjectAndDescription(d, fields)
	assert.Equal(t, "generic", subject)
	assert.Equal(t, "generic description", description)
}

func TestSubjectAndDescription_TypeMustMatch(t *testing.T) {
	// a textarea labelled subject does not override the title
	fields := []schema.Field{{ID: "s", Label: "Subject", Type: schema.FieldTextarea}}
	d := form.NewDraft()
	d.SetField("s", "ignored")

	subject, description := session.SubjectAndDescription(d, fields)
	assert.Equal(t, session.PlaceholderSubject, subject)
	assert.Equal(t, "", description)
}

func TestBuildReport(t *testing.T) {
	identity := &models.PlayerData{
		FivemID:     3,
		Name:        "Dana",
		Identifiers: map[string]string{"discord": "discord:1"},
		Position:    &models.Position{X: 1, Y: 2, Z: 3},
	}
	d := form.NewDraft()
	d.SelectCategory("other")
	d.Subject = "Title"
	d.Description = "Something happened near the bank."
	d.SetField("where", "bank")
	d.AddEvidence()
	d.AddEvidence()
	d.EditEvidence(1, "https://a")
	d.ApplyScreenshot("https://shot", "")

	r := session.BuildReport(d, nil, identity)
	assert.Equal(t, "other", r.Category)
	assert.Equal(t, models.PriorityNormal, r.Priority)
	assert.Equal(t, models.Reporter{
		FivemID:     3,
		Name:        "Dana",
		Identifiers: map[string]string{"discord": "discord:1"},
		Position:    &models.Position{X: 1, Y: 2, Z: 3},
	}, r.Reporter)
	assert.Equal(t, []string{"https://a", "https://shot"}, r.Attachments)
	assert.Equal(t, r.Attachments, r.EvidenceURLs)
	assert.Equal(t, map[string]string{"where": "bank"}, r.CustomFields)
	assert.Empty(t, r.Targets)

	// the report does not alias the draft
	d.SetField("where", "docks")
	identity.Identifiers["steam"] = "steam:1"
	assert.Equal(t, "bank", r.CustomFields["where"])
	assert.Len(t, r.Reporter.Identifiers, 1)
}
