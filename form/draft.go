package form

import "github.com/linesmerrill/report-nui/models"

// Draft is the user's in-progress report. It is owned by a single session
// and must only be touched from that session's event loop.
type Draft struct {
	Category      string
	Subject       string
	Description   string
	CustomFields  map[string]string
	EvidenceURLs  []string
	ScreenshotURL string
	Targets       []models.Target

	checked map[int]bool
}

// NewDraft returns an empty draft
func NewDraft() *Draft {
	return &Draft{
		CustomFields: map[string]string{},
		EvidenceURLs: []string{},
		Targets:      []models.Target{},
		checked:      map[int]bool{},
	}
}

// Reset empties the draft in place
func (d *Draft) Reset() {
	*d = *NewDraft()
}

// SelectCategory switches the selected category. Custom field values are
// scoped to a category and are dropped; subject, description, evidence and
// targets are kept.
func (d *Draft) SelectCategory(id string) {
	d.Category = id
	d.CustomFields = map[string]string{}
}

// SetField stores the value of a custom field
func (d *Draft) SetField(id, value string) {
	if d.CustomFields == nil {
		d.CustomFields = map[string]string{}
	}
	d.CustomFields[id] = value
}

// Clone returns a deep copy suitable for handing to another goroutine
func (d *Draft) Clone() *Draft {
	c := &Draft{
		Category:      d.Category,
		Subject:       d.Subject,
		Description:   d.Description,
		CustomFields:  make(map[string]string, len(d.CustomFields)),
		EvidenceURLs:  append([]string{}, d.EvidenceURLs...),
		ScreenshotURL: d.ScreenshotURL,
		Targets:       append([]models.Target{}, d.Targets...),
		checked:       make(map[int]bool, len(d.checked)),
	}
	for k, v := range d.CustomFields {
		c.CustomFields[k] = v
	}
	for k, v := range d.checked {
		c.checked[k] = v
	}
	return c
}
