package models

import (
	"bytes"
	"encoding/json"
)

// FieldConfig holds a custom form field as defined by the host
type FieldConfig struct {
	ID          string   `json:"id"`
	Label       string   `json:"label,omitempty"`
	Type        string   `json:"type,omitempty"`
	Required    bool     `json:"required,omitempty"`
	Order       *int     `json:"order,omitempty"`
	Options     []string `json:"options,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
}

// FormCategory holds a category of the reportFormConfig block
type FormCategory struct {
	ID     string        `json:"id"`
	Label  string        `json:"label,omitempty"`
	Fields []FieldConfig `json:"fields,omitempty"`
}

// ReportFormConfig holds the dynamic form definition and its label overrides
type ReportFormConfig struct {
	Categories             []FormCategory `json:"categories,omitempty"`
	TitleLabel             string         `json:"titleLabel,omitempty"`
	TitlePlaceholder       string         `json:"titlePlaceholder,omitempty"`
	DescriptionLabel       string         `json:"descriptionLabel,omitempty"`
	DescriptionPlaceholder string         `json:"descriptionPlaceholder,omitempty"`
	EvidenceLabel          string         `json:"evidenceLabel,omitempty"`
	AddURLLabel            string         `json:"addUrlLabel,omitempty"`
	ScreenshotLabel        string         `json:"screenshotLabel,omitempty"`
	ScreenshotButtonLabel  string         `json:"screenshotButtonLabel,omitempty"`
	IntroText              string         `json:"introText,omitempty"`
}

// CategoryEntry holds one entry of the legacy categories list. The host may
// send either an object or a bare string id.
type CategoryEntry struct {
	ID    string `json:"id,omitempty"`
	Value string `json:"value,omitempty"`
	Label string `json:"label,omitempty"`
	Name  string `json:"name,omitempty"`
}

// UnmarshalJSON accepts either {"id":"scam","label":"Scam"} or "scam"
func (c *CategoryEntry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = CategoryEntry{ID: s}
		return nil
	}

	type plain CategoryEntry
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = CategoryEntry(p)
	return nil
}

// ServerConfig holds the server configuration returned by requestServerConfig
type ServerConfig struct {
	Categories       []CategoryEntry   `json:"categories,omitempty"`
	ReportFormConfig *ReportFormConfig `json:"reportFormConfig,omitempty"`
}
