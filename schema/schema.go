package schema

import (
	"sort"
	"strings"

	"github.com/linesmerrill/report-nui/models"
)

// FieldType enumerates the kinds of custom field a category can define
type FieldType string

// Supported field types
const (
	FieldText       FieldType = "text"
	FieldTextarea   FieldType = "textarea"
	FieldSelect     FieldType = "select"
	FieldNumber     FieldType = "number"
	FieldScreenshot FieldType = "screenshot"
	FieldFileUpload FieldType = "file-upload"
)

// DefaultOrder is the display order of a field that does not set one
const DefaultOrder = 999

// Field is a resolved custom field of a category
type Field struct {
	ID          string
	Label       string
	Type        FieldType
	Required    bool
	Order       int
	Options     []string
	Placeholder string
}

// DisplayLabel returns the label, or the id when no label is set
func (f Field) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.ID
}

// Category is a resolved report category with its fields in display order
type Category struct {
	ID     string
	Label  string
	Fields []Field
}

// Field looks up one of the category's fields by id
func (c Category) Field(id string) (Field, bool) {
	for _, f := range c.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

// DefaultCategories returns the built-in categories used when the host
// supplies none
func DefaultCategories() []Category {
	return []Category{
		{ID: "scam", Label: "Scam"},
		{ID: "harassment", Label: "Harassment"},
		{ID: "exploit", Label: "Exploit"},
		{ID: "cheating", Label: "Cheating"},
		{ID: "other", Label: "Other"},
	}
}

// Resolve turns the host configuration into the ordered category list.
// reportFormConfig.categories wins, then the legacy categories list, then
// the built-in defaults. Entries without an id are skipped.
func Resolve(cfg *models.ServerConfig) []Category {
	if cfg != nil && cfg.ReportFormConfig != nil && len(cfg.ReportFormConfig.Categories) > 0 {
		cats := make([]Category, 0, len(cfg.ReportFormConfig.Categories))
		for _, c := range cfg.ReportFormConfig.Categories {
			if c.ID == "" {
				continue
			}
			label := c.Label
			if label == "" {
				label = c.ID
			}
			cats = append(cats, Category{ID: c.ID, Label: label, Fields: resolveFields(c.Fields)})
		}
		return cats
	}

	if cfg != nil && len(cfg.Categories) > 0 {
		cats := make([]Category, 0, len(cfg.Categories))
		for _, c := range cfg.Categories {
			id := c.ID
			if id == "" {
				id = c.Value
			}
			if id == "" {
				continue
			}
			label := firstNonEmpty(c.Label, c.Name, id)
			cats = append(cats, Category{ID: id, Label: label})
		}
		return cats
	}

	return DefaultCategories()
}

// Find returns the category with the given id
func Find(categories []Category, id string) (Category, bool) {
	if id == "" {
		return Category{}, false
	}
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// SortFields returns a copy of fields ordered by Order, keeping the
// original sequence on ties
func SortFields(fields []Field) []Field {
	sorted := make([]Field, len(fields))
	copy(sorted, fields)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}

// HasScreenshotField reports whether any field is screenshot-typed, in which
// case the generic screenshot section is not shown
func HasScreenshotField(fields []Field) bool {
	for _, f := range fields {
		if f.Type == FieldScreenshot {
			return true
		}
	}
	return false
}

// ParseFieldType normalises a host field type. Unknown types render as text.
func ParseFieldType(s string) FieldType {
	switch t := FieldType(strings.ToLower(strings.TrimSpace(s))); t {
	case FieldText, FieldTextarea, FieldSelect, FieldNumber, FieldScreenshot, FieldFileUpload:
		return t
	default:
		return FieldText
	}
}

func resolveFields(in []models.FieldConfig) []Field {
	fields := make([]Field, 0, len(in))
	for _, fc := range in {
		if fc.ID == "" {
			continue
		}
		order := DefaultOrder
		if fc.Order != nil {
			order = *fc.Order
		}
		fields = append(fields, Field{
			ID:          fc.ID,
			Label:       fc.Label,
			Type:        ParseFieldType(fc.Type),
			Required:    fc.Required,
			Order:       order,
			Options:     fc.Options,
			Placeholder: fc.Placeholder,
		})
	}
	return SortFields(fields)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
