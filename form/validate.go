package form

import (
	"strings"
	"unicode/utf8"

	"github.com/linesmerrill/report-nui/schema"
)

// Length limits, counted in characters after trimming
const (
	MaxSubjectLength     = 80
	MinDescriptionLength = 20
	MaxDescriptionLength = 2000
)

// Keys of the fixed inputs in Result.Errors
const (
	KeyCategory    = "category"
	KeySubject     = "subject"
	KeyDescription = "description"
)

// Validation messages
const (
	MsgSelectCategory     = "Select a category"
	MsgSubjectRequired    = "Title is required"
	MsgSubjectTooLong     = "Title must be 80 characters or less"
	MsgDescriptionShort   = "Description must be at least 20 characters"
	MsgDescriptionTooLong = "Description must be 2000 characters or less"
	MsgFixErrors          = "Please fix the errors above"
)

// Result is the outcome of one validation run
type Result struct {
	// Errors holds errors of the category, subject and description inputs
	Errors map[string]string
	// FieldErrors holds errors of custom fields keyed by field id
	FieldErrors map[string]string
	// Headline is the single message shown in the form banner
	Headline string
}

// Valid reports whether the run found no errors at all
func (r Result) Valid() bool {
	return len(r.Errors) == 0 && len(r.FieldErrors) == 0
}

// Validate checks the draft against the fields of the selected category.
// fields must be in display order; the first failing one supplies the
// headline when the fixed inputs are all fine.
func Validate(d *Draft, fields []schema.Field) Result {
	r := Result{
		Errors:      map[string]string{},
		FieldErrors: map[string]string{},
	}

	if d.Category == "" {
		r.Errors[KeyCategory] = MsgSelectCategory
	}

	subject := strings.TrimSpace(d.Subject)
	switch {
	case subject == "":
		r.Errors[KeySubject] = MsgSubjectRequired
	case utf8.RuneCountInString(subject) > MaxSubjectLength:
		r.Errors[KeySubject] = MsgSubjectTooLong
	}

	description := strings.TrimSpace(d.Description)
	switch n := utf8.RuneCountInString(description); {
	case n < MinDescriptionLength:
		r.Errors[KeyDescription] = MsgDescriptionShort
	case n > MaxDescriptionLength:
		r.Errors[KeyDescription] = MsgDescriptionTooLong
	}

	firstField := ""
	for _, f := range fields {
		if !f.Required {
			continue
		}
		if v, ok := d.CustomFields[f.ID]; ok && strings.TrimSpace(v) != "" {
			continue
		}
		msg := f.DisplayLabel() + " is required"
		r.FieldErrors[f.ID] = msg
		if firstField == "" {
			firstField = msg
		}
	}

	switch {
	case r.Valid():
	case r.Errors[KeyCategory] != "":
		r.Headline = r.Errors[KeyCategory]
	case r.Errors[KeySubject] != "":
		r.Headline = r.Errors[KeySubject]
	case r.Errors[KeyDescription] != "":
		r.Headline = r.Errors[KeyDescription]
	case firstField != "":
		r.Headline = firstField
	default:
		r.Headline = MsgFixErrors
	}
	return r
}
