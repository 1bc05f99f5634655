package session

import (
	"github.com/linesmerrill/report-nui/form"
	"github.com/linesmerrill/report-nui/models"
	"github.com/linesmerrill/report-nui/schema"
)

// View is the presentation state of the overlay
type View string

// Views of the overlay
const (
	ViewClosed     View = "closed"
	ViewLoading    View = "loading"
	ViewForm       View = "form"
	ViewSubmitting View = "submitting"
	ViewSuccess    View = "success"
	ViewError      View = "error"
)

// Banner texts
const (
	MsgLoadFailed        = "Could not load form. Try again."
	MsgSendFailed        = "Failed to send report. Try again."
	MsgSubmitFailed      = "Submit failed"
	MsgReportNotSent     = "Report could not be sent."
	MsgSubmitted         = "Your report was submitted successfully."
	MsgSubmittedNumbered = "Your report was submitted. Ticket #%d"
	MsgCooldown          = "You can report again in %d seconds."
)

// TicketResult is the ticket created by an accepted submission
type TicketResult struct {
	TicketID     string
	TicketNumber *int64
	TicketURL    string
}

// Session is the single source of truth for one overlay. It is mutated only
// by Apply, from one goroutine.
type Session struct {
	View       View
	Init       models.HostInfo
	Identity   *models.PlayerData
	Config     *models.ServerConfig
	Categories []schema.Category
	Labels     schema.Labels
	Draft      *form.Draft

	// FormError is the banner text; empty hides the banner
	FormError  string
	Validation form.Result

	CooldownRemaining int
	LastResult        *TicketResult
	SuccessMessage    string
	SubmitAttempts    int

	generation        int
	load              loadState
	submission        string
	screenshotPending bool
}

type loadState struct {
	identityDone bool
	configDone   bool
	identity     *models.PlayerData
	identityErr  error
	config       *models.ServerConfig
}

// New returns a closed session with an empty draft
func New() *Session {
	return &Session{
		View:       ViewClosed,
		Categories: schema.DefaultCategories(),
		Labels:     schema.DefaultLabels(),
		Draft:      form.NewDraft(),
	}
}

// SelectedCategory returns the resolved category the draft points at
func (s *Session) SelectedCategory() (schema.Category, bool) {
	return schema.Find(s.Categories, s.Draft.Category)
}

// ScreenshotPending reports whether a screenshot capture is in flight
func (s *Session) ScreenshotPending() bool {
	return s.screenshotPending
}

// SubmissionToken returns the token of the in-flight submission, if any
func (s *Session) SubmissionToken() string {
	return s.submission
}

// Generation returns the counter identifying the current open cycle
func (s *Session) Generation() int {
	return s.generation
}

// Snapshot is a read-only copy of a session for observers
type Snapshot struct {
	View              View
	Init              models.HostInfo
	Identity          *models.PlayerData
	Categories        []schema.Category
	Labels            schema.Labels
	Draft             *form.Draft
	FormError         string
	Validation        form.Result
	CooldownRemaining int
	LastResult        *TicketResult
	SuccessMessage    string
	SubmitAttempts    int
	ScreenshotPending bool
}

// CooldownNotice returns the cooldown text, or "" when no cooldown is shown
func (s Snapshot) CooldownNotice() string {
	if s.CooldownRemaining <= 0 {
		return ""
	}
	return fmtCooldown(s.CooldownRemaining)
}

// Snapshot copies the session. Categories and Identity are replaced, never
// mutated, after an open completes, so they are shared.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		View:              s.View,
		Init:              s.Init,
		Identity:          s.Identity,
		Categories:        s.Categories,
		Labels:            s.Labels,
		Draft:             s.Draft.Clone(),
		FormError:         s.FormError,
		Validation:        copyResult(s.Validation),
		CooldownRemaining: s.CooldownRemaining,
		SuccessMessage:    s.SuccessMessage,
		SubmitAttempts:    s.SubmitAttempts,
		ScreenshotPending: s.screenshotPending,
	}
	if s.LastResult != nil {
		r := *s.LastResult
		snap.LastResult = &r
	}
	return snap
}

func copyResult(r form.Result) form.Result {
	c := form.Result{Headline: r.Headline}
	if r.Errors != nil {
		c.Errors = make(map[string]string, len(r.Errors))
		for k, v := range r.Errors {
			c.Errors[k] = v
		}
	}
	if r.FieldErrors != nil {
		c.FieldErrors = make(map[string]string, len(r.FieldErrors))
		for k, v := range r.FieldErrors {
			c.FieldErrors[k] = v
		}
	}
	return c
}
