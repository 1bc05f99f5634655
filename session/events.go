package session

import "github.com/linesmerrill/report-nui/models"

// Event is an input to the session state machine
type Event interface {
	event()
}

// Open opens the overlay. Valid from any view.
type Open struct {
	Info models.HostInfo
}

// Close closes the overlay, by user or host. Valid from any open view.
type Close struct{}

// KeyPressed is a keyboard event; Escape closes the overlay.
type KeyPressed struct {
	Key string
}

// BackdropClicked is a click outside the form; it closes the overlay.
type BackdropClicked struct{}

// HostInit carries metadata from an INIT message.
type HostInit struct {
	Info models.HostInfo
}

// PlayerDataLoaded completes the identity fetch of an open cycle.
type PlayerDataLoaded struct {
	Generation int
	Data       *models.PlayerData
	Err        error
}

// ServerConfigLoaded completes the config fetch of an open cycle.
type ServerConfigLoaded struct {
	Generation int
	Config     *models.ServerConfig
	Err        error
}

// SelectCategory picks a category; "" clears the selection.
type SelectCategory struct {
	ID string
}

// EditSubject replaces the generic subject input.
type EditSubject struct {
	Value string
}

// EditDescription replaces the generic description input.
type EditDescription struct {
	Value string
}

// EditField sets a custom field of the selected category.
type EditField struct {
	ID    string
	Value string
}

// AddEvidence appends an empty evidence slot.
type AddEvidence struct{}

// EditEvidence replaces an evidence entry.
type EditEvidence struct {
	Index int
	Value string
}

// RemoveEvidence deletes an evidence entry.
type RemoveEvidence struct {
	Index int
}

// ToggleTarget checks or unchecks a nearby player.
type ToggleTarget struct {
	FivemID int
	Checked bool
}

// RequestScreenshot starts a screenshot capture. FieldID names the
// screenshot field that asked for it, or is empty for the generic button.
type RequestScreenshot struct {
	FieldID string
}

// ScreenshotCaptured completes a screenshot capture.
type ScreenshotCaptured struct {
	Generation int
	FieldID    string
	Response   models.ScreenshotResponse
	Err        error
}

// ScreenshotReady is a screenshot pushed by the host.
type ScreenshotReady struct {
	URL string
}

// Submit asks to submit the draft.
type Submit struct{}

// SubmitAcknowledged completes the submitReport call.
type SubmitAcknowledged struct {
	Token    string
	Response models.CallResponse
	Err      error
}

// Result is the host-pushed outcome of a submission.
type Result struct {
	Outcome models.ReportSubmitted
}

func (Open) event()               {}
func (Close) event()              {}
func (KeyPressed) event()         {}
func (BackdropClicked) event()    {}
func (HostInit) event()           {}
func (PlayerDataLoaded) event()   {}
func (ServerConfigLoaded) event() {}
func (SelectCategory) event()     {}
func (EditSubject) event()        {}
func (EditDescription) event()    {}
func (EditField) event()          {}
func (AddEvidence) event()        {}
func (EditEvidence) event()       {}
func (RemoveEvidence) event()     {}
func (ToggleTarget) event()       {}
func (RequestScreenshot) event()  {}
func (ScreenshotCaptured) event() {}
func (ScreenshotReady) event()    {}
func (Submit) event()             {}
func (SubmitAcknowledged) event() {}
func (Result) event()             {}

// EventFor maps a host notification to the event it triggers
func EventFor(n models.Notification) (Event, bool) {
	switch v := n.(type) {
	case models.OpenReport:
		return Open{Info: v.HostInfo}, true
	case models.CloseReport:
		return Close{}, true
	case models.ReportSubmitted:
		return Result{Outcome: v}, true
	case models.ScreenshotReady:
		return ScreenshotReady{URL: v.URL}, true
	case models.Init:
		return HostInit{Info: v.HostInfo}, true
	}
	return nil, false
}
