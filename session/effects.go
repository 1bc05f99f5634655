package session

import "github.com/linesmerrill/report-nui/models"

// Effect is a host call the state machine asks its runtime to perform
type Effect interface {
	effect()
}

// FetchPlayerData requests the reporter identity.
type FetchPlayerData struct {
	Generation int
}

// FetchServerConfig requests the form configuration.
type FetchServerConfig struct {
	Generation int
}

// CaptureScreenshot requests a screenshot upload.
type CaptureScreenshot struct {
	Generation int
	FieldID    string
}

// SendReport issues the submitReport call.
type SendReport struct {
	Token  string
	Report models.Report
}

// NotifyClosed tells the host the overlay closed.
type NotifyClosed struct{}

func (FetchPlayerData) effect()   {}
func (FetchServerConfig) effect() {}
func (CaptureScreenshot) effect() {}
func (SendReport) effect()        {}
func (NotifyClosed) effect()      {}
