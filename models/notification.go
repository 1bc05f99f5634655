package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Actions carried by host push notifications
const (
	ActionOpenReport      = "openReport"
	ActionCloseReport     = "closeReport"
	ActionReportSubmitted = "reportSubmitted"
	ActionScreenshotReady = "screenshotReady"
)

// TypeInit marks the metadata message the host sends before or with openReport
const TypeInit = "INIT"

// Notification is implemented by every decoded host push message
type Notification interface {
	NotificationAction() string
}

// NotificationEnvelope holds the discriminator fields of a push message
type NotificationEnvelope struct {
	Action string `json:"action,omitempty"`
	Type   string `json:"type,omitempty"`
}

// HostInfo holds the metadata the host attaches to INIT and openReport
type HostInfo struct {
	ServerName        string `json:"serverName,omitempty"`
	CooldownRemaining *int   `json:"cooldownRemaining,omitempty"`
	PlayerName        string `json:"playerName,omitempty"`
	Theme             string `json:"theme,omitempty"`
	Version           string `json:"version,omitempty"`
}

// Merge copies the fields of other that are set over h
func (h *HostInfo) Merge(other HostInfo) {
	if other.ServerName != "" {
		h.ServerName = other.ServerName
	}
	if other.CooldownRemaining != nil {
		v := *other.CooldownRemaining
		h.CooldownRemaining = &v
	}
	if other.PlayerName != "" {
		h.PlayerName = other.PlayerName
	}
	if other.Theme != "" {
		h.Theme = other.Theme
	}
	if other.Version != "" {
		h.Version = other.Version
	}
}

// Init is the metadata-only INIT message
type Init struct {
	Type string `json:"type"`
	HostInfo
}

// NotificationAction implements Notification
func (Init) NotificationAction() string { return "" }

// OpenReport asks the overlay to open
type OpenReport struct {
	Action string `json:"action"`
	Type   string `json:"type,omitempty"`
	HostInfo
}

// NotificationAction implements Notification
func (OpenReport) NotificationAction() string { return ActionOpenReport }

// CloseReport asks the overlay to close
type CloseReport struct {
	Action string `json:"action"`
}

// NotificationAction implements Notification
func (CloseReport) NotificationAction() string { return ActionCloseReport }

// ReportSubmitted carries the final outcome of a submission
type ReportSubmitted struct {
	Action          string `json:"action"`
	Success         bool   `json:"success"`
	TicketID        FlexID `json:"ticketId,omitempty"`
	TicketNumber    *int64 `json:"ticketNumber,omitempty"`
	TicketURL       string `json:"ticketUrl,omitempty"`
	Error           string `json:"error,omitempty"`
	CooldownSeconds *int   `json:"cooldownSeconds,omitempty"`
}

// NotificationAction implements Notification
func (ReportSubmitted) NotificationAction() string { return ActionReportSubmitted }

// UnmarshalJSON accepts ticketNumber and cooldownSeconds as numbers or
// numeric strings. Fractions are floored; a value that is not a number is
// treated as absent.
func (r *ReportSubmitted) UnmarshalJSON(data []byte) error {
	type plain ReportSubmitted
	var aux struct {
		plain
		TicketNumber    json.RawMessage `json:"ticketNumber"`
		CooldownSeconds json.RawMessage `json:"cooldownSeconds"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = ReportSubmitted(aux.plain)
	r.TicketNumber = nil
	r.CooldownSeconds = nil

	if n, ok := lenientInt(aux.TicketNumber); ok {
		r.TicketNumber = &n
	}
	if n, ok := lenientInt(aux.CooldownSeconds); ok && n >= math.MinInt32 && n <= math.MaxInt32 {
		secs := int(n)
		r.CooldownSeconds = &secs
	}
	return nil
}

func lenientInt(raw json.RawMessage) (int64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}
	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, false
		}
		text = strings.TrimSpace(text)
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	f = math.Floor(f)
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// ScreenshotReady announces a screenshot uploaded outside of a call
type ScreenshotReady struct {
	Action string `json:"action"`
	URL    string `json:"url"`
}

// NotificationAction implements Notification
func (ScreenshotReady) NotificationAction() string { return ActionScreenshotReady }

// FlexID is an identifier the host may send as a JSON string or number
type FlexID string

// UnmarshalJSON accepts "abc", 123 and null
func (f *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		*f = FlexID(strconv.FormatInt(i, 10))
		return nil
	}
	*f = FlexID(n.String())
	return nil
}
