package nui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/linesmerrill/report-nui/models"
)

// DecodeNotification parses a host push message into its typed form.
// Messages with an unknown action, or missing the fields their action
// requires, are rejected rather than passed on half-filled.
func DecodeNotification(raw []byte) (models.Notification, error) {
	var env models.NotificationEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to decode notification: %w", err)
	}

	switch env.Action {
	case models.ActionOpenReport:
		var n models.OpenReport
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", env.Action, err)
		}
		return n, nil
	case models.ActionCloseReport:
		return models.CloseReport{Action: models.ActionCloseReport}, nil
	case models.ActionReportSubmitted:
		var n models.ReportSubmitted
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", env.Action, err)
		}
		return n, nil
	case models.ActionScreenshotReady:
		var n models.ScreenshotReady
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", env.Action, err)
		}
		n.URL = strings.TrimSpace(n.URL)
		if n.URL == "" {
			return nil, fmt.Errorf("%w: %s without url", ErrMalformedNotification, env.Action)
		}
		return n, nil
	case "":
		if env.Type == models.TypeInit {
			var n models.Init
			if err := json.Unmarshal(raw, &n); err != nil {
				return nil, fmt.Errorf("failed to decode %s: %w", env.Type, err)
			}
			return n, nil
		}
	}
	return nil, fmt.Errorf("%w: action %q", ErrUnknownNotification, env.Action)
}
