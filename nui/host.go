package nui

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/linesmerrill/report-nui/models"
)

// Callback names understood by the host
const (
	CallRequestPlayerData       = "requestPlayerData"
	CallRequestServerConfig     = "requestServerConfig"
	CallRequestScreenshotUpload = "requestScreenshotUpload"
	CallSubmitReport            = "submitReport"
	CallCloseReport             = "closeReport"
)

// RequestPlayerData fetches the reporter identity. It fails when the host
// answers without success or without player data.
func RequestPlayerData(ctx context.Context, t Transport) (*models.PlayerData, error) {
	raw, err := t.Call(ctx, CallRequestPlayerData, nil)
	if err != nil {
		return nil, err
	}
	var res models.PlayerDataResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", CallRequestPlayerData, err)
	}
	if !res.Success || res.PlayerData == nil {
		return nil, ErrNoPlayerData
	}
	pd := res.PlayerData
	if pd.Identifiers == nil {
		pd.Identifiers = map[string]string{}
	}
	return pd, nil
}

// RequestServerConfig fetches the form configuration. A response without a
// config is not an error; the caller falls back to built-in defaults.
func RequestServerConfig(ctx context.Context, t Transport) (*models.ServerConfig, error) {
	raw, err := t.Call(ctx, CallRequestServerConfig, nil)
	if err != nil {
		return nil, err
	}
	var res models.ServerConfigResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", CallRequestServerConfig, err)
	}
	if !res.Success {
		return nil, nil
	}
	return res.Config, nil
}

// RequestScreenshotUpload asks the host to capture and upload a screenshot
func RequestScreenshotUpload(ctx context.Context, t Transport) (models.ScreenshotResponse, error) {
	var res models.ScreenshotResponse
	raw, err := t.Call(ctx, CallRequestScreenshotUpload, nil)
	if err != nil {
		return res, err
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		return res, fmt.Errorf("failed to decode %s response: %w", CallRequestScreenshotUpload, err)
	}
	return res, nil
}

// SubmitReport hands a report to the host. The response only tells whether
// the host accepted the request; the ticket outcome arrives as a push.
func SubmitReport(ctx context.Context, t Transport, report models.Report) (models.CallResponse, error) {
	var res models.CallResponse
	raw, err := t.Call(ctx, CallSubmitReport, report)
	if err != nil {
		return res, err
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		return res, fmt.Errorf("failed to decode %s response: %w", CallSubmitReport, err)
	}
	return res, nil
}

// CloseReport tells the host the overlay closed. Best effort.
func CloseReport(ctx context.Context, t Transport) {
	t.Send(ctx, CallCloseReport, nil)
}
