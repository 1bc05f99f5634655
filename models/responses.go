package models

// HealthCheckResponse returns the health check response duh
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}

// CallResponse is the acknowledgement every host call carries
type CallResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// PlayerDataResponse is the response of requestPlayerData
type PlayerDataResponse struct {
	Success    bool        `json:"success"`
	PlayerData *PlayerData `json:"playerData,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// ServerConfigResponse is the response of requestServerConfig
type ServerConfigResponse struct {
	Success bool          `json:"success"`
	Config  *ServerConfig `json:"config,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// ScreenshotResponse is the response of requestScreenshotUpload
type ScreenshotResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url,omitempty"`
	Error   string `json:"error,omitempty"`
}

// PushResponse reports how many overlays received a pushed notification
type PushResponse struct {
	Success   bool `json:"success"`
	Delivered int  `json:"delivered"`
}

// ReporterResponse holds how many tickets a reporter has filed
type ReporterResponse struct {
	FivemID int   `json:"fivemId"`
	Tickets int64 `json:"tickets"`
}
