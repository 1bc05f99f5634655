package handlers

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/linesmerrill/report-nui/models"
)

// Fixture is the canned game state the development host serves
type Fixture struct {
	Host              models.HostInfo      `json:"host"`
	Player            *models.PlayerData   `json:"player"`
	Config            *models.ServerConfig `json:"config"`
	ScreenshotBaseURL string               `json:"screenshotBaseUrl"`
	TicketBaseURL     string               `json:"ticketBaseUrl"`
}

func intPtr(i int) *int { return &i }

// DefaultFixture returns the fixture used when no file is configured
func DefaultFixture() *Fixture {
	near := 4.2
	far := 18.9
	return &Fixture{
		Host: models.HostInfo{ServerName: "Development Server", Version: "dev"},
		Player: &models.PlayerData{
			FivemID:     1,
			Name:        "Developer",
			Identifiers: map[string]string{"license": "license:0000000000000000000000000000000000000001"},
			Position:    &models.Position{X: -268.4, Y: -957.1, Z: 31.2},
			NearbyPlayers: []models.NearbyPlayer{
				{FivemID: 2, Name: "Trevor", Distance: &near},
				{FivemID: 3, Name: "Franklin", Distance: &far},
			},
		},
		Config: &models.ServerConfig{
			ReportFormConfig: &models.ReportFormConfig{
				IntroText: "Reports are reviewed by staff. False reports may be actioned.",
				Categories: []models.FormCategory{
					{ID: "cheating", Label: "Cheating", Fields: []models.FieldConfig{
						{ID: "cheat_type", Label: "Cheat type", Type: "select", Required: true, Order: intPtr(1),
							Options: []string{"Aimbot", "Speed hack", "Teleport", "Other"}},
						{ID: "proof", Label: "Screenshot", Type: "screenshot", Order: intPtr(2)},
					}},
					{ID: "harassment", Label: "Harassment"},
					{ID: "bug", Label: "Bug", Fields: []models.FieldConfig{
						{ID: "bug_subject", Label: "Bug subject", Type: "text", Order: intPtr(1)},
						{ID: "steps", Label: "Steps to reproduce", Type: "textarea", Required: true, Order: intPtr(2)},
					}},
					{ID: "other", Label: "Other"},
				},
			},
		},
		ScreenshotBaseURL: "https://cdn.example.invalid/screenshots",
		TicketBaseURL:     "https://tickets.example.invalid/t",
	}
}

// LoadFixture reads a fixture from a YAML file. The YAML is converted to
// JSON first so the models' JSON decoding rules apply.
func LoadFixture(path string) (*Fixture, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse fixture %s: %w", path, err)
	}
	j, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert fixture %s: %w", path, err)
	}

	var f Fixture
	if err := json.Unmarshal(j, &f); err != nil {
		return nil, fmt.Errorf("failed to decode fixture %s: %w", path, err)
	}

	// a fixture without config leaves the overlay on its built-in categories
	d := DefaultFixture()
	host := d.Host
	host.Merge(f.Host)
	f.Host = host
	if f.Player == nil {
		f.Player = d.Player
	}
	if f.Player.Identifiers == nil {
		f.Player.Identifiers = map[string]string{}
	}
	if f.ScreenshotBaseURL == "" {
		f.ScreenshotBaseURL = d.ScreenshotBaseURL
	}
	if f.TicketBaseURL == "" {
		f.TicketBaseURL = d.TicketBaseURL
	}
	return &f, nil
}
