package schema

import (
	"strings"

	"github.com/linesmerrill/report-nui/models"
)

// Labels holds the text of the fixed form sections
type Labels struct {
	Title                  string
	TitlePlaceholder       string
	Description            string
	DescriptionPlaceholder string
	Evidence               string
	AddURL                 string
	Screenshot             string
	ScreenshotButton       string
	Intro                  string
}

// DefaultLabels returns the labels used when the host overrides none
func DefaultLabels() Labels {
	return Labels{
		Title:                  "Title",
		TitlePlaceholder:       "Short title",
		Description:            "Description",
		DescriptionPlaceholder: "Describe what happened (min 20 characters)",
		Evidence:               "Evidence (URLs)",
		AddURL:                 "+ Add URL",
		Screenshot:             "Screenshot",
		ScreenshotButton:       "Take screenshot",
	}
}

// LabelsFrom applies the host's reportFormConfig overrides to the defaults
func LabelsFrom(cfg *models.ServerConfig) Labels {
	l := DefaultLabels()
	if cfg == nil || cfg.ReportFormConfig == nil {
		return l
	}
	rfc := cfg.ReportFormConfig
	l.Title = firstNonEmpty(rfc.TitleLabel, l.Title)
	l.TitlePlaceholder = firstNonEmpty(rfc.TitlePlaceholder, l.TitlePlaceholder)
	l.Description = firstNonEmpty(rfc.DescriptionLabel, l.Description)
	l.DescriptionPlaceholder = firstNonEmpty(rfc.DescriptionPlaceholder, l.DescriptionPlaceholder)
	l.Evidence = firstNonEmpty(rfc.EvidenceLabel, l.Evidence)
	l.AddURL = firstNonEmpty(rfc.AddURLLabel, l.AddURL)
	l.Screenshot = firstNonEmpty(rfc.ScreenshotLabel, l.Screenshot)
	l.ScreenshotButton = firstNonEmpty(rfc.ScreenshotButtonLabel, l.ScreenshotButton)
	l.Intro = strings.TrimSpace(rfc.IntroText)
	return l
}
