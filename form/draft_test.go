package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linesmerrill/report-nui/form"
	"github.com/linesmerrill/report-nui/models"
)

func TestDraft_SelectCategoryDropsFields(t *testing.T) {
	d := form.NewDraft()
	d.SelectCategory("exploit")
	d.SetField("severity", "high")
	d.Subject = "kept"
	d.AddEvidence()

	d.SelectCategory("other")
	assert.Empty(t, d.CustomFields)
	assert.Equal(t, "kept", d.Subject)
	assert.Len(t, d.EvidenceURLs, 1)
}

func TestDraft_Evidence(t *testing.T) {
	d := form.NewDraft()
	d.AddEvidence()
	d.AddEvidence()
	assert.Equal(t, []string{"", ""}, d.EvidenceURLs)

	assert.True(t, d.EditEvidence(0, "https://a"))
	assert.False(t, d.EditEvidence(2, "https://b"))
	assert.False(t, d.EditEvidence(-1, "https://b"))
	assert.True(t, d.RemoveEvidence(1))
	assert.False(t, d.RemoveEvidence(1))
	assert.Equal(t, []string{"https://a"}, d.EvidenceURLs)
}

func TestDraft_ApplyScreenshot(t *testing.T) {
	d := form.NewDraft()
	d.AddEvidence()
	d.EditEvidence(0, "https://shot/1")

	d.ApplyScreenshot("https://shot/1", "proof")
	assert.Equal(t, []string{"https://shot/1"}, d.EvidenceURLs)
	assert.Equal(t, "https://shot/1", d.CustomFields["proof"])

	d.ApplyScreenshot("https://shot/2", "")
	assert.Equal(t, "https://shot/2", d.ScreenshotURL)
	assert.Equal(t, []string{"https://shot/1", "https://shot/2"}, d.EvidenceURLs)

	d.ApplyScreenshot("", "proof")
	assert.Equal(t, "https://shot/2", d.ScreenshotURL)
}

func TestDraft_Attachments(t *testing.T) {
	d := form.NewDraft()
	assert.Equal(t, []string{}, d.Attachments())

	d.EvidenceURLs = []string{"https://a", "", "https://b", "https://a"}
	d.ScreenshotURL = "https://c"
	assert.Equal(t, []string{"https://a", "https://b", "https://c"}, d.Attachments())

	// the screenshot was removed from evidence by the user but still attaches
	d.EvidenceURLs = []string{"https://a"}
	assert.Equal(t, []string{"https://a", "https://c"}, d.Attachments())
}

func TestDraft_Targets(t *testing.T) {
	nearby := []models.NearbyPlayer{{FivemID: 1, Name: "A"}, {FivemID: 2, Name: "B"}, {FivemID: 1, Name: "A again"}}
	d := form.NewDraft()

	d.SetTargetChecked(nearby, 2, true)
	d.SetTargetChecked(nearby, 1, true)
	d.SetTargetChecked(nearby, 99, true)
	assert.Equal(t, []models.Target{{FivemID: 1, Name: "A"}, {FivemID: 2, Name: "B"}}, d.Targets)
	assert.False(t, d.IsTargetChecked(99))

	d.SetTargetChecked(nearby, 1, false)
	assert.Equal(t, []models.Target{{FivemID: 2, Name: "B"}}, d.Targets)

	// a player who walked away is pruned
	d.RenderTargets([]models.NearbyPlayer{{FivemID: 1, Name: "A"}})
	assert.Empty(t, d.Targets)
	assert.False(t, d.IsTargetChecked(2))
}

func TestDraft_CloneIsDeep(t *testing.T) {
	d := form.NewDraft()
	d.SetField("a", "1")
	d.AddEvidence()
	c := d.Clone()

	d.SetField("a", "2")
	d.EditEvidence(0, "x")
	assert.Equal(t, "1", c.CustomFields["a"])
	assert.Equal(t, []string{""}, c.EvidenceURLs)
}

func TestDraft_Reset(t *testing.T) {
	d := form.NewDraft()
	d.SelectCategory("scam")
	d.Subject = "s"
	d.ApplyScreenshot("https://x", "")
	d.Reset()
	assert.Equal(t, form.NewDraft(), d)
}
