package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/report-nui/models"
)

func TestFlexID_UnmarshalJSON(t *testing.T) {
	tests := map[string]models.FlexID{
		`{"ticketId":"abc"}`: "abc",
		`{"ticketId":123}`:   "123",
		`{"ticketId":null}`:  "",
		`{}`:                 "",
	}
	for raw, want := range tests {
		var r models.ReportSubmitted
		require.NoError(t, json.Unmarshal([]byte(raw), &r), raw)
		assert.Equal(t, want, r.TicketID, raw)
	}

	var r models.ReportSubmitted
	assert.Error(t, json.Unmarshal([]byte(`{"ticketId":true}`), &r))
}

func TestHostInfo_Merge(t *testing.T) {
	thirty := 30
	h := models.HostInfo{ServerName: "A", PlayerName: "P"}
	h.Merge(models.HostInfo{ServerName: "B", CooldownRemaining: &thirty})

	assert.Equal(t, "B", h.ServerName)
	assert.Equal(t, "P", h.PlayerName)
	require.NotNil(t, h.CooldownRemaining)
	assert.Equal(t, 30, *h.CooldownRemaining)

	thirty = 0
	assert.Equal(t, 30, *h.CooldownRemaining)
}

func TestCategoryEntry_UnmarshalJSON(t *testing.T) {
	var cfg models.ServerConfig
	require.NoError(t, json.Unmarshal([]byte(`{"categories":["scam",{"value":"rdm","name":"RDM"}]}`), &cfg))
	assert.Equal(t, []models.CategoryEntry{{ID: "scam"}, {Value: "rdm", Name: "RDM"}}, cfg.Categories)

	assert.Error(t, json.Unmarshal([]byte(`{"categories":[42]}`), &cfg))
}

func TestReport_MarshalsWirePayload(t *testing.T) {
	r := models.Report{
		Category: "scam",
		Subject:  "s",
		Priority: models.PriorityNormal,
		Reporter: models.Reporter{FivemID: 1, Name: "A", Identifiers: map[string]string{}},
	}
	b, err := json.Marshal(r)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "normal", m["priority"])
	reporter := m["reporter"].(map[string]interface{})
	assert.Contains(t, reporter, "position")
	assert.Nil(t, reporter["position"])
	assert.Equal(t, float64(1), reporter["fivemId"])
}
