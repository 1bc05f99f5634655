package nui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/report-nui/models"
	"github.com/linesmerrill/report-nui/nui"
)

func TestDecodeNotification(t *testing.T) {
	n, err := nui.DecodeNotification([]byte(`{"action":"openReport","serverName":"Paleto","cooldownRemaining":12}`))
	require.NoError(t, err)
	open, ok := n.(models.OpenReport)
	require.True(t, ok)
	assert.Equal(t, "Paleto", open.ServerName)
	assert.Equal(t, 12, *open.CooldownRemaining)

	n, err = nui.DecodeNotification([]byte(`{"action":"closeReport"}`))
	require.NoError(t, err)
	assert.Equal(t, models.CloseReport{Action: models.ActionCloseReport}, n)

	n, err = nui.DecodeNotification([]byte(`{"action":"reportSubmitted","success":false,"error":"Cooldown active","cooldownSeconds":30}`))
	require.NoError(t, err)
	res := n.(models.ReportSubmitted)
	assert.False(t, res.Success)
	assert.Equal(t, "Cooldown active", res.Error)
	assert.Equal(t, 30, *res.CooldownSeconds)

	n, err = nui.DecodeNotification([]byte(`{"action":"reportSubmitted","success":true,"ticketId":991,"ticketNumber":42}`))
	require.NoError(t, err)
	res = n.(models.ReportSubmitted)
	assert.Equal(t, models.FlexID("991"), res.TicketID)
	assert.Equal(t, int64(42), *res.TicketNumber)

	n, err = nui.DecodeNotification([]byte(`{"action":"screenshotReady","url":" https://img/1.png "}`))
	require.NoError(t, err)
	assert.Equal(t, "https://img/1.png", n.(models.ScreenshotReady).URL)

	n, err = nui.DecodeNotification([]byte(`{"type":"INIT","serverName":"Sandy","version":"1.0"}`))
	require.NoError(t, err)
	assert.Equal(t, "Sandy", n.(models.Init).ServerName)
}

func TestDecodeNotification_Rejects(t *testing.T) {
	_, err := nui.DecodeNotification([]byte(`{"action":"dance"}`))
	assert.ErrorIs(t, err, nui.ErrUnknownNotification)

	_, err = nui.DecodeNotification([]byte(`{}`))
	assert.ErrorIs(t, err, nui.ErrUnknownNotification)

	_, err = nui.DecodeNotification([]byte(`{"action":"screenshotReady"}`))
	assert.ErrorIs(t, err, nui.ErrMalformedNotification)

	_, err = nui.DecodeNotification([]byte(`{"action":"reportSubmitted","success":"yes"}`))
	assert.Error(t, err)

	_, err = nui.DecodeNotification([]byte(`not json`))
	assert.Error(t, err)
}

func TestDecodeNotification_LenientResultNumbers(t *testing.T) {
	int64p := func(i int64) *int64 { return &i }
	intp := func(i int) *int { return &i }

	tests := []struct {
		name     string
		json     string
		ticket   *int64
		cooldown *int
	}{
		{"ticket number as string", `{"action":"reportSubmitted","success":true,"ticketNumber":"42"}`, int64p(42), nil},
		{"ticket number as float", `{"action":"reportSubmitted","success":true,"ticketNumber":42.0}`, int64p(42), nil},
		{"ticket number padded string", `{"action":"reportSubmitted","success":true,"ticketNumber":" 7 "}`, int64p(7), nil},
		{"ticket number not numeric", `{"action":"reportSubmitted","success":true,"ticketNumber":"TK-1"}`, nil, nil},
		{"ticket number object", `{"action":"reportSubmitted","success":true,"ticketNumber":{"n":1}}`, nil, nil},
		{"ticket number null", `{"action":"reportSubmitted","success":true,"ticketNumber":null}`, nil, nil},
		{"cooldown fraction floored", `{"action":"reportSubmitted","success":false,"cooldownSeconds":29.5}`, nil, intp(29)},
		{"cooldown as string", `{"action":"reportSubmitted","success":false,"cooldownSeconds":"30"}`, nil, intp(30)},
		{"cooldown boolean", `{"action":"reportSubmitted","success":false,"cooldownSeconds":true}`, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := nui.DecodeNotification([]byte(tt.json))
			require.NoError(t, err)
			res, ok := n.(models.ReportSubmitted)
			require.True(t, ok)
			assert.Equal(t, models.ActionReportSubmitted, res.Action)
			assert.Equal(t, tt.ticket, res.TicketNumber)
			assert.Equal(t, tt.cooldown, res.CooldownSeconds)
		})
	}
}
