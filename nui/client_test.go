package nui_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/report-nui/models"
	"github.com/linesmerrill/report-nui/nui"
)

func TestClient_Call(t *testing.T) {
	var gotPath, gotBody, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := nui.NewClient(srv.URL + "/")
	raw, err := c.Call(context.Background(), "requestPlayerData", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true}`, string(raw))
	assert.Equal(t, "/requestPlayerData", gotPath)
	assert.Equal(t, "{}", gotBody)
	assert.Equal(t, "application/json", gotType)
}

func TestClient_CallFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/broken":
			w.WriteHeader(http.StatusInternalServerError)
		case "/garbage":
			w.Write([]byte("<html>"))
		}
	}))
	c := nui.NewClient(srv.URL)

	_, err := c.Call(context.Background(), "broken", nil)
	var te *nui.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusInternalServerError, te.StatusCode)
	assert.Equal(t, "nui broken: HTTP 500", err.Error())

	_, err = c.Call(context.Background(), "garbage", nil)
	assert.True(t, nui.IsTransportError(err))

	srv.Close()
	_, err = c.Call(context.Background(), "requestPlayerData", nil)
	assert.True(t, nui.IsTransportError(err))

	// Send swallows the failure
	assert.NotPanics(t, func() { c.Send(context.Background(), nui.CallCloseReport, nil) })
}

func TestResourceURL(t *testing.T) {
	assert.Equal(t, "https://report-nui", nui.ResourceURL("report-nui"))
}

// stubTransport answers every call with a fixed body
type stubTransport struct {
	body    string
	err     error
	name    string
	payload interface{}
	sent    []string
}

func (s *stubTransport) Call(_ context.Context, name string, payload interface{}) (json.RawMessage, error) {
	s.name = name
	s.payload = payload
	if s.err != nil {
		return nil, s.err
	}
	return json.RawMessage(s.body), nil
}

func (s *stubTransport) Send(_ context.Context, name string, _ interface{}) {
	s.sent = append(s.sent, name)
}

func TestRequestPlayerData(t *testing.T) {
	ctx := context.Background()

	st := &stubTransport{body: `{"success":true,"playerData":{"fivemId":4,"name":"Eve","nearbyPlayers":[]}}`}
	pd, err := nui.RequestPlayerData(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, nui.CallRequestPlayerData, st.name)
	assert.Equal(t, 4, pd.FivemID)
	assert.NotNil(t, pd.Identifiers)
	assert.Nil(t, pd.Position)

	_, err = nui.RequestPlayerData(ctx, &stubTransport{body: `{"success":false}`})
	assert.ErrorIs(t, err, nui.ErrNoPlayerData)

	_, err = nui.RequestPlayerData(ctx, &stubTransport{body: `{"success":true}`})
	assert.ErrorIs(t, err, nui.ErrNoPlayerData)

	_, err = nui.RequestPlayerData(ctx, &stubTransport{body: `[]`})
	assert.Error(t, err)
}

func TestRequestServerConfig(t *testing.T) {
	ctx := context.Background()

	cfg, err := nui.RequestServerConfig(ctx, &stubTransport{body: `{"success":true,"config":{"categories":["a"]}}`})
	require.NoError(t, err)
	assert.Equal(t, []models.CategoryEntry{{ID: "a"}}, cfg.Categories)

	cfg, err = nui.RequestServerConfig(ctx, &stubTransport{body: `{"success":false}`})
	assert.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestRequestScreenshotUpload(t *testing.T) {
	res, err := nui.RequestScreenshotUpload(context.Background(), &stubTransport{body: `{"error":"no screenshot resource"}`})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "no screenshot resource", res.Error)
}

func TestSubmitReport(t *testing.T) {
	st := &stubTransport{body: `{"success":false,"error":"Not allowed"}`}
	report := models.Report{Category: "scam"}
	res, err := nui.SubmitReport(context.Background(), st, report)
	require.NoError(t, err)
	assert.Equal(t, nui.CallSubmitReport, st.name)
	assert.Equal(t, report, st.payload)
	assert.Equal(t, models.CallResponse{Error: "Not allowed"}, res)
}

func TestCloseReport(t *testing.T) {
	st := &stubTransport{}
	nui.CloseReport(context.Background(), st)
	assert.Equal(t, []string{nui.CallCloseReport}, st.sent)
}
