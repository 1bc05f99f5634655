package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/linesmerrill/report-nui/api"
	"github.com/linesmerrill/report-nui/config"
	"github.com/linesmerrill/report-nui/cooldown"
	"github.com/linesmerrill/report-nui/databases"
	"github.com/linesmerrill/report-nui/models"
)

// Messages returned to the overlay
const (
	MsgCooldownActive  = "Cooldown active"
	MsgMissingCategory = "Missing category"
	MsgMissingReporter = "Missing reporter"
	MsgTicketFailed    = "Could not create ticket"
	MsgNoScreenshot    = "Screenshot unavailable"
)

// Host serves the NUI callbacks of the development host
type Host struct {
	Fixture        *Fixture
	DB             databases.TicketDatabase
	Cooldowns      cooldown.Ledger
	Publisher      Publisher
	CooldownWindow time.Duration
}

// PlayerDataHandler answers requestPlayerData with the fixture player
func (h Host) PlayerDataHandler(w http.ResponseWriter, r *http.Request) {
	res := models.PlayerDataResponse{Success: h.Fixture.Player != nil, PlayerData: h.Fixture.Player}
	if !res.Success {
		res.Error = "No player data"
	}
	writeJSON(w, res)
}

// ServerConfigHandler answers requestServerConfig. A fixture without config
// answers success false.
func (h Host) ServerConfigHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, models.ServerConfigResponse{Success: h.Fixture.Config != nil, Config: h.Fixture.Config})
}

// ScreenshotUploadHandler answers requestScreenshotUpload with a fresh url
func (h Host) ScreenshotUploadHandler(w http.ResponseWriter, r *http.Request) {
	if h.Fixture.ScreenshotBaseURL == "" {
		writeJSON(w, models.ScreenshotResponse{Error: MsgNoScreenshot})
		return
	}
	url := fmt.Sprintf("%s/%s.png", strings.TrimRight(h.Fixture.ScreenshotBaseURL, "/"), uuid.NewString())
	writeJSON(w, models.ScreenshotResponse{Success: true, URL: url})
}

// CloseReportHandler acknowledges closeReport
func (h Host) CloseReportHandler(w http.ResponseWriter, r *http.Request) {
	zap.S().Debugw("overlay closed", "requestId", api.RequestID(r.Context()))
	writeJSON(w, models.CallResponse{Success: true})
}

// SubmitReportHandler accepts a report for processing. The outcome is pushed
// as reportSubmitted once the ticket is created or rejected.
func (h Host) SubmitReportHandler(w http.ResponseWriter, r *http.Request) {
	var report models.Report
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		config.ErrorStatus("failed to decode report", http.StatusBadRequest, w, err)
		return
	}
	if strings.TrimSpace(report.Category) == "" {
		api.RecordReport(api.OutcomeRejected)
		writeJSON(w, models.CallResponse{Error: MsgMissingCategory})
		return
	}
	if report.Reporter.FivemID <= 0 {
		api.RecordReport(api.OutcomeRejected)
		writeJSON(w, models.CallResponse{Error: MsgMissingReporter})
		return
	}

	zap.S().Infow("report accepted",
		"requestId", api.RequestID(r.Context()),
		"category", report.Category,
		"reporter", report.Reporter.FivemID,
		"targets", len(report.Targets),
		"attachments", len(report.Attachments))
	writeJSON(w, models.CallResponse{Success: true})

	go func() {
		outcome := h.ProcessReport(context.Background(), report)
		if h.Publisher != nil {
			h.Publisher.Publish(outcome)
		}
	}()
}

// ProcessReport checks the reporter's cooldown and stores the ticket. The
// cooldown is released again when no ticket could be stored.
func (h Host) ProcessReport(ctx context.Context, report models.Report) models.ReportSubmitted {
	ctx, cancel := api.WithQueryTimeout(ctx)
	defer cancel()
	out := models.ReportSubmitted{Action: models.ActionReportSubmitted}
	key := cooldown.Key(report.Reporter.FivemID)

	if h.Cooldowns != nil {
		remaining, ok, err := h.Cooldowns.Acquire(ctx, key, h.CooldownWindow)
		if err != nil {
			zap.S().Errorw("failed to check cooldown", "error", err)
			api.RecordReport(api.OutcomeFailed)
			out.Error = MsgTicketFailed
			return out
		}
		if !ok {
			secs := cooldown.Seconds(remaining)
			api.RecordReport(api.OutcomeCooldown)
			out.Error = MsgCooldownActive
			out.CooldownSeconds = &secs
			return out
		}
	}

	ticket, err := h.createTicket(ctx, report)
	if err != nil {
		zap.S().Errorw("failed to create ticket", "reporter", report.Reporter.FivemID, "error", err)
		if h.Cooldowns != nil {
			if rerr := h.Cooldowns.Release(ctx, key); rerr != nil {
				zap.S().Warnw("failed to release cooldown", "key", key, "error", rerr)
			}
		}
		api.RecordReport(api.OutcomeFailed)
		out.Error = MsgTicketFailed
		return out
	}

	zap.S().Infow("ticket created",
		"ticketId", ticket.TicketID,
		"ticketNumber", ticket.TicketNumber,
		"category", report.Category)
	api.RecordReport(api.OutcomeCreated)

	out.Success = true
	out.TicketID = models.FlexID(ticket.TicketID)
	out.TicketNumber = &ticket.TicketNumber
	out.TicketURL = ticket.TicketURL
	return out
}

func (h Host) createTicket(ctx context.Context, report models.Report) (models.Ticket, error) {
	number, err := h.DB.NextTicketNumber(ctx)
	if err != nil {
		return models.Ticket{}, fmt.Errorf("failed to allocate ticket number: %w", err)
	}

	ticket := models.Ticket{
		TicketID:     uuid.NewString(),
		TicketNumber: number,
		Report:       report,
		CreatedAt:    primitive.NewDateTimeFromTime(time.Now()),
	}
	if h.Fixture != nil && h.Fixture.TicketBaseURL != "" {
		ticket.TicketURL = strings.TrimRight(h.Fixture.TicketBaseURL, "/") + "/" + ticket.TicketID
	}
	if _, err := h.DB.InsertOne(ctx, ticket); err != nil {
		return models.Ticket{}, fmt.Errorf("failed to store ticket: %w", err)
	}
	return ticket, nil
}

// TicketHandler returns a stored ticket by id
func (h Host) TicketHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["ticket_id"]
	ticket, err := h.DB.FindByTicketID(r.Context(), id)
	if errors.Is(err, databases.ErrTicketNotFound) {
		config.ErrorStatus("ticket not found", http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus("failed to get ticket", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, ticket)
}

// ReporterHandler returns the number of tickets filed by a reporter
func (h Host) ReporterHandler(w http.ResponseWriter, r *http.Request) {
	fivemID, err := strconv.Atoi(mux.Vars(r)["fivem_id"])
	if err != nil || fivemID <= 0 {
		config.ErrorStatus("invalid fivem id", http.StatusBadRequest, w, err)
		return
	}
	n, err := h.DB.CountByReporter(r.Context(), fivemID)
	if err != nil {
		config.ErrorStatus("failed to count tickets", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, models.ReporterResponse{FivemID: fivemID, Tickets: n})
}

// OpenHandler pushes openReport to connected overlays. The optional body
// carries host metadata merged over the fixture's.
func (h Host) OpenHandler(w http.ResponseWriter, r *http.Request) {
	info := h.Fixture.Host
	if r.ContentLength != 0 {
		var body models.HostInfo
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			config.ErrorStatus("failed to decode host info", http.StatusBadRequest, w, err)
			return
		}
		info.Merge(body)
	}
	if info.PlayerName == "" && h.Fixture.Player != nil {
		info.PlayerName = h.Fixture.Player.Name
	}
	h.push(w, models.OpenReport{Action: models.ActionOpenReport, HostInfo: info})
}

// CloseHandler pushes closeReport to connected overlays
func (h Host) CloseHandler(w http.ResponseWriter, r *http.Request) {
	h.push(w, models.CloseReport{Action: models.ActionCloseReport})
}

// ScreenshotHandler pushes screenshotReady with the url in the body
func (h Host) ScreenshotHandler(w http.ResponseWriter, r *http.Request) {
	var body models.ScreenshotReady
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode screenshot", http.StatusBadRequest, w, err)
		return
	}
	body.URL = strings.TrimSpace(body.URL)
	if body.URL == "" {
		config.ErrorStatus("missing screenshot url", http.StatusBadRequest, w, errors.New("url is required"))
		return
	}
	body.Action = models.ActionScreenshotReady
	h.push(w, body)
}

func (h Host) push(w http.ResponseWriter, n models.Notification) {
	delivered := 0
	if h.Publisher != nil {
		delivered = h.Publisher.Publish(n)
	}
	writeJSON(w, models.PushResponse{Success: true, Delivered: delivered})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
