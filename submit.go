package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/linesmerrill/report-nui/config"
	"github.com/linesmerrill/report-nui/models"
	"github.com/linesmerrill/report-nui/nui"
	"github.com/linesmerrill/report-nui/session"
)

const (
	greetingWait = 3 * time.Second
	closeWait    = 2 * time.Second
)

var errRejected = errors.New("report rejected")

type submitOptions struct {
	Category    string
	Subject     string
	Description string
	Evidence    []string
	Targets     []int
	Fields      []string
}

type submitOutcome struct {
	View            string            `json:"view"`
	Success         bool              `json:"success"`
	TicketID        string            `json:"ticketId,omitempty"`
	TicketNumber    *int64            `json:"ticketNumber,omitempty"`
	TicketURL       string            `json:"ticketUrl,omitempty"`
	Message         string            `json:"message,omitempty"`
	CooldownSeconds int               `json:"cooldownSeconds,omitempty"`
	SkippedTargets  []int             `json:"skippedTargets,omitempty"`
	Errors          map[string]string `json:"errors,omitempty"`
}

func submitCmd() *cobra.Command {
	var opts submitOptions
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Fill in and submit a report",
		Long: `Open a report session against the host, fill the form from flags and submit it.

Custom fields of the selected category are set with --field id=value.
The command exits non-zero when the form is invalid or the host rejects the report.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := config.New()
			hostURL := callbackURL(viper.GetString("host"), conf)
			notifyURL := firstSet(viper.GetString("notify"), conf.NotifyUrl)

			ctx, cancel := context.WithTimeout(cmd.Context(), viper.GetDuration("timeout"))
			defer cancel()

			ctrl := session.NewController(nui.NewClient(hostURL))
			go func() { _ = ctrl.Run(ctx) }()

			if notifyURL != "" {
				notes := make(chan models.Notification, 16)
				go func() {
					if err := nui.NewListener(notifyURL).Listen(ctx, notes); err != nil && ctx.Err() == nil {
						zap.S().Warnw("host notifications stopped", "error", err)
					}
				}()
				awaitGreeting(ctx, ctrl, notes, greetingWait)
				go ctrl.Forward(ctx, notes)
			}

			out, err := submitReport(ctx, ctrl, opts)
			closeSession(ctrl, closeWait)
			if out.View != "" {
				if perr := printOutcome(out); perr != nil {
					return perr
				}
			}
			return err
		},
	}
	cmd.Flags().String("host", "", "NUI callback base URL (overrides HOST_URL, default https://<RESOURCE_NAME>)")
	cmd.Flags().String("notify", "", "websocket URL of host pushes (overrides NOTIFY_URL)")
	cmd.Flags().Duration("timeout", 30*time.Second, "give up after this long")
	_ = viper.BindPFlag("host", cmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("notify", cmd.Flags().Lookup("notify"))
	_ = viper.BindPFlag("timeout", cmd.Flags().Lookup("timeout"))

	cmd.Flags().StringVar(&opts.Category, "category", "", "category id")
	cmd.Flags().StringVar(&opts.Subject, "subject", "", "report title")
	cmd.Flags().StringVar(&opts.Description, "description", "", "report description")
	cmd.Flags().StringArrayVar(&opts.Evidence, "evidence", nil, "evidence URL (repeatable)")
	cmd.Flags().IntSliceVar(&opts.Targets, "target", nil, "id of a nearby player to report (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Fields, "field", nil, "custom field as id=value (repeatable)")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

// awaitGreeting applies the first host push, normally INIT, so the listener
// is known to be connected before anything is submitted
func awaitGreeting(ctx context.Context, ctrl *session.Controller, notes <-chan models.Notification, wait time.Duration) {
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case n := <-notes:
		if ev, ok := session.EventFor(n); ok {
			ctrl.Dispatch(ev)
		}
	case <-timer.C:
		zap.S().Warnw("no greeting from host, results may be missed", "waited", wait)
	case <-ctx.Done():
	}
}

// submitReport runs one open, fill and submit cycle and waits for the
// outcome. A loaded form that ends back in the form view was rejected.
func submitReport(ctx context.Context, ctrl *session.Controller, opts submitOptions) (submitOutcome, error) {
	fields, err := parseFields(opts.Fields)
	if err != nil {
		return submitOutcome{}, err
	}

	ctrl.Dispatch(session.Open{})
	snap, err := ctrl.WaitFor(ctx, func(s session.Snapshot) bool {
		return s.View != session.ViewClosed && s.View != session.ViewLoading
	})
	if err != nil {
		return submitOutcome{}, fmt.Errorf("overlay did not load: %w", err)
	}
	if snap.View == session.ViewError {
		return outcomeOf(snap), fmt.Errorf("%w: %s", errRejected, snap.FormError)
	}

	ctrl.Dispatch(session.SelectCategory{ID: opts.Category})
	ctrl.Dispatch(session.EditSubject{Value: opts.Subject})
	ctrl.Dispatch(session.EditDescription{Value: opts.Description})
	ids := make([]string, 0, len(fields))
	for id := range fields {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		ctrl.Dispatch(session.EditField{ID: id, Value: fields[id]})
	}
	base := len(snap.Draft.EvidenceURLs)
	for i, u := range opts.Evidence {
		ctrl.Dispatch(session.AddEvidence{})
		ctrl.Dispatch(session.EditEvidence{Index: base + i, Value: u})
	}
	for _, id := range opts.Targets {
		ctrl.Dispatch(session.ToggleTarget{FivemID: id, Checked: true})
	}
	ctrl.Dispatch(session.Submit{})

	snap, err = ctrl.WaitFor(ctx, func(s session.Snapshot) bool {
		return s.SubmitAttempts > 0 && s.View != session.ViewSubmitting
	})
	if err != nil {
		return outcomeOf(snap), fmt.Errorf("no outcome from host: %w", err)
	}
	out := outcomeOf(snap)
	for _, id := range opts.Targets {
		if !snap.Draft.IsTargetChecked(id) {
			out.SkippedTargets = append(out.SkippedTargets, id)
		}
	}
	if len(out.SkippedTargets) > 0 {
		zap.S().Warnw("targets are not nearby and were not reported", "targets", out.SkippedTargets)
	}
	if !out.Success {
		return out, fmt.Errorf("%w: %s", errRejected, snap.FormError)
	}
	return out, nil
}

// closeSession closes the overlay and waits up to wait for the closeReport
// call to reach the host
func closeSession(ctrl *session.Controller, wait time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()
	if !ctrl.Dispatch(session.Close{}) {
		return
	}
	if _, err := ctrl.WaitFor(ctx, func(s session.Snapshot) bool { return s.View == session.ViewClosed }); err != nil {
		return
	}
	if err := ctrl.Settle(ctx); err != nil {
		zap.S().Warnw("host calls still running at exit", "error", err)
	}
}

// callbackURL picks the NUI callback base: the flag, then HOST_URL, then the
// resource's own callback URL
func callbackURL(flag string, conf *config.Config) string {
	return firstSet(flag, conf.HostUrl, nui.ResourceURL(conf.ResourceName))
}

// parseFields turns id=value pairs into a map; later pairs win
func parseFields(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		id, value, ok := strings.Cut(p, "=")
		id = strings.TrimSpace(id)
		if !ok || id == "" {
			return nil, fmt.Errorf("invalid --field %q, want id=value", p)
		}
		out[id] = value
	}
	return out, nil
}

func outcomeOf(s session.Snapshot) submitOutcome {
	out := submitOutcome{
		View:            string(s.View),
		Success:         s.View == session.ViewSuccess,
		Message:         s.FormError,
		CooldownSeconds: s.CooldownRemaining,
	}
	if out.Success {
		out.Message = s.SuccessMessage
	}
	if r := s.LastResult; r != nil && out.Success {
		out.TicketID = r.TicketID
		out.TicketNumber = r.TicketNumber
		out.TicketURL = r.TicketURL
	}
	if !s.Validation.Valid() {
		out.Errors = map[string]string{}
		for k, v := range s.Validation.Errors {
			out.Errors[k] = v
		}
		for k, v := range s.Validation.FieldErrors {
			out.Errors[k] = v
		}
	}
	return out
}

func printOutcome(out submitOutcome) error {
	if viper.GetBool("json") {
		return printJSON(out)
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(table.StyleLight)
	tw.AppendRow(table.Row{"Status", out.View})
	if out.Message != "" {
		tw.AppendRow(table.Row{"Message", out.Message})
	}
	if out.TicketNumber != nil {
		tw.AppendRow(table.Row{"Ticket", fmt.Sprintf("#%d", *out.TicketNumber)})
	}
	if out.TicketID != "" {
		tw.AppendRow(table.Row{"Ticket ID", out.TicketID})
	}
	if out.TicketURL != "" {
		tw.AppendRow(table.Row{"Ticket URL", out.TicketURL})
	}
	if out.CooldownSeconds > 0 {
		tw.AppendRow(table.Row{"Cooldown", fmt.Sprintf("%ds", out.CooldownSeconds)})
	}
	if len(out.SkippedTargets) > 0 {
		tw.AppendRow(table.Row{"Skipped targets", fmt.Sprint(out.SkippedTargets)})
	}
	tw.Render()

	if len(out.Errors) > 0 {
		keys := make([]string, 0, len(out.Errors))
		for k := range out.Errors {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		et := table.NewWriter()
		et.SetOutputMirror(os.Stdout)
		et.SetStyle(table.StyleLight)
		et.AppendHeader(table.Row{"Field", "Error"})
		for _, k := range keys {
			et.AppendRow(table.Row{k, out.Errors[k]})
		}
		et.Render()
	}
	return nil
}

func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
