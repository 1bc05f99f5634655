package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/linesmerrill/report-nui/form"
	"github.com/linesmerrill/report-nui/schema"
)

// Apply runs one event through the state machine, mutating s, and returns
// the host calls the runtime must perform. Completions of those calls come
// back as events carrying the generation or token they were issued with;
// stale ones are ignored.
func (s *Session) Apply(ev Event) []Effect {
	switch e := ev.(type) {
	case Open:
		return s.open(e)
	case Close:
		return s.close()
	case KeyPressed:
		if e.Key == "Escape" {
			return s.close()
		}
	case BackdropClicked:
		return s.close()
	case HostInit:
		s.Init.Merge(e.Info)
	case PlayerDataLoaded:
		s.playerDataLoaded(e)
	case ServerConfigLoaded:
		s.serverConfigLoaded(e)
	case Submit:
		return s.submit()
	case SubmitAcknowledged:
		s.acknowledged(e)
	case Result:
		s.result(e)
	case ScreenshotCaptured:
		s.screenshotCaptured(e)
	default:
		return s.edit(ev)
	}
	return nil
}

func (s *Session) open(e Open) []Effect {
	s.generation++
	s.Init.Merge(e.Info)
	s.View = ViewLoading
	s.Draft.Reset()
	s.FormError = ""
	s.Validation = form.Result{}
	s.CooldownRemaining = 0
	s.LastResult = nil
	s.SuccessMessage = ""
	s.SubmitAttempts = 0
	s.submission = ""
	s.screenshotPending = false
	s.load = loadState{}
	return []Effect{
		FetchPlayerData{Generation: s.generation},
		FetchServerConfig{Generation: s.generation},
	}
}

func (s *Session) close() []Effect {
	if s.View == ViewClosed {
		return nil
	}
	// outstanding calls are not cancelled; bumping the generation makes
	// their completions stale
	s.generation++
	s.View = ViewClosed
	s.Draft.Reset()
	s.FormError = ""
	s.Validation = form.Result{}
	s.submission = ""
	s.screenshotPending = false
	s.load = loadState{}
	return []Effect{NotifyClosed{}}
}

func (s *Session) playerDataLoaded(e PlayerDataLoaded) {
	if e.Generation != s.generation || s.View != ViewLoading || s.load.identityDone {
		return
	}
	s.load.identityDone = true
	s.load.identity = e.Data
	s.load.identityErr = e.Err
	s.finishLoad()
}

func (s *Session) serverConfigLoaded(e ServerConfigLoaded) {
	if e.Generation != s.generation || s.View != ViewLoading || s.load.configDone {
		return
	}
	s.load.configDone = true
	// config is best effort
	if e.Err == nil {
		s.load.config = e.Config
	}
	s.finishLoad()
}

func (s *Session) finishLoad() {
	if !s.load.identityDone || !s.load.configDone {
		return
	}
	s.Config = s.load.config
	s.Categories = schema.Resolve(s.Config)
	s.Labels = schema.LabelsFrom(s.Config)

	if s.load.identityErr != nil || s.load.identity == nil {
		s.Identity = nil
		s.FormError = MsgLoadFailed
		s.View = ViewError
		return
	}

	s.Identity = s.load.identity
	s.Draft.RenderTargets(s.Identity.NearbyPlayers)
	s.FormError = ""
	s.View = ViewForm
}

func (s *Session) submit() []Effect {
	if s.View != ViewForm || s.Identity == nil {
		return nil
	}
	s.SubmitAttempts++

	cat, _ := s.SelectedCategory()
	s.Validation = form.Validate(s.Draft, cat.Fields)
	s.FormError = s.Validation.Headline
	if !s.Validation.Valid() {
		return nil
	}

	report := BuildReport(s.Draft, cat.Fields, s.Identity)
	s.submission = uuid.NewString()
	s.View = ViewSubmitting
	return []Effect{SendReport{Token: s.submission, Report: report}}
}

func (s *Session) acknowledged(e SubmitAcknowledged) {
	if s.View != ViewSubmitting || e.Token != s.submission {
		return
	}
	switch {
	case e.Err != nil:
		s.FormError = MsgSendFailed
	case !e.Response.Success:
		s.FormError = orDefault(e.Response.Error, MsgSubmitFailed)
	default:
		// accepted for processing; the outcome arrives as a push
		return
	}
	s.submission = ""
	s.View = ViewForm
}

func (s *Session) result(e Result) {
	if s.View != ViewSubmitting {
		return
	}
	s.submission = ""
	out := e.Outcome
	if out.Success {
		s.LastResult = &TicketResult{
			TicketID:     string(out.TicketID),
			TicketNumber: out.TicketNumber,
			TicketURL:    out.TicketURL,
		}
		if out.TicketNumber != nil {
			s.SuccessMessage = fmt.Sprintf(MsgSubmittedNumbered, *out.TicketNumber)
		} else {
			s.SuccessMessage = MsgSubmitted
		}
		s.FormError = ""
		s.View = ViewSuccess
		return
	}

	s.FormError = orDefault(out.Error, MsgReportNotSent)
	if out.CooldownSeconds != nil && *out.CooldownSeconds > 0 {
		s.CooldownRemaining = *out.CooldownSeconds
	}
	s.View = ViewForm
}

func (s *Session) screenshotCaptured(e ScreenshotCaptured) {
	if e.Generation != s.generation {
		return
	}
	s.screenshotPending = false
	if !s.editable() || e.Err != nil {
		return
	}
	res := e.Response
	if res.Success && res.URL != "" {
		s.Draft.ApplyScreenshot(res.URL, s.screenshotField(e.FieldID))
		return
	}
	if res.Error != "" {
		s.FormError = res.Error
	}
}

// edit applies user edits. They are accepted while the form is visible,
// including during submission.
func (s *Session) edit(ev Event) []Effect {
	if !s.editable() {
		return nil
	}
	d := s.Draft

	switch e := ev.(type) {
	case SelectCategory:
		if e.ID == "" {
			d.SelectCategory("")
			break
		}
		if _, ok := schema.Find(s.Categories, e.ID); ok {
			d.SelectCategory(e.ID)
		}
	case EditSubject:
		d.Subject = e.Value
	case EditDescription:
		d.Description = e.Value
	case EditField:
		if cat, ok := s.SelectedCategory(); ok {
			if _, ok := cat.Field(e.ID); ok {
				d.SetField(e.ID, e.Value)
			}
		}
	case AddEvidence:
		d.AddEvidence()
	case EditEvidence:
		d.EditEvidence(e.Index, e.Value)
	case RemoveEvidence:
		d.RemoveEvidence(e.Index)
	case ToggleTarget:
		if s.Identity != nil && s.Identity.IsNearby(e.FivemID) {
			d.SetTargetChecked(s.Identity.NearbyPlayers, e.FivemID, e.Checked)
		}
	case ScreenshotReady:
		d.ApplyScreenshot(e.URL, "")
	case RequestScreenshot:
		if s.screenshotPending {
			return nil
		}
		s.screenshotPending = true
		return []Effect{CaptureScreenshot{Generation: s.generation, FieldID: s.screenshotField(e.FieldID)}}
	}
	return nil
}

func (s *Session) editable() bool {
	return s.View == ViewForm || s.View == ViewSubmitting
}

// screenshotField returns id when it names a screenshot field of the
// selected category, else ""
func (s *Session) screenshotField(id string) string {
	if id == "" {
		return ""
	}
	cat, ok := s.SelectedCategory()
	if !ok {
		return ""
	}
	if f, ok := cat.Field(id); ok && f.Type == schema.FieldScreenshot {
		return id
	}
	return ""
}

func fmtCooldown(seconds int) string {
	return fmt.Sprintf(MsgCooldown, seconds)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
