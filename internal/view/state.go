package view

import (
	"errors"
	"fmt"

	"github.com/Rajankit27/FakeNewsDetection/internal/models"
)

type Mode string

const (
	ModeText      Mode = "text"
	ModeQuery     Mode = "query"
	ModeURL       Mode = "url"
	ModeAnalytics Mode = "analytics"
)

type Section string

const (
	SectionDashboard Section = "dashboard"
	SectionHistory   Section = "history"
	SectionAdmin     Section = "admin"
)

var (
	ErrUnknownMode    = errors.New("unknown input mode")
	ErrUnknownSection = errors.New("unknown section")
	ErrAdminRequired  = errors.New("admin clearance required")
)

// ParseMode accepts the mode names used by both UI builds ("global" and "api"
// were the query tab's earlier names).
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", string(ModeText):
		return ModeText, nil
	case string(ModeQuery), "global", "api":
		return ModeQuery, nil
	case string(ModeURL):
		return ModeURL, nil
	case string(ModeAnalytics):
		return ModeAnalytics, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func ParseSection(s string) (Section, error) {
	switch s {
	case "", string(SectionDashboard):
		return SectionDashboard, nil
	case string(SectionHistory):
		return SectionHistory, nil
	case string(SectionAdmin):
		return SectionAdmin, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
}

// Controls is the derived state of the input panel.
type Controls struct {
	ButtonLabel   string
	Placeholder   string
	ButtonVisible bool
	LoadAnalytics bool
}

// State is the per-request UI state. Handlers own it; renderers only read it.
type State struct {
	Mode      Mode
	Section   Section
	Input     string
	Result    *models.AnalysisResult
	Error     string // inline validation message
	Alert     string // blocking error from a failed request
	Notice    string // acknowledgement
	LoggedOut bool
}

func NewState() *State {
	return &State{Mode: ModeText, Section: SectionDashboard}
}

// SetMode switches the input mode. Any shown result is cleared.
func (s *State) SetMode(m Mode) {
	s.Mode = m
	s.Result = nil
	s.Error = ""
}

// Controls derives the panel for the current mode. The analytics mode hides
// the action button and asks for an immediate history load instead.
func (s *State) Controls(v Variant) Controls {
	if s.Mode == ModeAnalytics {
		return Controls{ButtonVisible: false, LoadAnalytics: true}
	}
	return Controls{
		ButtonLabel:   v.ButtonLabels[s.Mode],
		Placeholder:   v.Placeholders[s.Mode],
		ButtonVisible: true,
	}
}

// SetSection focuses a page section. The admin section needs an admin session.
func (s *State) SetSection(sec Section, sess models.Session) error {
	if sec == SectionAdmin && !sess.IsAdmin() {
		return ErrAdminRequired
	}
	s.Section = sec
	return nil
}

// ShowResult replaces whatever result was shown before.
func (s *State) ShowResult(r *models.AnalysisResult) {
	s.Result = r
	s.Error = ""
	s.Alert = ""
}

// ForceLogout is the terminal transition taken when the backend rejects the
// session, whatever mode was active.
func (s *State) ForceLogout() {
	*s = State{Mode: ModeText, Section: SectionDashboard, LoggedOut: true}
}
