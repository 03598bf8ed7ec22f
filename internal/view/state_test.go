package view

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/Rajankit27/FakeNewsDetection/internal/models"
)

func TestNewState(t *testing.T) {
	s := NewState()
	assert.Equal(t, ModeText, s.Mode)
	assert.Equal(t, SectionDashboard, s.Section)
}

func TestSetMode_ClearsResultAndUpdatesControls(t *testing.T) {
	s := NewState()
	s.ShowResult(&models.AnalysisResult{Verdict: &models.SingleVerdict{Prediction: models.LabelFake}})

	s.SetMode(ModeURL)
	assert.Equal(t, (*models.AnalysisResult)(nil), s.Result)

	c := s.Controls(Classic)
	assert.Equal(t, "Scan URL", c.ButtonLabel)
	assert.Equal(t, true, c.ButtonVisible)
	assert.Equal(t, false, c.LoadAnalytics)

	s.SetMode(ModeQuery)
	assert.Equal(t, "Search & Analyze", s.Controls(Classic).ButtonLabel)

	s.SetMode(ModeText)
	assert.Equal(t, "Verify Authenticity", s.Controls(Classic).ButtonLabel)
	assert.Equal(t, Console.Placeholders[ModeText], s.Controls(Console).Placeholder)
}

func TestSetMode_AnalyticsHidesButton(t *testing.T) {
	s := NewState()
	s.SetMode(ModeAnalytics)
	c := s.Controls(Console)
	assert.Equal(t, false, c.ButtonVisible)
	assert.Equal(t, true, c.LoadAnalytics)
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{"": ModeText, "text": ModeText, "global": ModeQuery, "api": ModeQuery, "query": ModeQuery, "url": ModeURL, "analytics": ModeAnalytics}
	for in, want := range cases {
		got, err := ParseMode(in)
		assert.Equal(t, nil, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseMode("video")
	assert.Equal(t, true, errors.Is(err, ErrUnknownMode))
}

func TestSetSection_AdminRequiresRole(t *testing.T) {
	s := NewState()
	user := models.Session{Token: "t", Role: models.RoleUser, Username: "u"}
	admin := models.Session{Token: "t", Role: models.RoleAdmin, Username: "a"}
	roleWithoutToken := models.Session{Role: models.RoleAdmin}

	assert.Equal(t, ErrAdminRequired, s.SetSection(SectionAdmin, user))
	assert.Equal(t, ErrAdminRequired, s.SetSection(SectionAdmin, roleWithoutToken))
	assert.Equal(t, SectionDashboard, s.Section)

	assert.Equal(t, nil, s.SetSection(SectionAdmin, admin))
	assert.Equal(t, SectionAdmin, s.Section)

	assert.Equal(t, nil, s.SetSection(SectionHistory, user))
	assert.Equal(t, SectionHistory, s.Section)
}

func TestForceLogout(t *testing.T) {
	s := NewState()
	s.SetMode(ModeQuery)
	s.Section = SectionAdmin
	s.ShowResult(&models.AnalysisResult{Report: &models.GlobalReport{}})

	s.ForceLogout()
	assert.Equal(t, true, s.LoggedOut)
	assert.Equal(t, ModeText, s.Mode)
	assert.Equal(t, (*models.AnalysisResult)(nil), s.Result)
}

func TestBuild(t *testing.T) {
	cases := []struct {
		name    string
		mode    Mode
		input   string
		wantErr bool
		want    models.Kind
	}{
		{"empty text", ModeText, "   ", true, ""},
		{"short text", ModeText, "too short to check", true, ""},
		{"19 chars padded", ModeText, "   1234567890123456789   ", true, ""},
		{"exactly 20", ModeText, "12345678901234567890", false, models.KindText},
		{"empty query", ModeQuery, "", true, ""},
		{"query", ModeQuery, " elections ", false, models.KindQuery},
		{"empty url", ModeURL, "\t", true, ""},
		{"url", ModeURL, "https://example.com/a", false, models.KindURL},
		{"analytics", ModeAnalytics, "anything", true, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := Build(tc.mode, tc.input)
			if tc.wantErr {
				var ve *ValidationError
				assert.Equal(t, true, errors.As(err, &ve))
				return
			}
			assert.Equal(t, nil, err)
			assert.Equal(t, tc.want, req.Kind)
			assert.Equal(t, strings.TrimSpace(tc.input), req.Value)
		})
	}
}

func TestVariantByName(t *testing.T) {
	v, err := VariantByName("classic")
	assert.Equal(t, nil, err)
	assert.Equal(t, "Verified Source", v.StrongRealBadge)

	v, err = VariantByName("")
	assert.Equal(t, nil, err)
	assert.Equal(t, "Verified", v.StrongRealBadge)

	_, err = VariantByName("neon")
	assert.NotEqual(t, nil, err)

	assert.Equal(t, "", Console.Notice("nope"))
}
