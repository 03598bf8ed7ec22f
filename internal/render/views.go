package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Rajankit27/FakeNewsDetection/internal/models"
	"github.com/Rajankit27/FakeNewsDetection/internal/view"
)

type Chip struct {
	Word      string
	LeansFake bool
}

// VerdictView is the display form of a SingleVerdict.
type VerdictView struct {
	LogID      string
	Headline   string
	Prediction models.Label
	Tone       Tone
	Badge      Badge
	Confidence float64
	Meter      float64
	Title      string
	Status     string
	Note       string
	Reasoning  string
	Chips      []Chip
	Trust      *Badge
}

// ShowChips is false when the backend sent no contributing words.
func (v VerdictView) ShowChips() bool {
	return len(v.Chips) > 0
}

func NewVerdictView(variant view.Variant, sv *models.SingleVerdict) VerdictView {
	conf := RoundConfidence(sv.Confidence)
	out := VerdictView{
		LogID:      sv.LogID,
		Prediction: sv.Prediction,
		Tone:       toneFor(sv.Prediction),
		Badge:      VerdictBadge(variant, sv.Prediction, sv.Confidence),
		Confidence: conf,
		Meter:      conf,
		Title:      sv.ExtractedTitle,
		Status:     sv.DisplayStatus,
		Note:       sv.Note,
		Reasoning:  sv.Reasoning,
	}
	if sv.Prediction == models.LabelFake {
		out.Headline = variant.FakeHeadline
	} else {
		out.Headline = variant.RealHeadline
	}
	if out.Reasoning == "" {
		out.Reasoning = variant.DefaultReasoning
	}
	for _, w := range sv.ContributingWords {
		out.Chips = append(out.Chips, Chip{Word: w.Word, LeansFake: w.Score > 0})
	}
	if sv.SourceScore != nil {
		b := TrustBadge(*sv.SourceScore)
		out.Trust = &b
	}
	return out
}

type ReportCard struct {
	Source     string
	Title      string
	Prediction models.Label
	Tone       Tone
	Badge      string
	Confidence int
}

type ReportView struct {
	Title     string
	Synthesis string
	Cards     []ReportCard
	Empty     string
}

func NewReportView(variant view.Variant, r *models.GlobalReport) ReportView {
	out := ReportView{Title: variant.ReportTitle, Synthesis: r.Synthesis}
	if len(r.Items) == 0 {
		out.Empty = variant.NoReportResults
		return out
	}
	for _, it := range r.Items {
		badge := it.Badge
		if badge == "" {
			badge = VerdictBadge(variant, it.Prediction, it.Confidence).Text
		}
		out.Cards = append(out.Cards, ReportCard{
			Source:     it.Source,
			Title:      it.Title,
			Prediction: it.Prediction,
			Tone:       toneFor(it.Prediction),
			Badge:      badge,
			Confidence: int(math.Round(it.Confidence)),
		})
	}
	return out
}

// ResultView holds exactly one of Verdict or Report.
type ResultView struct {
	Verdict *VerdictView
	Report  *ReportView
}

func NewResultView(variant view.Variant, r *models.AnalysisResult) *ResultView {
	if r == nil {
		return nil
	}
	switch {
	case r.Verdict != nil:
		v := NewVerdictView(variant, r.Verdict)
		return &ResultView{Verdict: &v}
	case r.Report != nil:
		rv := NewReportView(variant, r.Report)
		return &ResultView{Report: &rv}
	}
	return nil
}

type HistoryRow struct {
	Icon       string
	Time       string
	Text       string
	Prediction models.Label
	Tone       Tone
	Confidence float64
}

var topicIcons = []struct {
	keywords []string
	icon     string
}{
	{[]string{"india", "delhi"}, "🇮🇳"},
	{[]string{"tech", "google"}, "💻"},
	{[]string{"law", "court"}, "⚖️"},
	{[]string{"money", "economy"}, "💰"},
}

// TopicIcon picks an icon from keywords in the text; the first match wins.
func TopicIcon(text string) string {
	lower := strings.ToLower(text)
	for _, t := range topicIcons {
		for _, k := range t.keywords {
			if strings.Contains(lower, k) {
				return t.icon
			}
		}
	}
	return "📰"
}

// HistoryRows renders entries, keeping only those whose text contains query
// (case-insensitive). An empty query keeps everything.
func HistoryRows(entries []models.HistoryEntry, query string) []HistoryRow {
	q := strings.ToLower(strings.TrimSpace(query))
	rows := make([]HistoryRow, 0, len(entries))
	for _, e := range entries {
		if q != "" && !strings.Contains(strings.ToLower(e.TextContent), q) {
			continue
		}
		rows = append(rows, HistoryRow{
			Icon:       TopicIcon(e.TextContent),
			Time:       formatTime(e.Timestamp.Time),
			Text:       e.TextContent,
			Prediction: e.PredictionResult,
			Tone:       toneFor(e.PredictionResult),
			Confidence: RoundConfidence(e.Confidence),
		})
	}
	return rows
}

type AnalyticsView struct {
	Total       int
	Fake        int
	Real        int
	FakePercent int
	Recent      []HistoryRow
}

func NewAnalyticsView(h *models.PublicHistory) AnalyticsView {
	out := AnalyticsView{
		Total:       h.Total(),
		Fake:        h.Stats[string(models.LabelFake)],
		Real:        h.Stats[string(models.LabelReal)],
		FakePercent: h.FakePercent(),
	}
	for _, r := range h.Recent {
		out.Recent = append(out.Recent, HistoryRow{
			Icon:       TopicIcon(r.Text),
			Time:       formatTime(r.Timestamp.Time),
			Text:       r.Text,
			Prediction: r.Prediction,
			Tone:       toneFor(r.Prediction),
			Confidence: RoundConfidence(r.Confidence),
		})
	}
	return out
}

type AdminView struct {
	TotalScans  int
	FakeRate    string
	ActiveUsers int
	Disputes    []models.Dispute
	Users       []models.UserRecord

	RetrainFailed bool
}

func NewAdminView(stats *models.AdminStats, disputes []models.Dispute) AdminView {
	out := AdminView{Disputes: disputes}
	if stats != nil {
		out.TotalScans = stats.TotalScans
		out.FakeRate = fmt.Sprintf("%s%%", formatScore(stats.FakePercentage))
		out.ActiveUsers = stats.ActiveUsers
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("15:04:05")
}
