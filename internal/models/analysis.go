package models

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type Label string

const (
	LabelReal Label = "REAL"
	LabelFake Label = "FAKE"
)

// ParseLabel accepts REAL or FAKE in any case.
func ParseLabel(s string) (Label, bool) {
	switch Label(strings.ToUpper(strings.TrimSpace(s))) {
	case LabelReal:
		return LabelReal, true
	case LabelFake:
		return LabelFake, true
	}
	return "", false
}

type Kind string

const (
	KindText  Kind = "text"
	KindQuery Kind = "query"
	KindURL   Kind = "url"
)

// AnalysisRequest is one of the three input shapes, selected by input mode.
type AnalysisRequest struct {
	Kind  Kind
	Value string
}

type ContributingWord struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// SingleVerdict is returned by the text and URL prediction endpoints.
type SingleVerdict struct {
	LogID             string             `json:"log_id"`
	Prediction        Label              `json:"prediction"`
	Confidence        float64            `json:"confidence"`
	DisplayStatus     string             `json:"display_status,omitempty"`
	Note              string             `json:"note,omitempty"`
	ExtractedTitle    string             `json:"extracted_title,omitempty"`
	ContributingWords []ContributingWord `json:"contributing_words,omitempty"`
	SourceScore       *float64           `json:"source_score,omitempty"`
	Reasoning         string             `json:"reasoning,omitempty"`
}

type ReportItem struct {
	Source     string  `json:"source"`
	Title      string  `json:"title"`
	Prediction Label   `json:"prediction"`
	Confidence float64 `json:"confidence"`
	Badge      string  `json:"badge,omitempty"`
}

// GlobalReport aggregates the analysis of several articles fetched for a topic.
type GlobalReport struct {
	Items     []ReportItem `json:"results"`
	Synthesis string       `json:"synthesis,omitempty"`
}

// AnalysisResult holds exactly one of Verdict or Report.
type AnalysisResult struct {
	Verdict *SingleVerdict
	Report  *GlobalReport
}

type HistoryEntry struct {
	ID               string    `json:"_id,omitempty"`
	Timestamp        Timestamp `json:"timestamp"`
	TextContent      string    `json:"text_content"`
	PredictionResult Label     `json:"prediction_result"`
	Confidence       float64   `json:"confidence_score"`
}

// PublicHistory is the unauthenticated analytics summary.
type PublicHistory struct {
	Stats  map[string]int `json:"stats"`
	Recent []RecentScan   `json:"recent"`
}

type RecentScan struct {
	Text       string    `json:"text"`
	Timestamp  Timestamp `json:"timestamp"`
	Prediction Label     `json:"prediction"`
	Confidence float64   `json:"confidence"`
}

// Total is the number of scans across all labels.
func (p PublicHistory) Total() int {
	total := 0
	for _, n := range p.Stats {
		total += n
	}
	return total
}

// FakePercent is the rounded share of FAKE scans, 0 when there are none.
func (p PublicHistory) FakePercent() int {
	total := p.Total()
	if total == 0 {
		return 0
	}
	return int(float64(p.Stats[string(LabelFake)])/float64(total)*100 + 0.5)
}

type LiveArticle struct {
	Source    string `json:"source"`
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published,omitempty"`
}

// Timestamp decodes the several time encodings the backend emits
// (RFC 3339, HTTP dates from Flask's jsonify, naive ISO).
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	http.TimeFormat,
	time.RFC1123,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognised timestamp %q", raw)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format(time.RFC3339))
}
