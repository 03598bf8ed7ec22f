package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/Rajankit27/FakeNewsDetection/internal/models"
	"github.com/Rajankit27/FakeNewsDetection/internal/view"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Page is the data every full-page template receives.
type Page struct {
	Variant  view.Variant
	State    *view.State
	Controls view.Controls
	Session  models.Session
	Prefs    models.Preferences

	Result       *ResultView
	History      []HistoryRow
	HistoryQuery string
	Analytics    *AnalyticsView
	Admin        *AdminView
	Ticker       []models.LiveArticle
}

// NewPage assembles page data for a state. The result region is derived from
// State.Result so a page never shows a stale result.
func NewPage(v view.Variant, st *view.State, sess models.Session, prefs models.Preferences) *Page {
	return &Page{
		Variant:  v,
		State:    st,
		Controls: st.Controls(v),
		Session:  sess,
		Prefs:    prefs,
		Result:   NewResultView(v, st.Result),
	}
}

// ShowNotice hides acknowledgements when the user turned notifications off.
// Alerts are always shown.
func (p *Page) ShowNotice() bool {
	return p.State.Notice != "" && p.Prefs.Notify
}

// ShowTicker is false in data saver mode.
func (p *Page) ShowTicker() bool {
	return len(p.Ticker) > 0 && !p.Prefs.Saver
}

// Renderer owns the parsed HTML templates. html/template escapes every
// backend-supplied string for its context.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"toneClass": toneClass,
	}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Templates exposes the template set for gin's SetHTMLTemplate.
func (r *Renderer) Templates() *template.Template {
	return r.tmpl
}

// RenderResult writes the result region for one analysis. Each call produces
// the complete region, replacing any earlier content.
func (r *Renderer) RenderResult(w io.Writer, v view.Variant, result *models.AnalysisResult) error {
	return r.tmpl.ExecuteTemplate(w, "result", NewResultView(v, result))
}

func toneClass(t Tone) string {
	switch t {
	case TonePositive:
		return "tone-positive"
	case ToneNegative:
		return "tone-negative"
	}
	return "tone-neutral"
}
