package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Rajankit27/FakeNewsDetection/internal/apiclient"
	"github.com/Rajankit27/FakeNewsDetection/internal/middleware"
	"github.com/Rajankit27/FakeNewsDetection/internal/render"
	"github.com/Rajankit27/FakeNewsDetection/internal/service"
	"github.com/Rajankit27/FakeNewsDetection/internal/view"
)

type DashboardHandler interface {
	Dashboard(c *gin.Context)
	Analyze(c *gin.Context)
	Ticker(c *gin.Context)
	History(c *gin.Context)
	Analytics(c *gin.Context)
}

type dashboardHandler struct {
	pages
	analysis service.AnalysisService
	admin    service.AdminService
	inflight *service.Inflight
}

func NewDashboardHandler(analysis service.AnalysisService, admin service.AdminService, inflight *service.Inflight, variant view.Variant, logger *zap.Logger) DashboardHandler {
	return &dashboardHandler{
		pages:    pages{variant: variant, logger: logger},
		analysis: analysis,
		admin:    admin,
		inflight: inflight,
	}
}

type AnalyzeRequest struct {
	Mode  string `form:"mode"`
	Input string `form:"input"`
}

// Dashboard renders the input panel for ?mode= and the section for ?section=.
func (h *dashboardHandler) Dashboard(c *gin.Context) {
	st := h.newState(c)
	mode, err := view.ParseMode(c.Query("mode"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	st.SetMode(mode)

	section, err := view.ParseSection(c.Query("section"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	switch section {
	case view.SectionHistory:
		c.Redirect(http.StatusSeeOther, "/history")
		return
	case view.SectionAdmin:
		if err := st.SetSection(section, middleware.Binding(c).Session()); err != nil {
			redirect(c, "/", view.NoticeAdminRequired)
			return
		}
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	page := h.page(c, st)
	if st.Controls(h.variant).LoadAnalytics {
		if err := h.loadAnalytics(c, page); err != nil {
			if h.fail(c, st, err) {
				return
			}
		}
	}
	if !h.loadTicker(c, page) {
		return
	}
	h.html(c, http.StatusOK, "dashboard.tmpl", page)
}

// Analyze validates the input for the posted mode and runs the analysis.
func (h *dashboardHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBind(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	st := h.newState(c)
	mode, err := view.ParseMode(req.Mode)
	if err != nil {
		st.Alert = err.Error()
		h.html(c, http.StatusBadRequest, "dashboard.tmpl", h.page(c, st))
		return
	}
	st.SetMode(mode)
	st.Input = req.Input
	h.analyze(c, st)
}

// Ticker switches to URL mode and analyzes a live-news link.
func (h *dashboardHandler) Ticker(c *gin.Context) {
	st := h.newState(c)
	st.SetMode(view.ModeURL)
	st.Input = c.Query("url")
	h.analyze(c, st)
}

func (h *dashboardHandler) analyze(c *gin.Context, st *view.State) {
	analysisReq, err := view.Build(st.Mode, st.Input)
	if err != nil {
		h.fail(c, st, err)
		h.html(c, statusFor(err), "dashboard.tmpl", h.page(c, st))
		return
	}

	binding := middleware.Binding(c)
	release, err := h.inflight.Acquire(middleware.BrowserID(c), service.ActionAnalyze)
	if err != nil {
		h.fail(c, st, err)
		h.html(c, statusFor(err), "dashboard.tmpl", h.page(c, st))
		return
	}
	defer release()

	result, err := h.analysis.Analyze(c.Request.Context(), binding, analysisReq)
	if err != nil {
		if h.fail(c, st, err) {
			return
		}
		h.html(c, statusFor(err), "dashboard.tmpl", h.page(c, st))
		return
	}
	st.ShowResult(result)
	h.html(c, http.StatusOK, "dashboard.tmpl", h.page(c, st))
}

// History lists the user's past scans, filtered by ?q=.
func (h *dashboardHandler) History(c *gin.Context) {
	st := h.newState(c)
	binding := middleware.Binding(c)
	if err := st.SetSection(view.SectionHistory, binding.Session()); err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	entries, err := h.admin.LoadUserHistory(c.Request.Context(), binding)
	if err != nil {
		if h.fail(c, st, err) {
			return
		}
		h.html(c, statusFor(err), "dashboard.tmpl", h.page(c, st))
		return
	}

	page := h.page(c, st)
	page.HistoryQuery = c.Query("q")
	page.History = render.HistoryRows(entries, page.HistoryQuery)
	h.html(c, http.StatusOK, "dashboard.tmpl", page)
}

// Analytics shows the public statistics panel.
func (h *dashboardHandler) Analytics(c *gin.Context) {
	st := h.newState(c)
	st.SetMode(view.ModeAnalytics)
	page := h.page(c, st)
	if err := h.loadAnalytics(c, page); err != nil {
		if h.fail(c, st, err) {
			return
		}
		h.html(c, statusFor(err), "dashboard.tmpl", page)
		return
	}
	h.html(c, http.StatusOK, "dashboard.tmpl", page)
}

func (h *dashboardHandler) loadAnalytics(c *gin.Context, page *render.Page) error {
	stats, err := h.admin.LoadPublicHistory(c.Request.Context())
	if err != nil {
		return err
	}
	a := render.NewAnalyticsView(stats)
	page.Analytics = &a
	return nil
}

// loadTicker fills the live-news ticker unless data saver is on. It returns
// false when the request was already answered.
func (h *dashboardHandler) loadTicker(c *gin.Context, page *render.Page) bool {
	if page.Prefs.Saver || !page.Session.Authenticated() {
		return true
	}
	articles, err := h.admin.LoadLiveNews(c.Request.Context(), middleware.Binding(c))
	if err != nil {
		if errors.Is(err, apiclient.ErrAuthRejected) {
			page.State.ForceLogout()
			c.Redirect(http.StatusSeeOther, "/login")
			return false
		}
		h.logger.Warn("Live news unavailable", zap.Error(err))
		return true
	}
	page.Ticker = articles
	return true
}
