package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Rajankit27/FakeNewsDetection/internal/middleware"
	"github.com/Rajankit27/FakeNewsDetection/internal/render"
	"github.com/Rajankit27/FakeNewsDetection/internal/service"
	"github.com/Rajankit27/FakeNewsDetection/internal/view"
)

type AdminHandler interface {
	Overview(c *gin.Context)
	Users(c *gin.Context)
	Retrain(c *gin.Context)
}

type adminHandler struct {
	pages
	admin    service.AdminService
	inflight *service.Inflight
}

func NewAdminHandler(admin service.AdminService, inflight *service.Inflight, variant view.Variant, logger *zap.Logger) AdminHandler {
	return &adminHandler{
		pages:    pages{variant: variant, logger: logger},
		admin:    admin,
		inflight: inflight,
	}
}

// Overview shows the stats tiles and the dispute list.
func (h *adminHandler) Overview(c *gin.Context) {
	st := h.newState(c)
	page, ok := h.load(c, st, false)
	if !ok {
		return
	}
	h.html(c, http.StatusOK, "admin.tmpl", page)
}

// Users adds the registered user table to the overview.
func (h *adminHandler) Users(c *gin.Context) {
	st := h.newState(c)
	page, ok := h.load(c, st, true)
	if !ok {
		return
	}
	h.html(c, http.StatusOK, "admin.tmpl", page)
}

// Retrain starts a training job. On failure the page offers to retry.
func (h *adminHandler) Retrain(c *gin.Context) {
	st := h.newState(c)
	binding := middleware.Binding(c)

	release, err := h.inflight.Acquire(middleware.BrowserID(c), service.ActionRetrain)
	if err != nil {
		h.fail(c, st, err)
		h.renderAfterFailure(c, st, statusFor(err))
		return
	}
	defer release()

	if _, err := h.admin.TriggerRetrain(c.Request.Context(), binding, binding.Session().Username); err != nil {
		if h.fail(c, st, err) {
			return
		}
		h.renderAfterFailure(c, st, statusFor(err))
		return
	}
	redirect(c, "/admin", view.NoticeRetrainStarted)
}

func (h *adminHandler) renderAfterFailure(c *gin.Context, st *view.State, status int) {
	alert := st.Alert
	page, ok := h.load(c, st, false)
	if !ok {
		return
	}
	st.Alert = alert
	page.Admin.RetrainFailed = true
	h.html(c, status, "admin.tmpl", page)
}

// load fetches the admin panel data. It returns false when the request was
// already answered.
func (h *adminHandler) load(c *gin.Context, st *view.State, withUsers bool) (*render.Page, bool) {
	binding := middleware.Binding(c)
	if err := st.SetSection(view.SectionAdmin, binding.Session()); err != nil {
		redirect(c, "/", view.NoticeAdminRequired)
		return nil, false
	}
	page := h.page(c, st)
	ctx := c.Request.Context()

	stats, err := h.admin.LoadAdminStats(ctx, binding)
	if err != nil {
		if h.fail(c, st, err) {
			return nil, false
		}
	}
	disputes, err := h.admin.LoadDisputeList(ctx, binding)
	if err != nil {
		if h.fail(c, st, err) {
			return nil, false
		}
	}
	admin := render.NewAdminView(stats, disputes)

	if withUsers {
		users, err := h.admin.LoadUserList(ctx, binding)
		if err != nil {
			if h.fail(c, st, err) {
				return nil, false
			}
		}
		admin.Users = users
	}
	page.Admin = &admin
	return page, true
}
