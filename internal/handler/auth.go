package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Rajankit27/FakeNewsDetection/internal/apiclient"
	"github.com/Rajankit27/FakeNewsDetection/internal/middleware"
	"github.com/Rajankit27/FakeNewsDetection/internal/service"
	"github.com/Rajankit27/FakeNewsDetection/internal/view"
)

type AuthHandler interface {
	ShowLogin(c *gin.Context)
	Login(c *gin.Context)
	Register(c *gin.Context)
	Logout(c *gin.Context)
}

type authHandler struct {
	pages
	authService service.AuthService
	inflight    *service.Inflight
}

func NewAuthHandler(authService service.AuthService, inflight *service.Inflight, variant view.Variant, logger *zap.Logger) AuthHandler {
	return &authHandler{
		pages:       pages{variant: variant, logger: logger},
		authService: authService,
		inflight:    inflight,
	}
}

type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *authHandler) ShowLogin(c *gin.Context) {
	if middleware.Binding(c).Session().Authenticated() {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	h.html(c, http.StatusOK, "login.tmpl", h.page(c, h.newState(c)))
}

func (h *authHandler) Login(c *gin.Context) {
	st := h.newState(c)
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		st.Error = "Username and password are required."
		h.html(c, http.StatusBadRequest, "login.tmpl", h.page(c, st))
		return
	}

	browserID := middleware.BrowserID(c)
	release, err := h.inflight.Acquire(browserID, service.ActionLogin)
	if err != nil {
		st.Error = h.variant.Notice(view.NoticeBusy)
		h.html(c, http.StatusConflict, "login.tmpl", h.page(c, st))
		return
	}
	defer release()

	if _, err := h.authService.Login(c.Request.Context(), browserID, strings.TrimSpace(req.Username), req.Password); err != nil {
		status := http.StatusUnauthorized
		st.Error = apiclient.MessageOf(err)
		if errors.Is(err, apiclient.ErrUnreachable) {
			status = http.StatusServiceUnavailable
			st.Error = h.variant.Unreachable
		}
		h.html(c, status, "login.tmpl", h.page(c, st))
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *authHandler) Register(c *gin.Context) {
	st := h.newState(c)
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		st.Error = "Username and password are required."
		h.html(c, http.StatusBadRequest, "login.tmpl", h.page(c, st))
		return
	}

	if _, err := h.authService.Register(c.Request.Context(), strings.TrimSpace(req.Username), req.Password); err != nil {
		status := http.StatusBadRequest
		st.Error = apiclient.MessageOf(err)
		if errors.Is(err, apiclient.ErrUnreachable) {
			status = http.StatusServiceUnavailable
			st.Error = h.variant.Unreachable
		}
		h.html(c, status, "login.tmpl", h.page(c, st))
		return
	}
	redirect(c, "/login", view.NoticeRegistered)
}

func (h *authHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), middleware.BrowserID(c)); err != nil {
		h.logger.Error("Failed to logout", zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to logout")
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
}
