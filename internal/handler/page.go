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

const invalidForm = "Invalid form submission"

// pages holds what every HTML handler needs to build and send a page.
type pages struct {
	variant view.Variant
	logger  *zap.Logger
}

// newState starts a request's view state, picking up a notice passed through
// a redirect.
func (p pages) newState(c *gin.Context) *view.State {
	st := view.NewState()
	st.Notice = p.variant.Notice(c.Query("notice"))
	return st
}

func (p pages) page(c *gin.Context, st *view.State) *render.Page {
	return render.NewPage(p.variant, st, middleware.Binding(c).Session(), middleware.Preferences(c))
}

// badRequest answers a submission that could not be bound.
func (p pages) badRequest(c *gin.Context, err error) {
	p.logger.Warn("Invalid request", zap.String("path", c.Request.URL.Path), zap.Error(err))
	st := p.newState(c)
	st.Alert = invalidForm
	p.html(c, http.StatusBadRequest, "dashboard.tmpl", p.page(c, st))
}

func (p pages) html(c *gin.Context, status int, name string, page *render.Page) {
	c.HTML(status, name, page)
}

// redirect sends the browser to path, carrying an optional notice code.
func redirect(c *gin.Context, path, notice string) {
	if notice != "" {
		path += "?notice=" + notice
	}
	c.Redirect(http.StatusSeeOther, path)
}

// fail maps a workflow error onto the state. It returns true when the request
// has already been answered: an auth rejection ends the session and sends the
// browser to the login page without rendering anything.
func (p pages) fail(c *gin.Context, st *view.State, err error) bool {
	var ve *view.ValidationError
	var rf *apiclient.RequestFailedError
	switch {
	case errors.Is(err, apiclient.ErrAuthRejected):
		st.ForceLogout()
		c.Redirect(http.StatusSeeOther, "/login")
		return true
	case errors.As(err, &ve):
		st.Error = ve.Message
	case errors.As(err, &rf):
		st.Alert = rf.Message
	case errors.Is(err, apiclient.ErrUnreachable):
		st.Alert = p.variant.Unreachable
	case errors.Is(err, service.ErrBusy):
		st.Alert = p.variant.Notice(view.NoticeBusy)
	case errors.Is(err, service.ErrInvalidLabel), errors.Is(err, service.ErrMissingLogID):
		st.Alert = err.Error()
	default:
		p.logger.Error("Unhandled request error", zap.String("path", c.Request.URL.Path), zap.Error(err))
		st.Alert = "Request Failed"
	}
	return false
}

// statusFor is the HTTP status a page is rendered with after fail.
func statusFor(err error) int {
	var ve *view.ValidationError
	var rf *apiclient.RequestFailedError
	switch {
	case errors.As(err, &ve), errors.Is(err, service.ErrInvalidLabel), errors.Is(err, service.ErrMissingLogID):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrBusy):
		return http.StatusConflict
	case errors.As(err, &rf):
		return http.StatusBadGateway
	case errors.Is(err, apiclient.ErrUnreachable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
