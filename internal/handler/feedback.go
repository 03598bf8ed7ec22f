package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Rajankit27/FakeNewsDetection/internal/middleware"
	"github.com/Rajankit27/FakeNewsDetection/internal/service"
	"github.com/Rajankit27/FakeNewsDetection/internal/view"
)

type FeedbackHandler interface {
	Submit(c *gin.Context)
}

type feedbackHandler struct {
	pages
	feedback service.FeedbackService
	inflight *service.Inflight
}

func NewFeedbackHandler(feedback service.FeedbackService, inflight *service.Inflight, variant view.Variant, logger *zap.Logger) FeedbackHandler {
	return &feedbackHandler{
		pages:    pages{variant: variant, logger: logger},
		feedback: feedback,
		inflight: inflight,
	}
}

type FeedbackRequest struct {
	LogID      string `form:"log_id"`
	Agree      bool   `form:"agree"`
	Correction string `form:"correction"`
}

func (h *feedbackHandler) Submit(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBind(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	if req.Agree {
		h.feedback.SubmitAgreement(req.LogID)
		redirect(c, "/", view.NoticeFeedbackAgreed)
		return
	}

	st := h.newState(c)
	binding := middleware.Binding(c)
	release, err := h.inflight.Acquire(middleware.BrowserID(c), service.ActionFeedback)
	if err != nil {
		h.fail(c, st, err)
		h.html(c, statusFor(err), "dashboard.tmpl", h.page(c, st))
		return
	}
	defer release()

	out, err := h.feedback.SubmitDisagreement(c.Request.Context(), binding, binding.Session().Username, req.LogID, req.Correction)
	if err != nil {
		if h.fail(c, st, err) {
			return
		}
		h.html(c, statusFor(err), "dashboard.tmpl", h.page(c, st))
		return
	}
	if out.Skipped {
		redirect(c, "/", "")
		return
	}
	redirect(c, "/", view.NoticeDisputeLogged)
}
