package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Rajankit27/FakeNewsDetection/internal/middleware"
	"github.com/Rajankit27/FakeNewsDetection/internal/models"
	"github.com/Rajankit27/FakeNewsDetection/internal/session"
	"github.com/Rajankit27/FakeNewsDetection/internal/view"
)

type SettingsHandler interface {
	UpdateSettings(c *gin.Context)
}

type settingsHandler struct {
	store  session.Store
	logger *zap.Logger
}

func NewSettingsHandler(store session.Store, logger *zap.Logger) SettingsHandler {
	return &settingsHandler{store: store, logger: logger}
}

// UpdateSettingsRequest mirrors the settings form; unchecked boxes are absent.
type UpdateSettingsRequest struct {
	Notify bool `form:"notify"`
	Saver  bool `form:"saver"`
}

// UpdateSettings handles POST /settings
func (h *settingsHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid settings")
		return
	}

	prefs := models.Preferences{Notify: req.Notify, Saver: req.Saver}
	if err := h.store.SetPreferences(c.Request.Context(), middleware.BrowserID(c), prefs); err != nil {
		h.logger.Error("Failed to save preferences", zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to save settings")
		return
	}

	h.logger.Info("Preferences updated",
		zap.Bool("notify", prefs.Notify),
		zap.Bool("saver", prefs.Saver),
	)
	redirect(c, "/", view.NoticeSettingsSaved)
}
