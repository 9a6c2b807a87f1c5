package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type themeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// @Summary      Get theme
// @Tags         settings
// @Produce      json
// @Success      200  {object}  service.ThemeSetting
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/settings/theme [get]
func (h *Handler) getTheme(c *gin.Context) {
	t, err := h.services.Settings.Theme(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "settings_get_theme_failed")
		return
	}
	c.JSON(http.StatusOK, t)
}

// @Summary      Set theme
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  themeRequest  true  "Theme payload"
// @Success      200  {object}  service.ThemeSetting
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/settings/theme [put]
func (h *Handler) setTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	t, err := h.services.Settings.SetTheme(c.Request.Context(), req.Theme)
	if err != nil {
		h.respondError(c, err, "settings_set_theme_failed")
		return
	}
	c.JSON(http.StatusOK, t)
}
