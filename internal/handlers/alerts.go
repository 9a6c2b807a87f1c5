package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      List alerts
// @Tags         alerts
// @Produce      json
// @Param        type  query  string  false  "info | warning | critical"
// @Success      200  {array}   models.Alert
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	alerts, err := h.services.Alerts.List(c.Request.Context(), c.Query("type"))
	if err != nil {
		h.respondError(c, err, "alert_list_failed")
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// @Summary      Dismiss alert
// @Tags         alerts
// @Produce      json
// @Param        id  path  string  true  "alert id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/alerts/{id} [delete]
func (h *Handler) dismissAlert(c *gin.Context) {
	if err := h.services.Alerts.Dismiss(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, "alert_dismiss_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}
