package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Dashboard overview
// @Tags         reports
// @Produce      json
// @Success      200  {object}  service.Overview
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/reports/overview [get]
func (h *Handler) getOverview(c *gin.Context) {
	o, err := h.services.Reports.Overview(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "report_overview_failed")
		return
	}
	c.JSON(http.StatusOK, o)
}

// @Summary      Energy report
// @Description  Current draw against the all-on baseline, broken down per environment
// @Tags         reports
// @Produce      json
// @Success      200  {object}  service.EnergyReport
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/reports/energy [get]
func (h *Handler) getEnergyReport(c *gin.Context) {
	r, err := h.services.Reports.Energy(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "report_energy_failed")
		return
	}
	c.JSON(http.StatusOK, r)
}
