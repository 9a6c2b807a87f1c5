package handlers

import (
	"net/http"

	"climacontrol/internal/service"

	"github.com/gin-gonic/gin"
)

type enabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// @Summary      List routines
// @Tags         routines
// @Produce      json
// @Success      200  {array}   models.Routine
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/routines [get]
func (h *Handler) listRoutines(c *gin.Context) {
	routines, err := h.services.Routines.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "routine_list_failed")
		return
	}
	c.JSON(http.StatusOK, routines)
}

// @Summary      Create routine
// @Description  Validates the whole definition; name, at least one day and one target are required
// @Tags         routines
// @Accept       json
// @Produce      json
// @Param        body  body  service.RoutineDefinition  true  "Routine definition"
// @Success      201  {object}  models.Routine
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/routines [post]
func (h *Handler) createRoutine(c *gin.Context) {
	var def service.RoutineDefinition
	if err := c.ShouldBindJSON(&def); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	r, err := h.services.Routines.Create(c.Request.Context(), def)
	if err != nil {
		h.respondError(c, err, "routine_create_failed")
		return
	}
	c.JSON(http.StatusCreated, r)
}

// @Summary      Preview routine
// @Description  Returns readiness and the generated summary without persisting
// @Tags         routines
// @Accept       json
// @Produce      json
// @Param        body  body  service.RoutineDefinition  true  "Routine definition"
// @Success      200  {object}  service.RoutinePreview
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/routines/preview [post]
func (h *Handler) previewRoutine(c *gin.Context) {
	var def service.RoutineDefinition
	if err := c.ShouldBindJSON(&def); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	p, err := h.services.Routines.Preview(def)
	if err != nil {
		h.respondError(c, err, "routine_preview_failed")
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Get routine
// @Tags         routines
// @Produce      json
// @Param        id  path  string  true  "routine id"
// @Success      200  {object}  models.Routine
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/routines/{id} [get]
func (h *Handler) getRoutine(c *gin.Context) {
	r, err := h.services.Routines.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "routine_get_failed")
		return
	}
	c.JSON(http.StatusOK, r)
}

// @Summary      Enable or disable routine
// @Tags         routines
// @Accept       json
// @Produce      json
// @Param        id    path  string          true  "routine id"
// @Param        body  body  enabledRequest  true  "Enabled payload"
// @Success      200  {object}  models.Routine
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/routines/{id}/enabled [put]
func (h *Handler) setRoutineEnabled(c *gin.Context) {
	var req enabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	r, err := h.services.Routines.SetEnabled(c.Request.Context(), c.Param("id"), *req.Enabled)
	if err != nil {
		h.respondError(c, err, "routine_set_enabled_failed")
		return
	}
	c.JSON(http.StatusOK, r)
}

// @Summary      Delete routine
// @Tags         routines
// @Produce      json
// @Param        id  path  string  true  "routine id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/routines/{id} [delete]
func (h *Handler) deleteRoutine(c *gin.Context) {
	if err := h.services.Routines.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, "routine_delete_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}
