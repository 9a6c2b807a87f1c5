package handlers

import (
	"net/http"

	"climacontrol/internal/service"

	"github.com/gin-gonic/gin"
)

type createEquipmentRequest struct {
	Name          string `json:"name" binding:"required"`
	Location      string `json:"location"`
	EnvironmentID string `json:"environment_id"`
	Model         string `json:"model"`
	Capacity      int    `json:"capacity" binding:"required"`
	Integration   string `json:"integration" binding:"required"` // BRISE | SMART
	Mode          string `json:"mode"`
	TargetTempC   int    `json:"target_temp_c"`
}

type powerRequest struct {
	On *bool `json:"on" binding:"required"`
}

type targetRequest struct {
	TemperatureC int `json:"temperature_c" binding:"required"`
}

type equipmentModeRequest struct {
	Mode string `json:"mode" binding:"required"` // cool | heat | auto | fan
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      List equipments
// @Tags         equipments
// @Produce      json
// @Param        search  query  string  false  "filter by name, case-insensitive"
// @Success      200  {array}   models.Equipment
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/equipments [get]
func (h *Handler) listEquipments(c *gin.Context) {
	units, err := h.services.Equipments.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.respondError(c, err, "equipment_list_failed")
		return
	}
	c.JSON(http.StatusOK, units)
}

// @Summary      Register equipment
// @Tags         equipments
// @Accept       json
// @Produce      json
// @Param        body  body  createEquipmentRequest  true  "Equipment payload"
// @Success      201  {object}  models.Equipment
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/equipments [post]
func (h *Handler) createEquipment(c *gin.Context) {
	var req createEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	e, err := h.services.Equipments.Create(c.Request.Context(), service.CreateEquipmentParams{
		Name:          req.Name,
		Location:      req.Location,
		EnvironmentID: req.EnvironmentID,
		Model:         req.Model,
		Capacity:      req.Capacity,
		Integration:   req.Integration,
		Mode:          req.Mode,
		TargetTempC:   req.TargetTempC,
	})
	if err != nil {
		h.respondError(c, err, "equipment_create_failed")
		return
	}
	c.JSON(http.StatusCreated, e)
}

// @Summary      Get equipment
// @Tags         equipments
// @Produce      json
// @Param        id  path  string  true  "equipment id"
// @Success      200  {object}  models.Equipment
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/equipments/{id} [get]
func (h *Handler) getEquipment(c *gin.Context) {
	e, err := h.services.Equipments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "equipment_get_failed")
		return
	}
	c.JSON(http.StatusOK, e)
}

// @Summary      Toggle equipment power
// @Tags         equipments
// @Produce      json
// @Param        id  path  string  true  "equipment id"
// @Success      200  {object}  models.Equipment
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/equipments/{id}/toggle [post]
func (h *Handler) toggleEquipment(c *gin.Context) {
	e, err := h.services.Equipments.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "equipment_toggle_failed")
		return
	}
	c.JSON(http.StatusOK, e)
}

// @Summary      Set equipment power state
// @Tags         equipments
// @Accept       json
// @Produce      json
// @Param        id    path  string        true  "equipment id"
// @Param        body  body  powerRequest  true  "Power payload"
// @Success      200  {object}  models.Equipment
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/equipments/{id}/power [put]
func (h *Handler) setEquipmentPower(c *gin.Context) {
	var req powerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	e, err := h.services.Equipments.SetPower(c.Request.Context(), c.Param("id"), *req.On)
	if err != nil {
		h.respondError(c, err, "equipment_set_power_failed")
		return
	}
	c.JSON(http.StatusOK, e)
}

// @Summary      Set target temperature
// @Description  Accepts 16 to 30 degrees Celsius
// @Tags         equipments
// @Accept       json
// @Produce      json
// @Param        id    path  string         true  "equipment id"
// @Param        body  body  targetRequest  true  "Target payload"
// @Success      200  {object}  models.Equipment
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/equipments/{id}/target [put]
func (h *Handler) setEquipmentTarget(c *gin.Context) {
	var req targetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	e, err := h.services.Equipments.SetTarget(c.Request.Context(), c.Param("id"), req.TemperatureC)
	if err != nil {
		h.respondError(c, err, "equipment_set_target_failed")
		return
	}
	c.JSON(http.StatusOK, e)
}

// @Summary      Set operating mode
// @Tags         equipments
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "equipment id"
// @Param        body  body  equipmentModeRequest  true  "Mode payload"
// @Success      200  {object}  models.Equipment
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/equipments/{id}/mode [put]
func (h *Handler) setEquipmentMode(c *gin.Context) {
	var req equipmentModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	e, err := h.services.Equipments.SetMode(c.Request.Context(), c.Param("id"), req.Mode)
	if err != nil {
		h.respondError(c, err, "equipment_set_mode_failed")
		return
	}
	c.JSON(http.StatusOK, e)
}

// @Summary      List environments with fleet statistics
// @Tags         environments
// @Produce      json
// @Success      200  {array}   models.EnvironmentStats
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/environments [get]
func (h *Handler) listEnvironments(c *gin.Context) {
	envs, err := h.services.Environments.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "environment_list_failed")
		return
	}
	c.JSON(http.StatusOK, envs)
}
