package handlers

import (
	"errors"
	"net/http"

	"climacontrol/internal/repository"
	"climacontrol/internal/routine"
	"climacontrol/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK           = "ok"
	errInvalidBodyPref = "invalid body: "
)

// validationErrs are service-level rejections the client can fix;
// they map to 400 rather than 500.
var validationErrs = []error{
	service.ErrNameRequired,
	service.ErrInvalidMode,
	service.ErrInvalidIntegration,
	service.ErrInvalidCapacity,
	service.ErrTargetOutOfRange,
	service.ErrUnknownAlertType,
	service.ErrUnknownTheme,
	routine.ErrUnknownMode,
	routine.ErrUnknownDay,
	routine.ErrDayInactive,
	routine.ErrSlotNotFound,
	routine.ErrUnknownField,
	routine.ErrSingleSlotMode,
	routine.ErrNoSlots,
	routine.ErrRulesUnsupported,
	routine.ErrTemperatureRange,
	routine.ErrUnknownAction,
	routine.ErrNameRequired,
	routine.ErrNoActiveDays,
	routine.ErrNoTargets,
	routine.ErrEqualBounds,
	routine.ErrBadClock,
}

func isValidationErr(err error) bool {
	for _, sentinel := range validationErrs {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// respondError maps an error to its HTTP status. Unexpected errors are
// logged and answered with a generic message.
func (h *Handler) respondError(c *gin.Context, err error, logKey string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case isValidationErr(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		if h.log != nil {
			h.log.Errorw(logKey, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
