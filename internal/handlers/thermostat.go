package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"smart_thermostat/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errAdjust          = "failed to compute adjustment"
	errGetState        = "failed to load state"
	errInvalidBodyPref = "invalid body: "
)

// Request defaults used when a field is omitted.
const (
	defaultRoomTemp      = 22.0
	defaultOutdoorTemp   = 20.0
	defaultPreferredTemp = 23.0
	defaultTimeOfDay     = models.Morning
	occupiedValue        = "Yes"
)

var errNotANumber = errors.New("temperature must be a finite number")

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// flexFloat accepts a JSON number or a string holding one.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %q", errNotANumber, raw)
	}
	*f = flexFloat(v)
	return nil
}

// or returns def for a missing field. JSON null never reaches UnmarshalJSON
// and leaves the pointer nil, so null also takes the default instead of
// failing the request.
func (f *flexFloat) or(def float64) float64 {
	if f == nil {
		return def
	}
	return float64(*f)
}

// adjustRequest is the wire form of an adjustment. Missing fields take the
// defaults above; occupancy counts only when it is the string "Yes".
type adjustRequest struct {
	RoomTemp      *flexFloat      `json:"roomTemp"`
	OutdoorTemp   *flexFloat      `json:"outdoorTemp"`
	PreferredTemp *flexFloat      `json:"preferredTemp"`
	TimeOfDay     json.RawMessage `json:"timeOfDay"`
	Occupancy     any             `json:"occupancy"`
}

// timeOfDay defaults only when the key is absent. A string is used as is;
// null or any other JSON value is kept as its raw text, which matches no
// time-of-day rule.
func (r adjustRequest) timeOfDay() string {
	raw := bytes.TrimSpace(r.TimeOfDay)
	if len(raw) == 0 {
		return defaultTimeOfDay
	}
	var s string
	if raw[0] == '"' && json.Unmarshal(raw, &s) == nil {
		return s
	}
	return string(raw)
}

func (r adjustRequest) toModel() models.AdjustmentRequest {
	timeOfDay := r.timeOfDay()
	occ, _ := r.Occupancy.(string)
	return models.AdjustmentRequest{
		RoomTemp:      r.RoomTemp.or(defaultRoomTemp),
		OutdoorTemp:   r.OutdoorTemp.or(defaultOutdoorTemp),
		PreferredTemp: r.PreferredTemp.or(defaultPreferredTemp),
		TimeOfDay:     timeOfDay,
		Occupancy:     occ == occupiedValue,
	}
}

// AdjustTemperatureRequest documents the adjust payload for Swagger.
type AdjustTemperatureRequest struct {
	RoomTemp      float64 `json:"roomTemp" example:"22"`
	OutdoorTemp   float64 `json:"outdoorTemp" example:"20"`
	PreferredTemp float64 `json:"preferredTemp" example:"23"`
	// Morning, Afternoon or Night
	TimeOfDay string `json:"timeOfDay" example:"Morning"`
	// "Yes" when the room is occupied
	Occupancy string `json:"occupancy" example:"Yes"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Compute a thermostat adjustment
// @Description  Temperatures may be numbers or numeric strings. Omitted fields use defaults (22, 20, 23, Morning).
// @Tags         thermostat
// @Accept       json
// @Produce      json
// @Param        body  body      AdjustTemperatureRequest  true  "Room conditions"
// @Success      200   {object}  models.AdjustmentResult
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/adjust-temperature [post]
func (h *Handler) adjustTemperature(c *gin.Context) {
	var body adjustRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	req := body.toModel()
	res, err := h.services.Thermostat.Adjust(c.Request.Context(), req)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errAdjust, "adjust_failed", err,
			"room_temp", req.RoomTemp, "time_of_day", req.TimeOfDay)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary      Get thermostat state
// @Tags         thermostat
// @Produce      json
// @Success      200  {object}  models.ThermostatState
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/thermostat/state [get]
func (h *Handler) getState(c *gin.Context) {
	st, err := h.services.Monitoring.GetState(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetState, "thermostat_get_state_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}
