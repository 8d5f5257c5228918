package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"smart_thermostat/internal/models"
	"smart_thermostat/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid  = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid    = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"
	errLimitInvalid = "invalid 'limit'; use a positive integer"
	errRangeInvalid = "'from' must be <= 'to'"
	errLoadHistory  = "failed to load history"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// isDateOnly reports whether the query string represents a date without time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

// @Summary      List adjustment history
// @Description  Newest first. Without query parameters the whole history is returned. Dates accept RFC3339, 'YYYY-MM-DD HH:MM:SS' or 'YYYY-MM-DD'; a date-only 'to' covers the whole day.
// @Tags         history
// @Produce      json
// @Param        from   query     string  false  "Start of range"  example(2025-08-01)
// @Param        to     query     string  false  "End of range"    example(2025-08-31)
// @Param        limit  query     int     false  "Max records (default 100, max 1000)"
// @Success      200    {object}  map[string]interface{}  "count, history"
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/history [get]
func (h *Handler) getHistory(c *gin.Context) {
	ctx := c.Request.Context()

	fromQ, toQ, limitQ := c.Query("from"), c.Query("to"), c.Query("limit")
	if fromQ == "" && toQ == "" && limitQ == "" {
		records, err := h.services.History.All(ctx)
		if err != nil {
			h.logAndJSONError(c, http.StatusInternalServerError, errLoadHistory, "history_list_failed", err)
			return
		}
		respondHistory(c, records)
		return
	}

	var (
		f   service.HistoryFilter
		err error
	)
	if fromQ != "" {
		if f.From, err = parseQueryTime(fromQ); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errFromInvalid})
			return
		}
	}
	if toQ != "" {
		if f.To, err = parseQueryTime(toQ); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errToInvalid})
			return
		}
		if isDateOnly(toQ) {
			f.To = f.To.Add(24*time.Hour - time.Nanosecond)
		}
	}
	if limitQ != "" {
		if f.Limit, err = strconv.Atoi(limitQ); err != nil || f.Limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": errLimitInvalid})
			return
		}
	}

	records, err := h.services.History.List(ctx, f)
	if errors.Is(err, service.ErrInvalidTimeRange) {
		c.JSON(http.StatusBadRequest, gin.H{"error": errRangeInvalid})
		return
	}
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadHistory, "history_list_failed", err,
			"from", f.From, "to", f.To, "limit", f.Limit)
		return
	}
	respondHistory(c, records)
}

func respondHistory(c *gin.Context, records []models.AdjustmentRecord) {
	if records == nil {
		records = []models.AdjustmentRecord{}
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(records),
		"history": records,
	})
}

func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected one of: "+
			"RFC3339 (e.g. 2025-08-27T15:04:05Z), "+
			"'YYYY-MM-DD HH:MM:SS', "+
			"'YYYY-MM-DD'",
		s,
	)
}
