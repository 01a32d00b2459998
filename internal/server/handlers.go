package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gauthierbraillon/curaplan/internal/logging"
	"github.com/gauthierbraillon/curaplan/internal/planner"
)

// ScheduleHandler serves generated schedules.
type ScheduleHandler struct {
	engine      *planner.Engine
	cache       *ScheduleCache
	defaultTone planner.Tone
	defaultDays int
	logger      logging.Logger
	metrics     *Metrics
}

// NewScheduleHandler creates a handler that answers from cache.
func NewScheduleHandler(engine *planner.Engine, cache *ScheduleCache, defaultTone planner.Tone, defaultDays int, logger logging.Logger, metrics *Metrics) *ScheduleHandler {
	return &ScheduleHandler{
		engine:      engine,
		cache:       cache,
		defaultTone: defaultTone,
		defaultDays: defaultDays,
		logger:      logger,
		metrics:     metrics,
	}
}

// Schedule handles GET /api/schedule?start=&days=&tone=&seed=.
func (h *ScheduleHandler) Schedule(c *gin.Context) {
	tone := h.defaultTone
	if raw := c.Query("tone"); raw != "" {
		parsed, err := planner.ParseTone(raw)
		if err != nil {
			h.reject(c, "invalid tone", err)
			return
		}
		tone = parsed
	}

	days, err := queryInt(c, "days", int64(h.defaultDays))
	if err != nil {
		h.reject(c, "days must be an integer", err)
		return
	}
	seed, err := queryInt(c, "seed", 0)
	if err != nil {
		h.reject(c, "seed must be an integer", err)
		return
	}

	start := h.engine.ResolveStartDate(c.Query("start"))
	schedule, err := h.cache.Get(start, int(days), tone, seed)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, planner.ErrUnknownTone) {
			status = http.StatusBadRequest
		}
		h.metrics.incRequest("schedule", strconv.Itoa(status))
		h.logger.WithFields(logging.Fields{
			"request_id": c.GetString("request_id"),
			"error":      err.Error(),
		}).Error("Schedule generation failed")
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}

	h.metrics.incRequest("schedule", "200")
	c.JSON(http.StatusOK, gin.H{
		"start":    start.Format(planner.DateLayout),
		"days":     len(schedule),
		"tone":     tone,
		"seed":     seed,
		"schedule": schedule,
	})
}

// Tones handles GET /api/tones.
func (h *ScheduleHandler) Tones(c *gin.Context) {
	tones := make([]gin.H, 0, len(planner.Tones()))
	for _, t := range planner.Tones() {
		tones = append(tones, gin.H{
			"key":     t,
			"label":   t.Label(),
			"default": t == h.defaultTone,
		})
	}
	h.metrics.incRequest("tones", "200")
	c.JSON(http.StatusOK, gin.H{"tones": tones})
}

func (h *ScheduleHandler) reject(c *gin.Context, message string, err error) {
	h.metrics.incRequest("schedule", "400")
	h.logger.WithFields(logging.Fields{
		"request_id": c.GetString("request_id"),
		"error":      err.Error(),
	}).Warn("Rejected schedule request")
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   message,
	})
}

func queryInt(c *gin.Context, key string, defaultValue int64) (int64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return defaultValue, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
