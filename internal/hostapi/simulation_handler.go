package hostapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// SimulationHandler exposes the season-cycle controller operations
// (spec.md §4.9) over HTTP: advance_day, advance_week,
// advance_to_phase_end, skip_to_new_season.
type SimulationHandler struct {
	manager *Manager
}

// NewSimulationHandler returns a SimulationHandler for manager.
func NewSimulationHandler(manager *Manager) *SimulationHandler {
	return &SimulationHandler{manager: manager}
}

// seasonParam reads the required ?season= query parameter.
func seasonParam(c *gin.Context) (int, bool) {
	raw := c.Query("season")
	season, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "season query parameter must be an integer"})
		return 0, false
	}
	return season, true
}

// AdvanceDay handles POST /api/dynasties/:id/advance/day.
func (h *SimulationHandler) AdvanceDay(c *gin.Context) {
	dynastyID := c.Param("id")
	season, ok := seasonParam(c)
	if !ok {
		return
	}
	result, err := h.manager.AdvanceDay(c.Request.Context(), dynastyID, season)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// AdvanceWeek handles POST /api/dynasties/:id/advance/week.
func (h *SimulationHandler) AdvanceWeek(c *gin.Context) {
	dynastyID := c.Param("id")
	season, ok := seasonParam(c)
	if !ok {
		return
	}
	result, err := h.manager.AdvanceWeek(c.Request.Context(), dynastyID, season)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// AdvanceToPhaseEnd handles POST /api/dynasties/:id/advance/phase-end.
func (h *SimulationHandler) AdvanceToPhaseEnd(c *gin.Context) {
	dynastyID := c.Param("id")
	season, ok := seasonParam(c)
	if !ok {
		return
	}
	result, err := h.manager.AdvanceToPhaseEnd(c.Request.Context(), dynastyID, season)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// SkipToNewSeason handles POST /api/dynasties/:id/advance/skip-to-new-season.
func (h *SimulationHandler) SkipToNewSeason(c *gin.Context) {
	dynastyID := c.Param("id")
	season, ok := seasonParam(c)
	if !ok {
		return
	}
	result, err := h.manager.SkipToNewSeason(c.Request.Context(), dynastyID, season)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ResolveMilestoneRequest is the body for POST /api/dynasties/:id/milestone/resolve.
type ResolveMilestoneRequest struct {
	Message string `json:"message" binding:"required"`
}

// ResolveMilestone handles POST /api/dynasties/:id/milestone/resolve: the
// host's answer to a paused interactive milestone (spec.md §4.6).
func (h *SimulationHandler) ResolveMilestone(c *gin.Context) {
	dynastyID := c.Param("id")
	var req ResolveMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.manager.ResolveMilestone(c.Request.Context(), dynastyID, req.Message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "milestone resolved"})
}

// CancelMilestone handles POST /api/dynasties/:id/milestone/cancel.
func (h *SimulationHandler) CancelMilestone(c *gin.Context) {
	dynastyID := c.Param("id")
	if err := h.manager.CancelMilestone(c.Request.Context(), dynastyID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pending milestone cancelled"})
}

// RegisterRoutes registers simulation-control routes under router.
func (h *SimulationHandler) RegisterRoutes(router *gin.RouterGroup) {
	sim := router.Group("/dynasties/:id/advance")
	{
		sim.POST("/day", h.AdvanceDay)
		sim.POST("/week", h.AdvanceWeek)
		sim.POST("/phase-end", h.AdvanceToPhaseEnd)
		sim.POST("/skip-to-new-season", h.SkipToNewSeason)
	}

	milestones := router.Group("/dynasties/:id/milestone")
	{
		milestones.POST("/resolve", h.ResolveMilestone)
		milestones.POST("/cancel", h.CancelMilestone)
	}
}
