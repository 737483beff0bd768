package hostapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nfl-analytics/dynasty-core/internal/draft"
	"github.com/nfl-analytics/dynasty-core/internal/models"
	"github.com/nfl-analytics/dynasty-core/internal/store"
)

// DraftHandler exposes draft-class preparation and draft-day simulation
// (spec.md §4.7.4 step 3, §4.8) over HTTP.
type DraftHandler struct {
	manager *Manager
}

// NewDraftHandler returns a DraftHandler for manager.
func NewDraftHandler(manager *Manager) *DraftHandler {
	return &DraftHandler{manager: manager}
}

// Progress handles GET /api/dynasties/:id/draft/progress.
func (h *DraftHandler) Progress(c *gin.Context) {
	dynastyID := c.Param("id")
	season, ok := seasonParam(c)
	if !ok {
		return
	}

	progress, err := h.manager.draftSvc.Progress(c.Request.Context(), dynastyID, season)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, progress)
}

// simulateDraftRequest is the body for POST /api/dynasties/:id/draft/simulate.
// Needs is keyed by team id; a team absent from the map is evaluated
// against an empty needs list, equivalent to "no known positional gaps".
type simulateDraftRequest struct {
	UserTeamID int              `json:"user_team_id"`
	UserPicks  map[string]string `json:"user_picks"`
	Needs      map[string][]models.TeamNeed `json:"needs"`
}

// Simulate handles POST /api/dynasties/:id/draft/simulate: runs the
// draft order to completion, honoring any user picks supplied in the
// request and falling back to the evaluator for every other pick.
func (h *DraftHandler) Simulate(c *gin.Context) {
	dynastyID := c.Param("id")
	season, ok := seasonParam(c)
	if !ok {
		return
	}

	var req simulateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userPicks := make(map[int]string, len(req.UserPicks))
	for overallStr, playerID := range req.UserPicks {
		overall, err := strconv.Atoi(overallStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_picks keys must be overall pick numbers"})
			return
		}
		userPicks[overall] = playerID
	}

	needs := func(teamID int) []models.TeamNeed {
		return req.Needs[strconv.Itoa(teamID)]
	}

	result, err := h.manager.withTxn(c.Request.Context(), dynastyID, func(ctx context.Context, txn *store.Txn) (interface{}, error) {
		return h.manager.draftSvc.SimulateDraft(ctx, txn, dynastyID, season, req.UserTeamID, userPicks, draft.NeedsProvider(needs))
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	picks := result.([]*models.DraftPick)
	c.JSON(http.StatusOK, gin.H{"picks": picks, "count": len(picks)})
}

// RegisterRoutes registers draft routes under router.
func (h *DraftHandler) RegisterRoutes(router *gin.RouterGroup) {
	d := router.Group("/dynasties/:id/draft")
	{
		d.GET("/progress", h.Progress)
		d.POST("/simulate", h.Simulate)
	}
}
