package hostapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nfl-analytics/dynasty-core/internal/models"
)

// DynastyHandler handles dynasty lifecycle HTTP requests: creation and
// lookup. Simulation advancement lives in SimulationHandler.
type DynastyHandler struct {
	manager *Manager
}

// NewDynastyHandler returns a DynastyHandler for manager.
func NewDynastyHandler(manager *Manager) *DynastyHandler {
	return &DynastyHandler{manager: manager}
}

// CreateDynastyRequest is the body for POST /api/dynasties.
type CreateDynastyRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
	OwnerName   string `json:"owner_name" binding:"required"`
	UserTeamID  *int   `json:"user_team_id"`
	StartDate   struct {
		Year  int `json:"year" binding:"required"`
		Month int `json:"month" binding:"required"`
		Day   int `json:"day" binding:"required"`
	} `json:"start_date" binding:"required"`
}

// Create handles POST /api/dynasties: registers a new dynasty and its
// initial preseason state row.
func (h *DynastyHandler) Create(c *gin.Context) {
	var req CreateDynastyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rawUserID, _ := c.Get("user_id")
	ownerUserID, ok := rawUserID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authenticated user"})
		return
	}

	dynasty := &models.Dynasty{
		ID:          uuid.New().String(),
		DisplayName: req.DisplayName,
		OwnerName:   req.OwnerName,
		OwnerUserID: &ownerUserID,
		UserTeamID:  req.UserTeamID,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}

	startDate := models.NewDate(req.StartDate.Year, req.StartDate.Month, req.StartDate.Day)
	season := req.StartDate.Year

	initial := &models.DynastyState{
		DynastyID:    dynasty.ID,
		Season:       season,
		CurrentYear:  season,
		CurrentDate:  startDate,
		CurrentPhase: models.Preseason,
	}
	if err := h.manager.CreateDynasty(c.Request.Context(), dynasty, initial); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dynasty)
}

// Get handles GET /api/dynasties/:id.
func (h *DynastyHandler) Get(c *gin.Context) {
	dynastyID := c.Param("id")
	dynasty, err := h.manager.GetDynasty(c.Request.Context(), dynastyID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dynasty)
}

// List handles GET /api/dynasties: every active dynasty owned by the
// authenticated user.
func (h *DynastyHandler) List(c *gin.Context) {
	rawUserID, _ := c.Get("user_id")
	ownerUserID, ok := rawUserID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authenticated user"})
		return
	}
	dynasties, err := h.manager.ListDynastiesForOwner(c.Request.Context(), ownerUserID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dynasties": dynasties, "count": len(dynasties)})
}

// RegisterRoutes registers dynasty lifecycle routes under router.
func (h *DynastyHandler) RegisterRoutes(router *gin.RouterGroup) {
	dynasties := router.Group("/dynasties")
	{
		dynasties.POST("", h.Create)
		dynasties.GET("", h.List)
		dynasties.GET("/:id", h.Get)
	}
}
