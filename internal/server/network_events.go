package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkorcha/tangle/internal/application/handlers"
	"github.com/mkorcha/tangle/internal/domain/entities"
)

type networkEventRequest struct {
	Category              string         `json:"category"`
	Description           string         `json:"description"`
	Date                  string         `json:"date"`
	Image                 string         `json:"image"`
	Participants          []string       `json:"participants"`
	ImpactOverrides       map[string]int `json:"impact_overrides"`
	ManualRelationshipIDs []string       `json:"manual_relationship_ids"`
}

func (r *networkEventRequest) params() handlers.CreateNetworkEventParams {
	return handlers.CreateNetworkEventParams{
		Category:              r.Category,
		Description:           r.Description,
		Date:                  r.Date,
		Image:                 r.Image,
		Participants:          r.Participants,
		ImpactOverrides:       r.ImpactOverrides,
		ManualRelationshipIDs: r.ManualRelationshipIDs,
	}
}

func (s *Server) createNetworkEvent(c *gin.Context) {
	var req networkEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ev, err := s.network.HandleCreate(c.Request.Context(), req.params())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ev)
}

func (s *Server) previewNetworkEvent(c *gin.Context) {
	var req networkEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	impacts, err := s.network.HandlePreview(c.Request.Context(), req.params())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if impacts == nil {
		impacts = []entities.Impact{}
	}
	c.JSON(http.StatusOK, gin.H{"impacts": impacts})
}

func (s *Server) listNetworkEvents(c *gin.Context) {
	events, err := s.network.HandleList(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (s *Server) getNetworkEvent(c *gin.Context) {
	ev, err := s.network.HandleGet(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

func (s *Server) deleteNetworkEvent(c *gin.Context) {
	if err := s.network.HandleDelete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Categories())
}

func (s *Server) listRelationshipTypes(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.RelationshipTypes())
}
