package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkorcha/tangle/internal/application/handlers"
)

type addRelationshipRequest struct {
	Person1ID   string `json:"person1_id"`
	Person2ID   string `json:"person2_id"`
	Type        string `json:"type"`
	HealthScore *int   `json:"health_score"`

	P1ToP2Type   string `json:"p1_to_p2_type"`
	P2ToP1Type   string `json:"p2_to_p1_type"`
	P1ToP2Health *int   `json:"p1_to_p2_health"`
	P2ToP1Health *int   `json:"p2_to_p1_health"`
}

func (s *Server) addRelationship(c *gin.Context) {
	var req addRelationshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rel, err := s.rels.HandleCreate(c.Request.Context(), handlers.CreateRelationshipParams{
		Person1ID:    req.Person1ID,
		Person2ID:    req.Person2ID,
		Type:         req.Type,
		HealthScore:  req.HealthScore,
		P1ToP2Type:   req.P1ToP2Type,
		P2ToP1Type:   req.P2ToP1Type,
		P1ToP2Health: req.P1ToP2Health,
		P2ToP1Health: req.P2ToP1Health,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rel)
}

func (s *Server) listRelationships(c *gin.Context) {
	rels, err := s.rels.HandleList(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rels)
}

func (s *Server) getRelationship(c *gin.Context) {
	rel, err := s.rels.HandleGet(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rel)
}

func (s *Server) relationshipForPair(c *gin.Context) {
	a, b := c.Query("a"), c.Query("b")
	rel, err := s.rels.HandlePair(c.Request.Context(), a, b)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if rel == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no relationship between pair"})
		return
	}
	c.JSON(http.StatusOK, rel)
}

func (s *Server) deleteRelationship(c *gin.Context) {
	if err := s.rels.HandleDelete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type recordEventRequest struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Impact      *int   `json:"impact"`
	Image       string `json:"image"`
}

func (s *Server) recordEvent(c *gin.Context) {
	var req recordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rel, err := s.rels.HandleRecordEvent(c.Request.Context(), c.Param("id"), handlers.RecordEventParams{
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
		Impact:      req.Impact,
		Image:       req.Image,
	})
	if err != nil {
		if isNotFound(err) {
			fail(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rel)
}

func (s *Server) relationshipEvents(c *gin.Context) {
	events, err := s.network.HandleListForRelationship(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}
