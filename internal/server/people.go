package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addPersonRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

func (s *Server) addPerson(c *gin.Context) {
	var req addPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	p, err := s.people.HandleAdd(c.Request.Context(), req.Name, req.Avatar)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (s *Server) listPeople(c *gin.Context) {
	people, err := s.people.HandleList(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, people)
}

func (s *Server) deletePerson(c *gin.Context) {
	if err := s.people.HandleDelete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) personRelationships(c *gin.Context) {
	rels, err := s.people.HandleRelationships(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rels)
}

func (s *Server) personEvents(c *gin.Context) {
	events, err := s.network.HandleListForPerson(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}
