package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkorcha/tangle/internal/infrastructure/snapshot"
)

func (s *Server) exportSnapshot(c *gin.Context) {
	snap, err := s.snapshot.HandleExport(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	format := c.DefaultQuery("format", "json")
	codec := snapshot.ForFormat(format)
	if codec == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported format: " + format})
		return
	}

	if format == "json" {
		c.JSON(http.StatusOK, snap)
		return
	}
	c.Header("Content-Type", "application/yaml")
	c.Status(http.StatusOK)
	if err := codec.Encode(c.Writer, snap); err != nil {
		fail(c, err)
	}
}

func (s *Server) importSnapshot(c *gin.Context) {
	format := c.DefaultQuery("format", "json")
	codec := snapshot.ForFormat(format)
	if codec == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported format: " + format})
		return
	}

	snap, err := codec.Decode(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.snapshot.HandleImport(c.Request.Context(), snap); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"people":         len(snap.People),
		"relationships":  len(snap.Relationships),
		"network_events": len(snap.NetworkEvents),
	})
}

func (s *Server) seed(c *gin.Context) {
	seeded, err := s.ledger.SeedSampleData(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"seeded": seeded})
}
