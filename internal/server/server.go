// Package server exposes the ledger over HTTP for UIs and the tangle CLI.
// The server owns the in-memory ledger for its process lifetime; state is
// lost on restart.
package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkorcha/tangle/internal/application/handlers"
	"github.com/mkorcha/tangle/internal/domain/ports"
	"github.com/mkorcha/tangle/internal/domain/services"
)

// Server wires the application handlers behind a gin router.
type Server struct {
	ledger   *services.LedgerService
	catalog  *services.Catalog
	people   *handlers.PersonHandler
	rels     *handlers.RelationshipHandler
	network  *handlers.NetworkEventHandler
	snapshot *handlers.SnapshotHandler
}

// New builds a Server over the given store and catalog.
func New(store ports.Store, catalog *services.Catalog) *Server {
	ledger := services.NewLedgerService(store)
	network := services.NewNetworkService(store, catalog)

	return &Server{
		ledger:   ledger,
		catalog:  catalog,
		people:   handlers.NewPersonHandler(ledger),
		rels:     handlers.NewRelationshipHandler(ledger, catalog),
		network:  handlers.NewNetworkEventHandler(network, catalog),
		snapshot: handlers.NewSnapshotHandler(store),
	}
}

// Ledger returns the underlying ledger service, for seeding at startup.
func (s *Server) Ledger() *services.LedgerService {
	return s.ledger
}

// SetupRouter registers all routes.
func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/people", s.listPeople)
		api.POST("/people", s.addPerson)
		api.DELETE("/people/:id", s.deletePerson)
		api.GET("/people/:id/relationships", s.personRelationships)
		api.GET("/people/:id/events", s.personEvents)

		api.GET("/relationships", s.listRelationships)
		api.POST("/relationships", s.addRelationship)
		// Register the pair route before the :id routes so gin does not
		// treat "pair" as a relationship ID.
		api.GET("/relationships/pair", s.relationshipForPair)
		api.GET("/relationships/:id", s.getRelationship)
		api.DELETE("/relationships/:id", s.deleteRelationship)
		api.GET("/relationships/:id/events", s.relationshipEvents)
		api.POST("/relationships/:id/events", s.recordEvent)

		api.GET("/network-events", s.listNetworkEvents)
		api.POST("/network-events", s.createNetworkEvent)
		api.POST("/network-events/preview", s.previewNetworkEvent)
		api.GET("/network-events/:id", s.getNetworkEvent)
		api.DELETE("/network-events/:id", s.deleteNetworkEvent)

		api.GET("/export", s.exportSnapshot)
		api.POST("/import", s.importSnapshot)
		api.POST("/seed", s.seed)

		api.GET("/categories", s.listCategories)
		api.GET("/relationship-types", s.listRelationshipTypes)
	}

	return r
}

// fail maps service errors onto HTTP statuses: not-found sentinels become
// 404, everything else 500. Validation failures are reported by the callers
// as 400 before reaching here.
func fail(c *gin.Context, err error) {
	if isNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func isNotFound(err error) bool {
	return errors.Is(err, services.ErrPersonNotFound) ||
		errors.Is(err, services.ErrRelationshipNotFound) ||
		errors.Is(err, services.ErrNetworkEventNotFound)
}
