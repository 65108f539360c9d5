package handler

import (
	"net/http"
	"time"

	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/internal/middleware"
	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/internal/service"
	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/pkg/logger"
	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ClientHandler exposes client record CRUD and search.
type ClientHandler struct {
	registry *service.ClientRegistry
}

// NewClientHandler constructs a ClientHandler.
func NewClientHandler(registry *service.ClientRegistry) *ClientHandler {
	return &ClientHandler{registry: registry}
}

// List handles retrieving all clients for the authenticated owner
func (h *ClientHandler) List(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	clients, err := h.registry.List(c.Request().Context(), middleware.OwnerID(c))
	if err != nil {
		return respondError(c, log, err, "clients")
	}

	log.Info("Clients retrieved successfully", zap.Int("count", len(clients)))
	return c.JSON(http.StatusOK, clients)
}

// Create handles creating a new client with its seeded document checklist
func (h *ClientHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordClientOperation("create")

	var req service.ClientFields
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid client request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	client, err := h.registry.Create(c.Request().Context(), middleware.OwnerID(c), req)
	if err != nil {
		return respondError(c, log, err, "client")
	}

	log.Info("Client created successfully",
		zap.Uint("client_id", client.ID),
		zap.String("name", client.Name),
		zap.String("type", client.Type))
	return c.JSON(http.StatusCreated, client)
}

// Get handles retrieving a single client by ID
func (h *ClientHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)
	id := pathID(c, "id")

	defer prometheus.TrackDBOperation("query")(time.Now())
	client, err := h.registry.Get(c.Request().Context(), id, middleware.OwnerID(c))
	if err != nil {
		return respondError(c, log, err, "client")
	}

	return c.JSON(http.StatusOK, client)
}

// Update handles a partial update of an existing client
func (h *ClientHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	id := pathID(c, "id")
	prometheus.RecordClientOperation("update")

	var req service.ClientFields
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid client request data", zap.Uint("client_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	client, err := h.registry.Update(c.Request().Context(), id, middleware.OwnerID(c), req)
	if err != nil {
		return respondError(c, log, err, "client")
	}

	log.Info("Client updated successfully",
		zap.Uint("client_id", client.ID),
		zap.String("name", client.Name))
	return c.JSON(http.StatusOK, client)
}

// Delete handles deleting a client and cascading to its dependents
func (h *ClientHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	id := pathID(c, "id")
	prometheus.RecordClientOperation("delete")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := h.registry.Delete(c.Request().Context(), id, middleware.OwnerID(c)); err != nil {
		return respondError(c, log, err, "client")
	}

	log.Info("Client deleted successfully", zap.Uint("client_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Client deleted successfully"})
}

// Search handles owner-scoped substring search over name, promoter name,
// and location
func (h *ClientHandler) Search(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordClientOperation("search")

	query := c.QueryParam("q")

	defer prometheus.TrackDBOperation("query")(time.Now())
	clients, err := h.registry.Search(c.Request().Context(), middleware.OwnerID(c), query)
	if err != nil {
		return respondError(c, log, err, "clients")
	}

	log.Info("Client search completed",
		zap.String("query", query),
		zap.Int("count", len(clients)))
	return c.JSON(http.StatusOK, clients)
}
