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

// DocumentHandler exposes the per-client document checklist and the
// pending-documents report.
type DocumentHandler struct {
	checklist *service.ChecklistManager
	registry  *service.ClientRegistry
}

// NewDocumentHandler constructs a DocumentHandler. The registry is consulted
// for client names when building the pending report.
func NewDocumentHandler(checklist *service.ChecklistManager, registry *service.ClientRegistry) *DocumentHandler {
	return &DocumentHandler{checklist: checklist, registry: registry}
}

// Get handles retrieving a client's checklist
func (h *DocumentHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)
	clientID := pathID(c, "clientId")

	defer prometheus.TrackDBOperation("query")(time.Now())
	doc, err := h.checklist.Get(c.Request().Context(), clientID)
	if err != nil {
		return respondError(c, log, err, "documents")
	}

	return c.JSON(http.StatusOK, doc)
}

// SetStatus handles replacing a single document's status
func (h *DocumentHandler) SetStatus(c echo.Context) error {
	log := logger.FromContext(c)
	clientID := pathID(c, "clientId")
	prometheus.RecordChecklistUpdate("set_status")

	var req struct {
		DocumentName string `json:"documentName"`
		Status       string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid document request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	doc, err := h.checklist.SetStatus(c.Request().Context(), clientID, req.DocumentName, req.Status)
	if err != nil {
		return respondError(c, log, err, "documents")
	}

	log.Info("Document status updated",
		zap.Uint("client_id", clientID),
		zap.String("document", req.DocumentName),
		zap.String("status", req.Status))
	return c.JSON(http.StatusOK, doc)
}

// AddLabel handles adding a new document label to a client's checklist
func (h *DocumentHandler) AddLabel(c echo.Context) error {
	log := logger.FromContext(c)
	clientID := pathID(c, "clientId")
	prometheus.RecordChecklistUpdate("add_label")

	var req struct {
		DocumentName string `json:"documentName"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid document request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	doc, err := h.checklist.AddLabel(c.Request().Context(), clientID, req.DocumentName)
	if err != nil {
		return respondError(c, log, err, "documents")
	}

	log.Info("Document added to checklist",
		zap.Uint("client_id", clientID),
		zap.String("document", req.DocumentName))
	return c.JSON(http.StatusOK, doc)
}

// clientPendingReport is one client's outstanding documents, with the
// client's display name resolved for the report.
type clientPendingReport struct {
	ClientID   uint     `json:"clientId"`
	ClientName string   `json:"clientName"`
	Pending    []string `json:"pending"`
}

// PendingForOwner reports outstanding documents across all of the owner's
// clients
func (h *DocumentHandler) PendingForOwner(c echo.Context) error {
	log := logger.FromContext(c)
	ownerID := middleware.OwnerID(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	pending, err := h.checklist.PendingForOwner(c.Request().Context(), ownerID)
	if err != nil {
		return respondError(c, log, err, "pending documents")
	}

	clients, err := h.registry.List(c.Request().Context(), ownerID)
	if err != nil {
		return respondError(c, log, err, "pending documents")
	}
	names := make(map[uint]string, len(clients))
	for _, client := range clients {
		names[client.ID] = client.Name
	}

	report := make([]clientPendingReport, 0, len(pending))
	for _, p := range pending {
		report = append(report, clientPendingReport{
			ClientID:   p.ClientID,
			ClientName: names[p.ClientID],
			Pending:    p.Pending,
		})
	}

	log.Info("Pending documents report generated", zap.Int("clients", len(report)))
	return c.JSON(http.StatusOK, report)
}

// PendingForClient reports outstanding documents for one client
func (h *DocumentHandler) PendingForClient(c echo.Context) error {
	log := logger.FromContext(c)
	clientID := pathID(c, "clientId")

	client, err := h.registry.Get(c.Request().Context(), clientID, middleware.OwnerID(c))
	if err != nil {
		return respondError(c, log, err, "client")
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	pending, err := h.checklist.PendingForClient(c.Request().Context(), clientID)
	if err != nil {
		return respondError(c, log, err, "pending documents")
	}

	return c.JSON(http.StatusOK, clientPendingReport{
		ClientID:   client.ID,
		ClientName: client.Name,
		Pending:    pending,
	})
}
