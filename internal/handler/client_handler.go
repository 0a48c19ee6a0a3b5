package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoiceflow/internal/domain"
	"invoiceflow/internal/service"
)

// ClientHandler handles client endpoints.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// List handles GET /api/v1/clients
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clientService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, clients)
}

// GetByID handles GET /api/v1/clients/:id
func (h *ClientHandler) GetByID(c *gin.Context) {
	client, err := h.clientService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, client)
}

// Save handles POST /api/v1/clients (upsert by id).
func (h *ClientHandler) Save(c *gin.Context) {
	var client domain.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	created := client.ID == ""
	saved, err := h.clientService.Save(c.Request.Context(), client)
	if err != nil {
		HandleError(c, err)
		return
	}
	if created {
		RespondCreated(c, saved)
		return
	}
	RespondOK(c, saved)
}

// Delete handles DELETE /api/v1/clients/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.clientService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": c.Param("id")})
}
