package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"invoiceflow/internal/service"
)

// backupMaxBytes caps the accepted import document size.
const backupMaxBytes = 16 << 20

// BackupHandler handles full-data export, import and clear.
type BackupHandler struct {
	backupService service.BackupService
}

// NewBackupHandler creates a new BackupHandler.
func NewBackupHandler(backupService service.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// Export handles GET /api/v1/backup/export, returning the full data
// set as one downloadable JSON document.
func (h *BackupHandler) Export(c *gin.Context) {
	doc, err := h.backupService.Export(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("invoiceflow-backup-%s.json", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/json", doc)
}

// Import handles POST /api/v1/backup/import. The body is the backup
// document itself. Keys present in the document are overwritten
// wholesale; absent keys are left untouched.
func (h *BackupHandler) Import(c *gin.Context) {
	doc, err := io.ReadAll(io.LimitReader(c.Request.Body, backupMaxBytes))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "could not read request body")
		return
	}

	if err := h.backupService.Import(c.Request.Context(), doc); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"imported": true})
}

// Clear handles POST /api/v1/backup/clear, removing all stored data
// including settings and the invoice counter.
func (h *BackupHandler) Clear(c *gin.Context) {
	if err := h.backupService.Clear(c.Request.Context()); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"cleared": true})
}
