package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"invoiceflow/internal/domain"
	"invoiceflow/internal/export"
	"invoiceflow/internal/service"
)

// InvoiceHandler handles invoice endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// List handles GET /api/v1/invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.invoiceService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, invoices)
}

// GetByID handles GET /api/v1/invoices/:id
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	invoice, err := h.invoiceService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, invoice)
}

// Save handles POST /api/v1/invoices. The same endpoint creates and
// updates: records are upserted by id, matching the store contract.
func (h *InvoiceHandler) Save(c *gin.Context) {
	var invoice domain.Invoice
	if err := c.ShouldBindJSON(&invoice); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	created := invoice.ID == ""
	saved, err := h.invoiceService.Save(c.Request.Context(), invoice)
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

// Delete handles DELETE /api/v1/invoices/:id. Deleting an unknown id
// succeeds, per the store contract.
func (h *InvoiceHandler) Delete(c *gin.Context) {
	if err := h.invoiceService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": c.Param("id")})
}

// NextNumber handles POST /api/v1/invoices/next-number. Each call
// advances the persisted counter, even if no invoice is ever saved
// with the returned number.
func (h *InvoiceHandler) NextNumber(c *gin.Context) {
	number, err := h.invoiceService.NewNumber(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"invoice_number": number})
}

// Export handles GET /api/v1/invoices/export?format=csv|xlsx
func (h *InvoiceHandler) Export(c *gin.Context) {
	invoices, err := h.invoiceService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	stamp := time.Now().UTC().Format("2006-01-02")
	switch c.DefaultQuery("format", "csv") {
	case "csv":
		var buf bytes.Buffer
		buf.Write(export.BOM)
		w := export.NewCSVWriter(&buf)
		if err := w.WriteHeader(); err == nil {
			err = w.WriteInvoices(invoices)
		}
		w.Flush()
		if err == nil {
			err = w.Error()
		}
		if err != nil {
			HandleError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoices-%s.csv", stamp))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())

	case "xlsx":
		var buf bytes.Buffer
		if err := export.WriteXLSX(&buf, invoices); err != nil {
			HandleError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoices-%s.xlsx", stamp))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())

	default:
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or xlsx")
	}
}
