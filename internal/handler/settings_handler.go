package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoiceflow/internal/domain"
	"invoiceflow/internal/money"
	"invoiceflow/internal/service"
)

// SettingsHandler handles the settings endpoints.
type SettingsHandler struct {
	settingsService service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles GET /api/v1/settings. Returns the hardcoded defaults if
// no settings were ever saved.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, settings)
}

// Update handles PUT /api/v1/settings. The record is overwritten
// wholesale; there is no merge.
func (h *SettingsHandler) Update(c *gin.Context) {
	var settings domain.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	if err := h.settingsService.Save(c.Request.Context(), settings); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, settings)
}

// Currencies handles GET /api/v1/settings/currencies, returning each
// supported currency with a sample formatted amount for UI previews.
func (h *SettingsHandler) Currencies(c *gin.Context) {
	type entry struct {
		Code    string `json:"code"`
		Example string `json:"example"`
	}
	out := make([]entry, 0, len(money.SupportedCurrencies()))
	for _, code := range money.SupportedCurrencies() {
		out = append(out, entry{Code: code, Example: money.Format(1234.56, code)})
	}
	RespondOK(c, out)
}
