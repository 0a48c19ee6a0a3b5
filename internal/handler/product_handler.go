package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoiceflow/internal/domain"
	"invoiceflow/internal/service"
)

// ProductHandler handles product catalog endpoints.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles GET /api/v1/products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, products)
}

// GetByID handles GET /api/v1/products/:id
func (h *ProductHandler) GetByID(c *gin.Context) {
	product, err := h.productService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, product)
}

// Save handles POST /api/v1/products (upsert by id).
func (h *ProductHandler) Save(c *gin.Context) {
	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	created := product.ID == ""
	saved, err := h.productService.Save(c.Request.Context(), product)
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

// Delete handles DELETE /api/v1/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.productService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": c.Param("id")})
}
