package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"invoiceflow/internal/domain"
	"invoiceflow/internal/handler"
	"invoiceflow/mocks"
)

func newInvoiceHandler() (*handler.InvoiceHandler, *mocks.MockInvoiceService) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)
	return h, mockSvc
}

func TestInvoiceHandler_List_Success(t *testing.T) {
	h, mockSvc := newInvoiceHandler()

	mockSvc.On("List", mock.Anything).Return([]domain.Invoice{
		{ID: "inv1", InvoiceNumber: "INV-0001"},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestInvoiceHandler_Save_NewInvoiceReturns201(t *testing.T) {
	h, mockSvc := newInvoiceHandler()

	mockSvc.On("Save", mock.Anything, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.InvoiceNumber == "INV-0001" && inv.ID == ""
	})).Return(domain.Invoice{ID: "generated", InvoiceNumber: "INV-0001"}, nil)

	body, _ := json.Marshal(map[string]any{
		"invoice_number": "INV-0001",
		"client":         map[string]string{"name": "Acme"},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Save(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestInvoiceHandler_Save_ValidationErrorReturns400(t *testing.T) {
	h, mockSvc := newInvoiceHandler()

	verr := (&domain.ValidationError{}).Add("invoice_number", "must not be empty")
	mockSvc.On("Save", mock.Anything, mock.Anything).Return(domain.Invoice{}, verr)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewReader([]byte(`{}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Save(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	require.Len(t, resp.Error.Fields, 1)
	assert.Equal(t, "invoice_number", resp.Error.Fields[0].Field)
}

func TestInvoiceHandler_GetByID_NotFoundReturns404(t *testing.T) {
	h, mockSvc := newInvoiceHandler()

	mockSvc.On("Get", mock.Anything, "missing").Return(domain.Invoice{}, domain.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvoiceHandler_NextNumber(t *testing.T) {
	h, mockSvc := newInvoiceHandler()

	mockSvc.On("NewNumber", mock.Anything).Return("INV-0042", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/invoices/next-number", nil)

	h.NextNumber(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "INV-0042")
}

func TestInvoiceHandler_Export_CSV(t *testing.T) {
	h, mockSvc := newInvoiceHandler()

	mockSvc.On("List", mock.Anything).Return([]domain.Invoice{
		{InvoiceNumber: "INV-0001", Client: domain.Client{Name: "Acme"}, Total: 150},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/export?format=csv", nil)

	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Body.String(), "INV-0001")
}

func TestInvoiceHandler_Export_UnknownFormatReturns400(t *testing.T) {
	h, mockSvc := newInvoiceHandler()

	mockSvc.On("List", mock.Anything).Return([]domain.Invoice{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/export?format=pdf", nil)

	h.Export(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
