// Package export renders the invoice list as downloadable CSV or XLSX
// spreadsheets for the history view.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"invoiceflow/internal/domain"
)

// BOM holds the UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the spreadsheet header row, shared by CSV and XLSX.
var columns = []string{
	"Invoice Number",
	"Date",
	"Due Date",
	"Client",
	"Client Email",
	"Status",
	"Currency",
	"Items",
	"Subtotal",
	"Tax Rate (%)",
	"Tax Amount",
	"Discount",
	"Total",
}

// CSVWriter wraps csv.Writer for exporting invoices as CSV.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteInvoices converts a batch of invoices to rows and writes them.
func (w *CSVWriter) WriteInvoices(invoices []domain.Invoice) error {
	for i := range invoices {
		if err := w.csv.Write(invoiceToRow(&invoices[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

func invoiceToRow(inv *domain.Invoice) []string {
	return []string{
		inv.InvoiceNumber,
		inv.Date,
		inv.DueDate,
		inv.Client.Name,
		inv.Client.Email,
		string(inv.Status),
		inv.Currency,
		strconv.Itoa(len(inv.Items)),
		fmtAmount(inv.Subtotal),
		fmtAmount(inv.TaxRate),
		fmtAmount(inv.TaxAmount),
		fmtAmount(inv.DiscountAmount),
		fmtAmount(inv.Total),
	}
}

func fmtAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
