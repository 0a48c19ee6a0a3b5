package store

// Fixed keys addressing each logical collection in the key-value
// store.
const (
	KeyInvoices          = "invoiceflow_invoices"
	KeyClients           = "invoiceflow_clients"
	KeyProducts          = "invoiceflow_products"
	KeySettings          = "invoiceflow_settings"
	KeyLastInvoiceNumber = "invoiceflow_lastInvoiceNumber"
)

// AllKeys returns every storage key, in export order.
func AllKeys() []string {
	return []string{KeyInvoices, KeyClients, KeyProducts, KeySettings, KeyLastInvoiceNumber}
}
