package domain

// InvoiceStatus represents the lifecycle of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// ValidInvoiceStatuses maps each accepted invoice status for input validation.
var ValidInvoiceStatuses = map[InvoiceStatus]bool{
	InvoiceStatusDraft:     true,
	InvoiceStatusSent:      true,
	InvoiceStatusPaid:      true,
	InvoiceStatusOverdue:   true,
	InvoiceStatusCancelled: true,
}

// DiscountType selects how an invoice-level discount is applied.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// ValidDiscountTypes maps each accepted discount type for input validation.
var ValidDiscountTypes = map[DiscountType]bool{
	DiscountPercentage: true,
	DiscountFixed:      true,
}
