package domain

import "time"

// Address is a postal address shared by clients and the company profile.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// Client represents a billable customer. Identity is by ID; name and
// email are used only for search and display, not uniqueness.
type Client struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
	TaxID   string  `json:"tax_id,omitempty"`
}

// Product is a reusable line-item template. Stamping a product onto an
// invoice copies its fields; there is no live linkage afterwards.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// InvoiceItem is a single line on an invoice. Subtotal is derived; the
// core recomputes it on every save and never trusts the stored value.
type InvoiceItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}

// Invoice is the aggregate root. Client is a snapshot copy taken at
// save time: editing the original client never changes past invoices.
type Invoice struct {
	ID             string        `json:"id"`
	InvoiceNumber  string        `json:"invoice_number"`
	Date           string        `json:"date"`
	DueDate        string        `json:"due_date"`
	PONumber       string        `json:"po_number,omitempty"`
	Currency       string        `json:"currency"`
	Client         Client        `json:"client"`
	Items          []InvoiceItem `json:"items"`
	Subtotal       float64       `json:"subtotal"`
	TaxRate        float64       `json:"tax_rate"`
	TaxAmount      float64       `json:"tax_amount"`
	DiscountType   DiscountType  `json:"discount_type"`
	DiscountValue  float64       `json:"discount_value"`
	DiscountAmount float64       `json:"discount_amount"`
	Total          float64       `json:"total"`
	Notes          string        `json:"notes"`
	Terms          string        `json:"terms"`
	Status         InvoiceStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// BankDetails holds the payment instructions printed on invoices.
type BankDetails struct {
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name"`
	IBAN          string `json:"iban"`
}

// Company is the issuing business profile stored in settings.
type Company struct {
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Website     string      `json:"website"`
	Address     Address     `json:"address"`
	Logo        string      `json:"logo,omitempty"`
	TaxID       string      `json:"tax_id"`
	BankDetails BankDetails `json:"bank_details"`
}

// Settings is the singleton configuration record. It is created with
// hardcoded defaults on first read and overwritten wholesale on save.
type Settings struct {
	Company            Company `json:"company"`
	DefaultTaxRate     float64 `json:"default_tax_rate"`
	DefaultCurrency    string  `json:"default_currency"`
	InvoicePrefix      string  `json:"invoice_prefix"`
	InvoiceStartNumber int     `json:"invoice_start_number"`
	DefaultTerms       string  `json:"default_terms"`
	DefaultNotes       string  `json:"default_notes"`
}
