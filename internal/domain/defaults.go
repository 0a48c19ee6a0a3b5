package domain

// DefaultSettings returns the settings used until the user saves their
// own. The store substitutes these whenever no settings record exists.
func DefaultSettings() Settings {
	return Settings{
		Company: Company{
			Name:    "Your Company Name",
			Email:   "contact@company.com",
			Phone:   "+1 (555) 123-4567",
			Website: "www.company.com",
			Address: Address{
				Street:  "123 Business St",
				City:    "Business City",
				State:   "BC",
				ZipCode: "12345",
				Country: "United States",
			},
			TaxID: "12-3456789",
			BankDetails: BankDetails{
				AccountName:   "Your Company Name",
				AccountNumber: "1234567890",
				BankName:      "Business Bank",
				IBAN:          "GB29 NWBK 6016 1331 9268 19",
			},
		},
		DefaultTaxRate:     8.5,
		DefaultCurrency:    "PKR",
		InvoicePrefix:      "INV-",
		InvoiceStartNumber: 1,
		DefaultTerms:       "Payment is due within 30 days of invoice date. Late payments may be subject to fees.",
		DefaultNotes:       "Thank you for your business!",
	}
}
