package sdk

import "github.com/shopspring/decimal"

// ClientRef is the embedded client a list query preloads alongside
// its parent record.
type ClientRef struct {
	ID           string `json:"id"`
	BusinessName string `json:"business_name"`
}

type ProjectRecord struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	StartDate string     `json:"start_date"`
	ClientID  *string    `json:"client_id"`
	Client    *ClientRef `json:"client,omitempty"`
	URL       *string    `json:"url"`
	Image     *string    `json:"image"`
	Industry  *string    `json:"industry"`
	Notes     string     `json:"notes"`
}

type InvoiceRecord struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	ClientID      string          `json:"client_id"`
	Client        *ClientRef      `json:"client,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	DueDate       string          `json:"due_date"`
}
