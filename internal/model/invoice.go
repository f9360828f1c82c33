package model

// InvoiceStatus enumerates the billing states of an invoice.  The
// ledger only ever sets sent and paid; draft, overdue and cancelled are
// assigned by operators through the generic invoice update.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// Invoice is a bill issued to a client, optionally tied to a
// reservation by its booking code.  Balance and Status are maintained
// by the ledger: balance = max(0, total − Σ payments), and the invoice
// is paid exactly when the balance reaches zero.
//
// Fields:
//  ID              – unique identifier.
//  Number          – human-readable invoice number (e.g. INV-0031).
//  Date            – issue date, YYYY-MM-DD.
//  ClientName      – billed party display name.
//  ReservationCode – loose link to a reservation, not a foreign key.
//  Status          – billing status.
//  Items           – billed lines.
//  Subtotal, Tax, Total – invoice amounts, rounded to 2 decimals.
//  Balance         – outstanding amount, never negative.
//  Payments        – append-only payment history.
type Invoice struct {
	ID              string           `json:"id"`
	Number          string           `json:"number"`
	Date            string           `json:"date"`
	ClientName      string           `json:"client_name"`
	ReservationCode string           `json:"reservation_code,omitempty"`
	Status          InvoiceStatus    `json:"status"`
	Items           []InvoiceItem    `json:"items"`
	Subtotal        float64          `json:"subtotal"`
	Tax             float64          `json:"tax"`
	Total           float64          `json:"total"`
	Balance         float64          `json:"balance"`
	Payments        []InvoicePayment `json:"payments"`
}

// InvoiceItem is a single billed line.
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// InvoicePayment records one payment against an invoice.  Payments are
// append-only: once recorded they are never edited or removed.
//
// Fields:
//  ID         – assigned by the ledger when the payment is appended.
//  Amount     – amount paid.
//  MethodID   – payment method used.
//  MethodName – denormalized method display name.
//  Reference  – optional external reference (card slip, transfer id).
//  Date       – payment date, YYYY-MM-DD.
//  Notes      – optional operator notes.
type InvoicePayment struct {
	ID         string  `json:"id"`
	Amount     float64 `json:"amount"`
	MethodID   string  `json:"method_id"`
	MethodName string  `json:"method_name"`
	Reference  string  `json:"reference,omitempty"`
	Date       string  `json:"date"`
	Notes      string  `json:"notes,omitempty"`
}

// PaymentMethod is a configurable way of paying (cash, card, transfer).
type PaymentMethod struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
