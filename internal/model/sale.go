package model

// SaleStatus marks the settlement state of a point-of-sale ticket.
type SaleStatus string

const (
	SaleCompleted SaleStatus = "completed"
	SaleVoided    SaleStatus = "voided"
)

// Sale is a point-of-sale ticket.  It is created atomically with its
// inventory deductions and is immutable afterwards.  Sales are stored
// most recent first.
//
// Fields:
//  ID            – unique identifier.
//  Number        – human-readable ticket number (e.g. POS-0117).
//  Date          – sale date, YYYY-MM-DD.
//  GuestID       – charged guest, when the sale is put on a room.
//  GuestName     – denormalized guest display name.
//  Status        – settlement status.
//  PaymentMethod – how the ticket was paid.
//  Items         – sold lines.
//  Subtotal, Tax, Total – ticket amounts, rounded to 2 decimals.
//  Notes         – optional operator notes.
type Sale struct {
	ID            string     `json:"id"`
	Number        string     `json:"number"`
	Date          string     `json:"date"`
	GuestID       string     `json:"guest_id,omitempty"`
	GuestName     string     `json:"guest_name,omitempty"`
	Status        SaleStatus `json:"status"`
	PaymentMethod string     `json:"payment_method"`
	Items         []SaleItem `json:"items"`
	Subtotal      float64    `json:"subtotal"`
	Tax           float64    `json:"tax"`
	Total         float64    `json:"total"`
	Notes         string     `json:"notes,omitempty"`
}

// SaleItem is one sold line.  ProductID may be empty for ad-hoc
// charges; only lines whose product tracks stock trigger deduction.
type SaleItem struct {
	ProductID   string  `json:"product_id,omitempty"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}
