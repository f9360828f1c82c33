package model

// Hotel is a property managed by the dashboard.  The active hotel is a
// session preference; its TaxRate prices point-of-sale tickets.  A zero
// TaxRate means "use the configured default".
type Hotel struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Currency string  `json:"currency"`
	TaxRate  float64 `json:"tax_rate"`
}
