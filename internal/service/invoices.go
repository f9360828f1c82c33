package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/hotel-pms/internal/model"
	"github.com/iliyamo/hotel-pms/internal/store"
)

// InvoiceService is the invoice ledger.  Balance and status are
// derived values: balance = max(0, round2(total − Σ payments)), and an
// invoice is paid exactly when its balance is zero.  Both are
// recomputed on every payment append; nothing else moves them here
// (overdue and cancelled are operator-assigned through the generic
// update paths of the dashboard).
type InvoiceService struct {
	store   *store.Store
	taxRate float64

	// Now supplies the current time; tests override it to pin dates.
	Now func() time.Time
}

// NewInvoiceService constructs an InvoiceService.  taxRate is the
// percentage applied when the active hotel has none configured.
func NewInvoiceService(st *store.Store, taxRate float64) *InvoiceService {
	if st == nil {
		panic("nil store passed to NewInvoiceService")
	}
	return &InvoiceService{store: st, taxRate: taxRate, Now: time.Now}
}

// InvoiceDraft is the intake form for a new invoice.  Line totals,
// subtotal, tax and total are computed by Add.
type InvoiceDraft struct {
	Date            string              `json:"date"`
	ClientName      string              `json:"client_name"`
	ReservationCode string              `json:"reservation_code"`
	HotelID         string              `json:"hotel_id"`
	Items           []model.InvoiceItem `json:"items"`
}

// PaymentDraft is a payment to record against an invoice.  The id is
// assigned by the ledger; MethodName is resolved from MethodID when
// left empty.
type PaymentDraft struct {
	Amount     float64 `json:"amount"`
	MethodID   string  `json:"method_id"`
	MethodName string  `json:"method_name"`
	Reference  string  `json:"reference"`
	Date       string  `json:"date"`
	Notes      string  `json:"notes"`
}

// Add creates an invoice.  Amounts are computed line by line with
// round-2 at every aggregation step; the tax rate comes from the
// hotel's configuration.  A zero-total invoice starts paid, keeping
// the balance/status equivalence true from birth; everything else
// starts as a draft.
func (s *InvoiceService) Add(draft InvoiceDraft) (model.Invoice, error) {
	if len(draft.Items) == 0 {
		return model.Invoice{}, fmt.Errorf("%w: invoice needs at least one line", ErrValidation)
	}
	var created model.Invoice
	err := s.store.Update(func(st *store.State) error {
		inv := model.Invoice{
			ID:              store.NewID(),
			Number:          st.NextInvoiceNumber(),
			Date:            draft.Date,
			ClientName:      draft.ClientName,
			ReservationCode: draft.ReservationCode,
			Status:          model.InvoiceDraft,
			Items:           append([]model.InvoiceItem(nil), draft.Items...),
			Payments:        []model.InvoicePayment{},
		}
		if inv.Date == "" {
			inv.Date = s.Now().UTC().Format(dateLayout)
		}
		subtotal := decimal.Zero
		for i := range inv.Items {
			line := &inv.Items[i]
			line.Total = round2(decimal.NewFromInt(int64(line.Quantity)).Mul(dec(line.UnitPrice)))
			subtotal = subtotal.Add(dec(line.Total)).Round(2)
		}
		rate := dec(s.taxRate)
		if h := st.ActiveHotel(draft.HotelID); h != nil && h.TaxRate > 0 {
			rate = dec(h.TaxRate)
		}
		tax := subtotal.Mul(rate).Div(decimal.NewFromInt(100)).Round(2)
		total := subtotal.Add(tax).Round(2)
		inv.Subtotal = round2(subtotal)
		inv.Tax = round2(tax)
		inv.Total = round2(total)
		inv.Balance = inv.Total
		if total.IsZero() {
			inv.Status = model.InvoicePaid
		}
		st.Invoices = append(st.Invoices, inv)
		created = inv
		return nil
	})
	return created, err
}

// InvoicePatch is a generic field patch for an invoice.  Nil fields are
// left untouched.  Status set through here is operator-assigned (e.g.
// overdue, cancelled); the ledger overrides it again on the next
// payment append.
type InvoicePatch struct {
	Status          *model.InvoiceStatus `json:"status"`
	Date            *string              `json:"date"`
	ClientName      *string              `json:"client_name"`
	ReservationCode *string              `json:"reservation_code"`
}

// Update applies a generic field patch to an invoice.  Amounts and the
// payment history are ledger-owned and cannot be patched.
func (s *InvoiceService) Update(id string, patch InvoicePatch) (model.Invoice, error) {
	var updated model.Invoice
	err := s.store.Update(func(st *store.State) error {
		inv := st.InvoiceByID(id)
		if inv == nil {
			return store.ErrNotFound
		}
		if patch.Status != nil {
			inv.Status = *patch.Status
		}
		if patch.Date != nil {
			inv.Date = *patch.Date
		}
		if patch.ClientName != nil {
			inv.ClientName = *patch.ClientName
		}
		if patch.ReservationCode != nil {
			inv.ReservationCode = *patch.ReservationCode
		}
		updated = *inv
		return nil
	})
	return updated, err
}

// AddPayment appends a payment to an invoice and recomputes balance
// and status.  The payment history is append-only; overpayment is
// absorbed by clamping the balance at zero.  A draft invoice is
// promoted to sent by its first real payment; a zero-amount payment is
// recorded but moves neither balance nor status.
func (s *InvoiceService) AddPayment(invoiceID string, draft PaymentDraft) (model.Invoice, error) {
	var updated model.Invoice
	err := s.store.Update(func(st *store.State) error {
		inv := st.InvoiceByID(invoiceID)
		if inv == nil {
			return store.ErrNotFound
		}
		payment := model.InvoicePayment{
			ID:         store.NewID(),
			Amount:     round2(dec(draft.Amount)),
			MethodID:   draft.MethodID,
			MethodName: draft.MethodName,
			Reference:  draft.Reference,
			Date:       draft.Date,
			Notes:      draft.Notes,
		}
		if payment.MethodName == "" {
			if m := st.PaymentMethodByID(payment.MethodID); m != nil {
				payment.MethodName = m.Name
			}
		}
		if payment.Date == "" {
			payment.Date = s.Now().UTC().Format(dateLayout)
		}
		inv.Payments = append(inv.Payments, payment)

		paid := decimal.Zero
		for _, p := range inv.Payments {
			paid = paid.Add(dec(p.Amount)).Round(2)
		}
		balance := dec(inv.Total).Sub(paid).Round(2)
		if balance.IsNegative() {
			balance = decimal.Zero
		}
		inv.Balance = round2(balance)
		switch {
		case balance.IsZero():
			inv.Status = model.InvoicePaid
		case inv.Status == model.InvoiceDraft && payment.Amount > 0:
			inv.Status = model.InvoiceSent
		}
		updated = *inv
		return nil
	})
	return updated, err
}

// List returns every invoice in insertion order.
func (s *InvoiceService) List() []model.Invoice {
	return s.store.Snapshot().Invoices
}
