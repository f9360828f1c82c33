package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/hotel-pms/internal/model"
	"github.com/iliyamo/hotel-pms/internal/queue"
	"github.com/iliyamo/hotel-pms/internal/store"
)

// SaleService records point-of-sale tickets and runs the stock
// deduction that keeps inventory consistent with what left the
// shelves.  A sale and its deductions settle in one update.
//
// Deduction policy: rows in the inventory collection are depleted in
// collection order, which is row creation order.  Each row gives up
// min(stock, remaining) units; stock never goes below zero, and an
// oversell stops silently once every tracked location is empty.
type SaleService struct {
	store   *store.Store
	events  queue.Publisher
	taxRate float64

	// Now supplies the current time; tests override it to pin dates.
	Now func() time.Time
}

// NewSaleService constructs a SaleService.  events may be nil to
// disable publishing; taxRate is the percentage applied when the
// active hotel has none configured.
func NewSaleService(st *store.Store, events queue.Publisher, taxRate float64) *SaleService {
	if st == nil {
		panic("nil store passed to NewSaleService")
	}
	return &SaleService{store: st, events: events, taxRate: taxRate, Now: time.Now}
}

// SaleDraft is the point-of-sale intake form.  Line totals, subtotal,
// tax and total are computed by Add.
type SaleDraft struct {
	Date          string          `json:"date"`
	GuestID       string          `json:"guest_id"`
	HotelID       string          `json:"hotel_id"`
	PaymentMethod string          `json:"payment_method"`
	Items         []SaleItemDraft `json:"items"`
	Notes         string          `json:"notes"`
}

// SaleItemDraft is one line of a sale draft.
type SaleItemDraft struct {
	ProductID   string  `json:"product_id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Add creates a sale, prepends it to the sales collection (most recent
// first) and deducts stock for every line whose product tracks it.
func (s *SaleService) Add(ctx context.Context, draft SaleDraft) (model.Sale, error) {
	if len(draft.Items) == 0 {
		return model.Sale{}, fmt.Errorf("%w: sale needs at least one line", ErrValidation)
	}
	for _, it := range draft.Items {
		if it.Quantity <= 0 {
			return model.Sale{}, fmt.Errorf("%w: line %q has non-positive quantity", ErrValidation, it.Description)
		}
	}
	var created model.Sale
	err := s.store.Update(func(st *store.State) error {
		sale := model.Sale{
			ID:            store.NewID(),
			Number:        st.NextSaleNumber(),
			Date:          draft.Date,
			GuestID:       draft.GuestID,
			Status:        model.SaleCompleted,
			PaymentMethod: draft.PaymentMethod,
			Items:         make([]model.SaleItem, 0, len(draft.Items)),
			Notes:         draft.Notes,
		}
		if sale.Date == "" {
			sale.Date = s.Now().UTC().Format(dateLayout)
		}
		if g := st.GuestByID(draft.GuestID); g != nil {
			sale.GuestName = g.DisplayName()
		}

		subtotal := decimal.Zero
		for _, it := range draft.Items {
			line := model.SaleItem{
				ProductID:   it.ProductID,
				Description: it.Description,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				Total:       round2(decimal.NewFromInt(int64(it.Quantity)).Mul(dec(it.UnitPrice))),
			}
			sale.Items = append(sale.Items, line)
			subtotal = subtotal.Add(dec(line.Total)).Round(2)
		}
		rate := dec(s.taxRate)
		if h := st.ActiveHotel(draft.HotelID); h != nil && h.TaxRate > 0 {
			rate = dec(h.TaxRate)
		}
		tax := subtotal.Mul(rate).Div(decimal.NewFromInt(100)).Round(2)
		sale.Subtotal = round2(subtotal)
		sale.Tax = round2(tax)
		sale.Total = round2(subtotal.Add(tax))

		st.Sales = append([]model.Sale{sale}, st.Sales...)
		deductStock(st, sale.Items)
		created = sale
		return nil
	})
	if err != nil {
		return model.Sale{}, err
	}
	s.publish(ctx, created)
	return created, nil
}

// List returns every sale, most recent first.
func (s *SaleService) List() []model.Sale {
	return s.store.Snapshot().Sales
}

// deductStock removes sold quantities from the inventory.  Quantities
// are first accumulated per stock-tracked product, then drained
// greedily across the inventory rows in collection order.  Lines
// without a product, with an unknown product or with an untracked one
// deduct nothing.
func deductStock(st *store.State, items []model.SaleItem) {
	need := make(map[string]int)
	for _, it := range items {
		if it.ProductID == "" {
			continue
		}
		p := st.ProductByID(it.ProductID)
		if p == nil || !p.TrackStock {
			continue
		}
		need[it.ProductID] += it.Quantity
	}
	if len(need) == 0 {
		return
	}
	for i := range st.Inventory {
		row := &st.Inventory[i]
		remaining := need[row.ProductID]
		if remaining == 0 {
			continue
		}
		take := remaining
		if row.Stock < take {
			take = row.Stock
		}
		row.Stock -= take
		need[row.ProductID] = remaining - take
	}
}

func (s *SaleService) publish(ctx context.Context, sale model.Sale) {
	if s.events == nil {
		return
	}
	ev := queue.FrontDeskEvent{
		Type:       queue.EventSaleRecorded,
		OccurredAt: s.Now().UTC().Format(time.RFC3339),
		GuestName:  sale.GuestName,
		SaleNumber: sale.Number,
		Total:      sale.Total,
	}
	if err := s.events.Publish(ctx, ev); err != nil {
		log.Printf("sales: publish %s failed: %v", queue.EventSaleRecorded, err)
	}
}
