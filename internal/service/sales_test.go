package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-pms/internal/queue"
	"github.com/iliyamo/hotel-pms/internal/service"
)

func TestSaleDeductsFromFirstLocationFirst(t *testing.T) {
	// Water: 6 units in storage (listed first), 0 on the trolley.
	st := newTestStore()
	svc := service.NewSaleService(st, nil, 10)

	_, err := svc.Add(context.Background(), service.SaleDraft{
		PaymentMethod: "cash",
		Items: []service.SaleItemDraft{
			{ProductID: "prod-water", Description: "Mineral water", Quantity: 4, UnitPrice: 2.50},
		},
	})
	require.NoError(t, err)

	snap := st.Snapshot()
	assert.Equal(t, 2, inventoryByID(snap, "inv-water-a").Stock)
	assert.Equal(t, 0, inventoryByID(snap, "inv-water-b").Stock)
}

func TestSaleSpillsToNextLocation(t *testing.T) {
	// Nuts: 2 units in storage (listed first), 10 on the trolley.
	st := newTestStore()
	svc := service.NewSaleService(st, nil, 10)

	_, err := svc.Add(context.Background(), service.SaleDraft{
		PaymentMethod: "cash",
		Items: []service.SaleItemDraft{
			{ProductID: "prod-snack", Description: "Mixed nuts", Quantity: 5, UnitPrice: 4},
		},
	})
	require.NoError(t, err)

	snap := st.Snapshot()
	assert.Equal(t, 0, inventoryByID(snap, "inv-snack-a").Stock)
	assert.Equal(t, 7, inventoryByID(snap, "inv-snack-b").Stock)
}

func TestOversellStopsAtZero(t *testing.T) {
	// Water has 6 units across all locations; selling 9 drains them
	// all and silently swallows the remainder.
	st := newTestStore()
	svc := service.NewSaleService(st, nil, 10)

	_, err := svc.Add(context.Background(), service.SaleDraft{
		PaymentMethod: "card",
		Items: []service.SaleItemDraft{
			{ProductID: "prod-water", Description: "Mineral water", Quantity: 9, UnitPrice: 2.50},
		},
	})
	require.NoError(t, err)

	snap := st.Snapshot()
	assert.Equal(t, 0, inventoryByID(snap, "inv-water-a").Stock)
	assert.Equal(t, 0, inventoryByID(snap, "inv-water-b").Stock)
}

func TestUntrackedProductDeductsNothing(t *testing.T) {
	st := newTestStore()
	svc := service.NewSaleService(st, nil, 10)

	before := st.Snapshot().Inventory
	_, err := svc.Add(context.Background(), service.SaleDraft{
		PaymentMethod: "cash",
		Items: []service.SaleItemDraft{
			{ProductID: "prod-breakfast", Description: "Breakfast buffet", Quantity: 2, UnitPrice: 14},
			{Description: "Ad-hoc charge", Quantity: 1, UnitPrice: 5},
			{ProductID: "prod-unknown", Description: "Stale id", Quantity: 3, UnitPrice: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, before, st.Snapshot().Inventory)
}

func TestSaleTotalsUseHotelTaxRate(t *testing.T) {
	st := newTestStore() // hotel tax rate 10%
	pub := &capturingPublisher{}
	svc := service.NewSaleService(st, pub, 21)

	sale, err := svc.Add(context.Background(), service.SaleDraft{
		GuestID:       "guest-1",
		PaymentMethod: "room",
		Items: []service.SaleItemDraft{
			{ProductID: "prod-water", Description: "Mineral water", Quantity: 3, UnitPrice: 2.50},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "POS-0001", sale.Number)
	assert.Equal(t, "Elena Ruiz", sale.GuestName)
	assert.InDelta(t, 7.50, sale.Subtotal, 0.001)
	assert.InDelta(t, 0.75, sale.Tax, 0.001)
	assert.InDelta(t, 8.25, sale.Total, 0.001)

	require.Len(t, pub.events, 1)
	assert.Equal(t, queue.EventSaleRecorded, pub.events[0].Type)
	assert.Equal(t, "POS-0001", pub.events[0].SaleNumber)
}

func TestSalesListMostRecentFirst(t *testing.T) {
	st := newTestStore()
	svc := service.NewSaleService(st, nil, 10)

	_, err := svc.Add(context.Background(), service.SaleDraft{
		PaymentMethod: "cash",
		Items:         []service.SaleItemDraft{{Description: "First", Quantity: 1, UnitPrice: 1}},
	})
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), service.SaleDraft{
		PaymentMethod: "cash",
		Items:         []service.SaleItemDraft{{Description: "Second", Quantity: 1, UnitPrice: 1}},
	})
	require.NoError(t, err)

	sales := svc.List()
	require.Len(t, sales, 2)
	assert.Equal(t, "POS-0002", sales[0].Number)
	assert.Equal(t, "POS-0001", sales[1].Number)
}

func TestSaleRejectsBadInput(t *testing.T) {
	st := newTestStore()
	svc := service.NewSaleService(st, nil, 10)

	_, err := svc.Add(context.Background(), service.SaleDraft{PaymentMethod: "cash"})
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = svc.Add(context.Background(), service.SaleDraft{
		PaymentMethod: "cash",
		Items:         []service.SaleItemDraft{{Description: "Bad", Quantity: 0, UnitPrice: 1}},
	})
	assert.ErrorIs(t, err, service.ErrValidation)

	assert.Empty(t, st.Snapshot().Sales)
}
