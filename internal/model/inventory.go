package model

// InventoryLocation is a place where stock is kept (central storage,
// minibar floor 2, pool bar).  Renaming a location rewrites the
// LocationName of every inventory row referencing it.
type InventoryLocation struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// InventoryItem is the stock of one product at one location.  A product
// tracked in several locations has one row per location; sales deplete
// those rows in the order they appear in the inventory collection,
// which is their creation order.  Stock never goes below zero.
//
// Fields:
//  ID           – unique identifier.
//  ProductID    – product being stocked.
//  ProductName  – denormalized product display name.
//  SKU          – denormalized product SKU.
//  LocationID   – location holding the stock.
//  LocationName – denormalized location display name.
//  Stock        – units on hand, never negative.
//  MinStock     – reorder threshold used by the dashboard alerts.
type InventoryItem struct {
	ID           string `json:"id"`
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	SKU          string `json:"sku"`
	LocationID   string `json:"location_id"`
	LocationName string `json:"location_name"`
	Stock        int    `json:"stock"`
	MinStock     int    `json:"min_stock"`
}
