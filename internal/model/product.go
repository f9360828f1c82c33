package model

// ProductStatus marks whether a product can currently be sold.
type ProductStatus string

const (
	ProductActive   ProductStatus = "active"
	ProductInactive ProductStatus = "inactive"
)

// ProductCategory groups point-of-sale products.  Renaming a category
// rewrites the CategoryName of every product referencing it.
type ProductCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Product is an item sold at the point of sale (minibar, restaurant,
// shop).  When TrackStock is set, selling the product deducts stock
// from the inventory rows that reference it.
//
// Fields:
//  ID           – unique identifier.
//  Name         – display name.
//  SKU          – stock-keeping unit code.
//  CategoryID   – owning category.
//  CategoryName – denormalized category display name.
//  Price        – sale price per unit.
//  Cost         – acquisition cost per unit.
//  Status       – active/inactive.
//  TrackStock   – whether sales deduct inventory.
type Product struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	SKU          string        `json:"sku"`
	CategoryID   string        `json:"category_id"`
	CategoryName string        `json:"category_name"`
	Price        float64       `json:"price"`
	Cost         float64       `json:"cost"`
	Status       ProductStatus `json:"status"`
	TrackStock   bool          `json:"track_stock"`
}
