package service

import (
	"github.com/iliyamo/hotel-pms/internal/model"
	"github.com/iliyamo/hotel-pms/internal/store"
)

// CatalogService manages products, categories, inventory locations and
// stock rows.  It owns the rename propagations that keep denormalized
// display fields in sync: category name to products, product name and
// SKU to inventory rows, location name to inventory rows.  Every
// propagation is a single pass over the dependent collection, one hop
// deep, touching only the named field.
type CatalogService struct {
	store *store.Store
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(st *store.Store) *CatalogService {
	if st == nil {
		panic("nil store passed to NewCatalogService")
	}
	return &CatalogService{store: st}
}

// CategoryDraft is the admin form for a new product category.
type CategoryDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryPatch is a partial category update.
type CategoryPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ProductDraft is the admin form for a new product.
type ProductDraft struct {
	Name       string  `json:"name"`
	SKU        string  `json:"sku"`
	CategoryID string  `json:"category_id"`
	Price      float64 `json:"price"`
	Cost       float64 `json:"cost"`
	TrackStock bool    `json:"track_stock"`
}

// ProductPatch is a partial product update.
type ProductPatch struct {
	Name       *string              `json:"name"`
	SKU        *string              `json:"sku"`
	CategoryID *string              `json:"category_id"`
	Price      *float64             `json:"price"`
	Cost       *float64             `json:"cost"`
	Status     *model.ProductStatus `json:"status"`
	TrackStock *bool                `json:"track_stock"`
}

// LocationDraft is the admin form for a new inventory location.
type LocationDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LocationPatch is a partial location update.
type LocationPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// InventoryItemDraft creates a stock row for a product at a location.
type InventoryItemDraft struct {
	ProductID  string `json:"product_id"`
	LocationID string `json:"location_id"`
	Stock      int    `json:"stock"`
	MinStock   int    `json:"min_stock"`
}

// InventoryItemPatch is a manual stock or threshold override.
type InventoryItemPatch struct {
	Stock    *int `json:"stock"`
	MinStock *int `json:"min_stock"`
}

// AddCategory creates a product category.
func (s *CatalogService) AddCategory(draft CategoryDraft) (model.ProductCategory, error) {
	var created model.ProductCategory
	err := s.store.Update(func(st *store.State) error {
		cat := model.ProductCategory{ID: store.NewID(), Name: draft.Name, Description: draft.Description}
		st.Categories = append(st.Categories, cat)
		created = cat
		return nil
	})
	return created, err
}

// UpdateCategory applies a partial update.  A rename rewrites the
// category name on every product referencing the category.
func (s *CatalogService) UpdateCategory(id string, patch CategoryPatch) (model.ProductCategory, error) {
	var updated model.ProductCategory
	err := s.store.Update(func(st *store.State) error {
		cat := st.CategoryByID(id)
		if cat == nil {
			return store.ErrNotFound
		}
		if patch.Name != nil && *patch.Name != cat.Name {
			cat.Name = *patch.Name
			for i := range st.Products {
				if st.Products[i].CategoryID == cat.ID {
					st.Products[i].CategoryName = cat.Name
				}
			}
		}
		if patch.Description != nil {
			cat.Description = *patch.Description
		}
		updated = *cat
		return nil
	})
	return updated, err
}

// AddProduct creates an active product.  The category display name is
// resolved at creation time.
func (s *CatalogService) AddProduct(draft ProductDraft) (model.Product, error) {
	var created model.Product
	err := s.store.Update(func(st *store.State) error {
		p := model.Product{
			ID:         store.NewID(),
			Name:       draft.Name,
			SKU:        draft.SKU,
			CategoryID: draft.CategoryID,
			Price:      draft.Price,
			Cost:       draft.Cost,
			Status:     model.ProductActive,
			TrackStock: draft.TrackStock,
		}
		if cat := st.CategoryByID(draft.CategoryID); cat != nil {
			p.CategoryName = cat.Name
		}
		st.Products = append(st.Products, p)
		created = p
		return nil
	})
	return created, err
}

// UpdateProduct applies a partial update.  Name and SKU changes are
// carried to every inventory row referencing the product; a category
// reassignment refreshes the denormalized category name.
func (s *CatalogService) UpdateProduct(id string, patch ProductPatch) (model.Product, error) {
	var updated model.Product
	err := s.store.Update(func(st *store.State) error {
		p := st.ProductByID(id)
		if p == nil {
			return store.ErrNotFound
		}
		if patch.Name != nil && *patch.Name != p.Name {
			p.Name = *patch.Name
			for i := range st.Inventory {
				if st.Inventory[i].ProductID == p.ID {
					st.Inventory[i].ProductName = p.Name
				}
			}
		}
		if patch.SKU != nil && *patch.SKU != p.SKU {
			p.SKU = *patch.SKU
			for i := range st.Inventory {
				if st.Inventory[i].ProductID == p.ID {
					st.Inventory[i].SKU = p.SKU
				}
			}
		}
		if patch.CategoryID != nil {
			p.CategoryID = *patch.CategoryID
			p.CategoryName = ""
			if cat := st.CategoryByID(p.CategoryID); cat != nil {
				p.CategoryName = cat.Name
			}
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Cost != nil {
			p.Cost = *patch.Cost
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.TrackStock != nil {
			p.TrackStock = *patch.TrackStock
		}
		updated = *p
		return nil
	})
	return updated, err
}

// AddLocation creates an inventory location.
func (s *CatalogService) AddLocation(draft LocationDraft) (model.InventoryLocation, error) {
	var created model.InventoryLocation
	err := s.store.Update(func(st *store.State) error {
		loc := model.InventoryLocation{ID: store.NewID(), Name: draft.Name, Description: draft.Description}
		st.Locations = append(st.Locations, loc)
		created = loc
		return nil
	})
	return created, err
}

// UpdateLocation applies a partial update.  A rename rewrites the
// location name on every inventory row referencing the location.
func (s *CatalogService) UpdateLocation(id string, patch LocationPatch) (model.InventoryLocation, error) {
	var updated model.InventoryLocation
	err := s.store.Update(func(st *store.State) error {
		loc := st.LocationByID(id)
		if loc == nil {
			return store.ErrNotFound
		}
		if patch.Name != nil && *patch.Name != loc.Name {
			loc.Name = *patch.Name
			for i := range st.Inventory {
				if st.Inventory[i].LocationID == loc.ID {
					st.Inventory[i].LocationName = loc.Name
				}
			}
		}
		if patch.Description != nil {
			loc.Description = *patch.Description
		}
		updated = *loc
		return nil
	})
	return updated, err
}

// AddInventoryItem creates a stock row for a product at a location.
// Both referenced entities must exist; the row is appended, which puts
// it last in the deduction order.
func (s *CatalogService) AddInventoryItem(draft InventoryItemDraft) (model.InventoryItem, error) {
	var created model.InventoryItem
	err := s.store.Update(func(st *store.State) error {
		p := st.ProductByID(draft.ProductID)
		loc := st.LocationByID(draft.LocationID)
		if p == nil || loc == nil {
			return store.ErrNotFound
		}
		item := model.InventoryItem{
			ID:           store.NewID(),
			ProductID:    p.ID,
			ProductName:  p.Name,
			SKU:          p.SKU,
			LocationID:   loc.ID,
			LocationName: loc.Name,
			Stock:        draft.Stock,
			MinStock:     draft.MinStock,
		}
		if item.Stock < 0 {
			item.Stock = 0
		}
		st.Inventory = append(st.Inventory, item)
		created = item
		return nil
	})
	return created, err
}

// UpdateInventoryItem applies a manual stock or threshold override.
// Negative stock is clamped to zero rather than rejected.
func (s *CatalogService) UpdateInventoryItem(id string, patch InventoryItemPatch) (model.InventoryItem, error) {
	var updated model.InventoryItem
	err := s.store.Update(func(st *store.State) error {
		item := st.InventoryItemByID(id)
		if item == nil {
			return store.ErrNotFound
		}
		if patch.Stock != nil {
			item.Stock = *patch.Stock
			if item.Stock < 0 {
				item.Stock = 0
			}
		}
		if patch.MinStock != nil {
			item.MinStock = *patch.MinStock
		}
		updated = *item
		return nil
	})
	return updated, err
}

// ListProducts returns every product in insertion order.
func (s *CatalogService) ListProducts() []model.Product {
	return s.store.Snapshot().Products
}

// ListCategories returns every category in insertion order.
func (s *CatalogService) ListCategories() []model.ProductCategory {
	return s.store.Snapshot().Categories
}

// ListLocations returns every location in insertion order.
func (s *CatalogService) ListLocations() []model.InventoryLocation {
	return s.store.Snapshot().Locations
}

// ListInventory returns every stock row in deduction order.
func (s *CatalogService) ListInventory() []model.InventoryItem {
	return s.store.Snapshot().Inventory
}
