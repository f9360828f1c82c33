package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-pms/internal/service"
)

// CatalogHandler exposes product, category, location and inventory
// administration.
type CatalogHandler struct {
	Catalog *service.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler and panics if the
// service is nil.
func NewCatalogHandler(cat *service.CatalogService) *CatalogHandler {
	if cat == nil {
		panic("nil service passed to NewCatalogHandler")
	}
	return &CatalogHandler{Catalog: cat}
}

// ListProducts handles GET /v1/products.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	items := h.Catalog.ListProducts()
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// CreateProduct handles POST /v1/products.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var draft service.ProductDraft
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	p, err := h.Catalog.AddProduct(draft)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": p})
}

// UpdateProduct handles PATCH /v1/products/:id.  Renames and SKU
// changes cascade to the product's inventory rows.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	var patch service.ProductPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	p, err := h.Catalog.UpdateProduct(c.Param("id"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"item": p})
}

// ListCategories handles GET /v1/categories.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	items := h.Catalog.ListCategories()
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// CreateCategory handles POST /v1/categories.
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var draft service.CategoryDraft
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	cat, err := h.Catalog.AddCategory(draft)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": cat})
}

// UpdateCategory handles PATCH /v1/categories/:id.
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	var patch service.CategoryPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	cat, err := h.Catalog.UpdateCategory(c.Param("id"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"item": cat})
}

// ListLocations handles GET /v1/locations.
func (h *CatalogHandler) ListLocations(c echo.Context) error {
	items := h.Catalog.ListLocations()
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// CreateLocation handles POST /v1/locations.
func (h *CatalogHandler) CreateLocation(c echo.Context) error {
	var draft service.LocationDraft
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	loc, err := h.Catalog.AddLocation(draft)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": loc})
}

// UpdateLocation handles PATCH /v1/locations/:id.
func (h *CatalogHandler) UpdateLocation(c echo.Context) error {
	var patch service.LocationPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	loc, err := h.Catalog.UpdateLocation(c.Param("id"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"item": loc})
}

// ListInventory handles GET /v1/inventory; rows come back in
// deduction order.
func (h *CatalogHandler) ListInventory(c echo.Context) error {
	items := h.Catalog.ListInventory()
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// CreateInventoryItem handles POST /v1/inventory.
func (h *CatalogHandler) CreateInventoryItem(c echo.Context) error {
	var draft service.InventoryItemDraft
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	item, err := h.Catalog.AddInventoryItem(draft)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": item})
}

// UpdateInventoryItem handles PATCH /v1/inventory/:id, the manual
// stock and threshold override.
func (h *CatalogHandler) UpdateInventoryItem(c echo.Context) error {
	var patch service.InventoryItemPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	item, err := h.Catalog.UpdateInventoryItem(c.Param("id"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"item": item})
}
