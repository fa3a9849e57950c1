package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/sahilrajputt12/catalog-extensions/internal/application/catalog"
	"github.com/sahilrajputt12/catalog-extensions/internal/application/storefront"
)

// CatalogAdminHandler serves the authenticated admin surface: item
// maintenance, manual badges, website item images, catalog price ranges,
// and the on-demand badge recompute.
type CatalogAdminHandler struct {
	BaseHandler
	items        *catalogapp.ItemService
	priceRanges  *catalogapp.PriceRangeService
	websiteItems *storefront.WebsiteItemService
	badges       *storefront.BadgeService
}

// NewCatalogAdminHandler creates a new CatalogAdminHandler
func NewCatalogAdminHandler(
	items *catalogapp.ItemService,
	priceRanges *catalogapp.PriceRangeService,
	websiteItems *storefront.WebsiteItemService,
	badges *storefront.BadgeService,
) *CatalogAdminHandler {
	return &CatalogAdminHandler{
		items:        items,
		priceRanges:  priceRanges,
		websiteItems: websiteItems,
		badges:       badges,
	}
}

// CreateItem creates a new catalog item
func (h *CatalogAdminHandler) CreateItem(c *gin.Context) {
	var req catalogapp.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	resp, err := h.items.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetItem returns one item by code
func (h *CatalogAdminHandler) GetItem(c *gin.Context) {
	resp, err := h.items.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateItem updates an item. Publication and discount changes fan out
// to the website item through the event bus.
func (h *CatalogAdminHandler) UpdateItem(c *gin.Context) {
	var req catalogapp.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	resp, err := h.items.Update(c.Request.Context(), c.Param("code"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ManualBadgeRequest is the payload for pinning a manual badge on an item
type ManualBadgeRequest struct {
	BadgeType string     `json:"badge_type" binding:"required,max=140"`
	ValidFrom *time.Time `json:"valid_from"`
	ValidUpto *time.Time `json:"valid_upto"`
}

// AddManualBadge pins a manual badge on an item. Manual badges survive
// the nightly recompute.
func (h *CatalogAdminHandler) AddManualBadge(c *gin.Context) {
	var req ManualBadgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	resp, err := h.items.AddManualBadge(c.Request.Context(), c.Param("code"), req.BadgeType, req.ValidFrom, req.ValidUpto)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetImageRequest is the payload for setting a website item image
type SetImageRequest struct {
	Image string `json:"image" binding:"max=500"`
}

// SetImageResponse carries the optional validation warning
type SetImageResponse struct {
	Warning string `json:"warning,omitempty"`
}

// SetWebsiteItemImage sets the website image for a published item. An
// unresolvable stored file is cleared and reported as a warning, not an
// error.
func (h *CatalogAdminHandler) SetWebsiteItemImage(c *gin.Context) {
	var req SetImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	warning, err := h.websiteItems.SetImage(c.Request.Context(), c.Param("code"), req.Image)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, SetImageResponse{Warning: warning})
}

// UnpublishItem removes an item's website listing
func (h *CatalogAdminHandler) UnpublishItem(c *gin.Context) {
	if err := h.websiteItems.Unpublish(c.Request.Context(), c.Param("code")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RecomputeBadges runs the automatic badge recompute on demand and
// returns the run stats
func (h *CatalogAdminHandler) RecomputeBadges(c *gin.Context) {
	stats, err := h.badges.Recompute(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}

// ListPriceRanges returns all configured price ranges, enabled or not
func (h *CatalogAdminHandler) ListPriceRanges(c *gin.Context) {
	resp, err := h.priceRanges.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// CreatePriceRange creates a price range bucket for the facet sidebar
func (h *CatalogAdminHandler) CreatePriceRange(c *gin.Context) {
	var req catalogapp.PriceRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	resp, err := h.priceRanges.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// UpdatePriceRange updates a price range bucket
func (h *CatalogAdminHandler) UpdatePriceRange(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid price range ID")
		return
	}

	var req catalogapp.PriceRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	resp, err := h.priceRanges.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeletePriceRange removes a price range bucket
func (h *CatalogAdminHandler) DeletePriceRange(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid price range ID")
		return
	}

	if err := h.priceRanges.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers all admin catalog routes
func (h *CatalogAdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	{
		items := admin.Group("/items")
		{
			items.POST("", h.CreateItem)
			items.GET("/:code", h.GetItem)
			items.PUT("/:code", h.UpdateItem)
			items.POST("/:code/badges", h.AddManualBadge)
			items.PUT("/:code/image", h.SetWebsiteItemImage)
			items.DELETE("/:code/publication", h.UnpublishItem)
		}

		ranges := admin.Group("/price-ranges")
		{
			ranges.GET("", h.ListPriceRanges)
			ranges.POST("", h.CreatePriceRange)
			ranges.PUT("/:id", h.UpdatePriceRange)
			ranges.DELETE("/:id", h.DeletePriceRange)
		}

		admin.POST("/badges/recompute", h.RecomputeBadges)
	}
}
