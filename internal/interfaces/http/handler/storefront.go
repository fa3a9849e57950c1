package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sahilrajputt12/catalog-extensions/internal/application/storefront"
)

const maxBatchCodes = 200

// StorefrontHandler serves the guest-accessible storefront API: the
// filter sidebar facets, the filtered product listing, and the batch
// badge/offer/discount lookups the product grid makes.
type StorefrontHandler struct {
	BaseHandler
	facets    *storefront.FacetService
	filter    *storefront.FilterService
	badges    *storefront.BadgeService
	offers    *storefront.OfferService
	discounts *storefront.DiscountService
	variants  *storefront.VariantService
}

// NewStorefrontHandler creates a new StorefrontHandler
func NewStorefrontHandler(
	facets *storefront.FacetService,
	filter *storefront.FilterService,
	badges *storefront.BadgeService,
	offers *storefront.OfferService,
	discounts *storefront.DiscountService,
	variants *storefront.VariantService,
) *StorefrontHandler {
	return &StorefrontHandler{
		facets:    facets,
		filter:    filter,
		badges:    badges,
		offers:    offers,
		discounts: discounts,
		variants:  variants,
	}
}

// GetFacets returns the filter sidebar counts
func (h *StorefrontHandler) GetFacets(c *gin.Context) {
	resp, err := h.facets.GetFacets(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// FilterProducts returns the filtered, paginated product listing
func (h *StorefrontHandler) FilterProducts(c *gin.Context) {
	var req storefront.ProductFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	resp, err := h.filter.FilterProducts(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ItemCodesRequest is the batch lookup payload shared by the badge,
// offer, and discount endpoints
type ItemCodesRequest struct {
	ItemCodes []string `json:"item_codes" binding:"required,min=1,max=200"`
}

// bindItemCodes reads the batch codes from the JSON body on POST, or from
// a repeated/comma-separated item_codes query parameter on GET
func (h *StorefrontHandler) bindItemCodes(c *gin.Context) ([]string, bool) {
	if c.Request.Method == http.MethodGet {
		var codes []string
		for _, raw := range c.QueryArray("item_codes") {
			for _, part := range strings.Split(raw, ",") {
				if part = strings.TrimSpace(part); part != "" {
					codes = append(codes, part)
				}
			}
		}
		if len(codes) == 0 || len(codes) > maxBatchCodes {
			h.BadRequest(c, "item_codes must contain between 1 and 200 codes")
			return nil, false
		}
		return codes, true
	}

	var req ItemCodesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return nil, false
	}
	return req.ItemCodes, true
}

// GetBadges returns the active badges for a batch of items
func (h *StorefrontHandler) GetBadges(c *gin.Context) {
	codes, ok := h.bindItemCodes(c)
	if !ok {
		return
	}

	resp, err := h.badges.GetItemBadges(c.Request.Context(), codes)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetOffers returns the website offers for a batch of items
func (h *StorefrontHandler) GetOffers(c *gin.Context) {
	codes, ok := h.bindItemCodes(c)
	if !ok {
		return
	}

	resp, err := h.offers.GetItemOffers(c.Request.Context(), codes)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetDiscounts returns the consumer discounts for a batch of items
func (h *StorefrontHandler) GetDiscounts(c *gin.Context) {
	codes, ok := h.bindItemCodes(c)
	if !ok {
		return
	}

	resp, err := h.discounts.GetConsumerDiscounts(c.Request.Context(), codes)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetTemplatePriceRange returns the min/max selling rate across a
// template's variants
func (h *StorefrontHandler) GetTemplatePriceRange(c *gin.Context) {
	resp, err := h.variants.TemplatePriceRange(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetTemplateDiscountRange returns the min/max consumer discount across
// a template's variants
func (h *StorefrontHandler) GetTemplateDiscountRange(c *gin.Context) {
	resp, err := h.variants.TemplateDiscountRange(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetTemplateVariants returns the variants of a template with their
// attributes, prices, and discounts
func (h *StorefrontHandler) GetTemplateVariants(c *gin.Context) {
	resp, err := h.variants.TemplateVariants(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RegisterRoutes registers all storefront routes
func (h *StorefrontHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sf := rg.Group("/storefront")
	{
		sf.GET("/facets", h.GetFacets)
		sf.POST("/products", h.FilterProducts)
		sf.GET("/badges", h.GetBadges)
		sf.POST("/badges", h.GetBadges)
		sf.GET("/offers", h.GetOffers)
		sf.POST("/offers", h.GetOffers)
		sf.GET("/discounts", h.GetDiscounts)
		sf.POST("/discounts", h.GetDiscounts)
		sf.GET("/templates/:code/price-range", h.GetTemplatePriceRange)
		sf.GET("/templates/:code/discount-range", h.GetTemplateDiscountRange)
		sf.GET("/templates/:code/variants", h.GetTemplateVariants)
	}
}
