package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-store/internal/domain"
)

type CatalogHandler struct {
	catalogSvs CatalogServicer
}

func NewCatalogHandler(catalogSvs CatalogServicer) *CatalogHandler {
	return &CatalogHandler{catalogSvs: catalogSvs}
}

type VendorResponse struct {
	VendorName        string `json:"vendorName"`
	VendorDescription string `json:"vendorDescription"`
}

type VendorItemResponse struct {
	ItemID          int64   `json:"itemId"`
	ItemName        string  `json:"itemName"`
	ItemDescription string  `json:"itemDescription"`
	Price           float64 `json:"price"`
	ImgLink         string  `json:"imgLink"`
}

// Vendors GET RouteGroup + VendorsRoute.
func (h *CatalogHandler) Vendors(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	vendors, err := h.catalogSvs.ListVendors(reqCtx)
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	response := make([]VendorResponse, 0, len(vendors))
	for _, vendor := range vendors {
		response = append(response, VendorResponse{
			VendorName:        vendor.Name,
			VendorDescription: vendor.Description,
		})
	}
	c.JSON(http.StatusOK, response)
}

// Items GET RouteGroup + VendorItemsRoute.
func (h *CatalogHandler) Items(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	items, err := h.catalogSvs.VendorItems(reqCtx, c.Param("name"))
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	c.JSON(http.StatusOK, convertVendorItems(items))
}

func convertVendorItems(items []domain.VendorItem) []VendorItemResponse {
	response := make([]VendorItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, VendorItemResponse{
			ItemID:          item.ID,
			ItemName:        item.Name,
			ItemDescription: item.Description,
			Price:           item.Price.InexactFloat64(),
			ImgLink:         item.ImgLink,
		})
	}
	return response
}
