package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freshmart/grocery-api/internal/dto"
	"github.com/freshmart/grocery-api/internal/service"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		respondErr(c, http.StatusInternalServerError, "Failed to retrieve categories: "+err.Error())
		return
	}
	respondOK(c, "Categories retrieved successfully", categories)
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "Failed to create category: "+err.Error())
		return
	}

	category, err := h.catalogService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		respondErr(c, http.StatusInternalServerError, "Failed to create category: "+err.Error())
		return
	}

	respondOK(c, "Category created successfully", category)
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var req dto.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "Failed to retrieve products: "+err.Error())
		return
	}

	categoryID := uuid.Nil
	if req.CategoryID != "" {
		id, err := uuid.Parse(req.CategoryID)
		if err != nil {
			respondErr(c, http.StatusBadRequest, "Invalid category ID")
			return
		}
		categoryID = id
	}

	products, err := h.catalogService.ListProducts(c.Request.Context(), categoryID, req.Search)
	if err != nil {
		respondErr(c, http.StatusInternalServerError, "Failed to retrieve products: "+err.Error())
		return
	}

	respondOK(c, "Products retrieved successfully", products)
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "Failed to create product: "+err.Error())
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrNegativePrice) {
			respondErr(c, http.StatusBadRequest, "Failed to create product: "+err.Error())
			return
		}
		respondErr(c, http.StatusInternalServerError, "Failed to create product: "+err.Error())
		return
	}

	respondOK(c, "Product created successfully", product)
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondErr(c, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.catalogService.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondErr(c, http.StatusNotFound, "Product not found")
			return
		}
		respondErr(c, http.StatusInternalServerError, "Failed to delete product: "+err.Error())
		return
	}

	respondOK(c, "Product deleted successfully", nil)
}
