package handler

import (
	"net/http"

	"facturation/internal/middleware"
	"facturation/internal/model"
	"facturation/internal/service"
	"facturation/pkg/pagination"
	"facturation/pkg/response"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/api/products")
	{
		products.POST("", middleware.RequireRole(model.RoleAdmin), h.CreateProduct)
		products.GET("", middleware.RequireRole(model.RoleAdmin, model.RoleAgent), h.ListProducts)
		products.GET("/:code", middleware.RequireRole(model.RoleAdmin, model.RoleAgent), h.GetProduct)
	}
}

// CreateProduct registers a new product
// @Summary      Create product
// @Description  Registers a new product with a unique 6-character code and a positive unit price
// @Tags         products
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateProductRequest  true  "Create Product Payload"
// @Success      201      {object}  response.Response{data=service.ProductResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, product))
}

// ListProducts returns a paginated list of products
// @Summary      List products
// @Description  Retrieves a paginated list of products, optionally filtered by a search term
// @Tags         products
// @Security     BearerAuth
// @Produce      json
// @Param        search  query     string  false  "Search by code or label"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Number of items per page (default 20)"
// @Success      200     {object}  response.Response{data=object}
// @Failure      500     {object}  response.Response
// @Router       /api/products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	params := pagination.Parse(c)

	products, total, err := h.productService.ListProducts(c.Request.Context(), params.Page, params.Limit, params.Search)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, "products", products, total, params.Page, params.Limit))
}

// GetProduct returns a single product by code
// @Summary      Get product
// @Description  Fetch a single product by its code
// @Tags         products
// @Security     BearerAuth
// @Produce      json
// @Param        code  path      string  true  "Product code"
// @Success      200   {object}  response.Response{data=service.ProductResponse}
// @Failure      404   {object}  response.Response
// @Router       /api/products/{code} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, product))
}
