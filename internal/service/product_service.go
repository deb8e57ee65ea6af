package service

import (
	"context"
	"fmt"

	"facturation/internal/billing"
	"facturation/internal/model"
	"facturation/internal/repository"

	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Code      string `json:"code" binding:"required"`
	Label     string `json:"label" binding:"required"`
	UnitPrice string `json:"unit_price" binding:"required"`
}

type ProductResponse struct {
	Code      string `json:"code"`
	Label     string `json:"label"`
	UnitPrice string `json:"unit_price"`
}

type ProductService interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error)
	GetProduct(ctx context.Context, code string) (*ProductResponse, error)
	ListProducts(ctx context.Context, page, limit int, search string) ([]ProductResponse, int64, error)
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if len(req.Code) != model.ProductCodeLength {
		return nil, &billing.ValidationError{Reason: fmt.Sprintf("product code must contain exactly %d characters", model.ProductCodeLength)}
	}

	price, err := decimal.NewFromString(req.UnitPrice)
	if err != nil {
		return nil, &billing.ValidationError{Reason: fmt.Sprintf("unit price %q is not a number", req.UnitPrice)}
	}
	if !price.IsPositive() {
		return nil, &billing.ValidationError{Reason: "unit price must be positive"}
	}

	exists, err := s.repo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, fmt.Errorf("checking product code: %w", err)
	}
	if exists {
		return nil, &billing.ValidationError{Reason: fmt.Sprintf("product code %q already exists", req.Code)}
	}

	product := &model.Product{
		Code:      req.Code,
		Label:     req.Label,
		UnitPrice: price,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("saving product: %w", err)
	}

	return toProductResponse(product), nil
}

func (s *productService) GetProduct(ctx context.Context, code string) (*ProductResponse, error) {
	product, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("product lookup: %w", err)
	}
	if product == nil {
		return nil, &billing.NotFoundError{Entity: "product", Code: code}
	}
	return toProductResponse(product), nil
}

func (s *productService) ListProducts(ctx context.Context, page, limit int, search string) ([]ProductResponse, int64, error) {
	products, total, err := s.repo.List(ctx, page, limit, search)
	if err != nil {
		return nil, 0, fmt.Errorf("listing products: %w", err)
	}

	result := make([]ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, *toProductResponse(&products[i]))
	}
	return result, total, nil
}

func toProductResponse(product *model.Product) *ProductResponse {
	return &ProductResponse{
		Code:      product.Code,
		Label:     product.Label,
		UnitPrice: product.UnitPrice.StringFixed(2),
	}
}
