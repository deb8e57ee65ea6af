package service

import (
	"context"
	"testing"

	"facturation/internal/billing"
	"facturation/internal/repository"
)

func TestCreateClientValidatesIFU(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewClientService(repository.NewClientRepository(db))

	_, err := svc.CreateClient(context.Background(), CreateClientRequest{
		Code: "CLI010", Name: "Test", Contact: "test@test.com", IFU: "123",
	})
	if !billing.IsValidation(err) {
		t.Fatalf("expected validation error for short IFU, got %v", err)
	}

	created, err := svc.CreateClient(context.Background(), CreateClientRequest{
		Code: "CLI010", Name: "Test", Contact: "test@test.com", IFU: "1234567890123",
	})
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	if created.Code != "CLI010" {
		t.Fatalf("unexpected client: %+v", created)
	}

	// Duplicate codes are rejected.
	_, err = svc.CreateClient(context.Background(), CreateClientRequest{
		Code: "CLI010", Name: "Other", Contact: "other@test.com", IFU: "1234567890123",
	})
	if !billing.IsValidation(err) {
		t.Fatalf("expected validation error for duplicate code, got %v", err)
	}
}

func TestGetClientNotFound(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewClientService(repository.NewClientRepository(db))

	_, err := svc.GetClient(context.Background(), "CLI404")
	if !billing.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestCreateProductValidation(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewProductService(repository.NewProductRepository(db))

	cases := []struct {
		name string
		req  CreateProductRequest
	}{
		{"short code", CreateProductRequest{Code: "P1", Label: "X", UnitPrice: "10"}},
		{"bad price", CreateProductRequest{Code: "PROD20", Label: "X", UnitPrice: "abc"}},
		{"negative price", CreateProductRequest{Code: "PROD20", Label: "X", UnitPrice: "-5"}},
	}
	for _, tc := range cases {
		if _, err := svc.CreateProduct(context.Background(), tc.req); !billing.IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}

	created, err := svc.CreateProduct(context.Background(), CreateProductRequest{
		Code: "PROD20", Label: "Station d'accueil", UnitPrice: "45.50",
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	if created.UnitPrice != "45.50" {
		t.Fatalf("expected price 45.50 got %s", created.UnitPrice)
	}
}
