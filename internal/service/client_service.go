package service

import (
	"context"
	"fmt"

	"facturation/internal/billing"
	"facturation/internal/model"
	"facturation/internal/repository"
)

type CreateClientRequest struct {
	Code    string `json:"code" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact" binding:"required"`
	IFU     string `json:"ifu" binding:"required"`
}

type ClientResponse struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	IFU     string `json:"ifu"`
}

type ClientService interface {
	CreateClient(ctx context.Context, req CreateClientRequest) (*ClientResponse, error)
	GetClient(ctx context.Context, code string) (*ClientResponse, error)
	ListClients(ctx context.Context, page, limit int, search string) ([]ClientResponse, int64, error)
}

type clientService struct {
	repo repository.ClientRepository
}

func NewClientService(repo repository.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

func (s *clientService) CreateClient(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	if len(req.IFU) != model.IFULength {
		return nil, &billing.ValidationError{Reason: fmt.Sprintf("IFU must contain exactly %d characters", model.IFULength)}
	}

	exists, err := s.repo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, fmt.Errorf("checking client code: %w", err)
	}
	if exists {
		return nil, &billing.ValidationError{Reason: fmt.Sprintf("client code %q already exists", req.Code)}
	}

	client := &model.Client{
		Code:    req.Code,
		Name:    req.Name,
		Contact: req.Contact,
		IFU:     req.IFU,
	}
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("saving client: %w", err)
	}

	return toClientResponse(client), nil
}

func (s *clientService) GetClient(ctx context.Context, code string) (*ClientResponse, error) {
	client, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("client lookup: %w", err)
	}
	if client == nil {
		return nil, &billing.NotFoundError{Entity: "client", Code: code}
	}
	return toClientResponse(client), nil
}

func (s *clientService) ListClients(ctx context.Context, page, limit int, search string) ([]ClientResponse, int64, error) {
	clients, total, err := s.repo.List(ctx, page, limit, search)
	if err != nil {
		return nil, 0, fmt.Errorf("listing clients: %w", err)
	}

	result := make([]ClientResponse, 0, len(clients))
	for i := range clients {
		result = append(result, *toClientResponse(&clients[i]))
	}
	return result, total, nil
}

func toClientResponse(client *model.Client) *ClientResponse {
	return &ClientResponse{
		Code:    client.Code,
		Name:    client.Name,
		Contact: client.Contact,
		IFU:     client.IFU,
	}
}
