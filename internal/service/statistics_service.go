package service

import (
	"context"
	"fmt"

	"facturation/internal/repository"
)

// SalesStatisticsResponse mirrors the original statistics report: ledger-wide
// figures plus revenue per client, best client first.
type SalesStatisticsResponse struct {
	TotalInvoices   int64                   `json:"total_invoices"`
	TotalRevenue    string                  `json:"total_revenue"`
	AverageInvoice  string                  `json:"average_invoice"`
	HighestInvoice  string                  `json:"highest_invoice"`
	RevenueByClient []ClientRevenueResponse `json:"revenue_by_client"`
}

type ClientRevenueResponse struct {
	ClientCode string `json:"client_code"`
	ClientName string `json:"client_name"`
	Invoices   int64  `json:"invoices"`
	Revenue    string `json:"revenue"`
}

type StatisticsService interface {
	GetSalesStatistics(ctx context.Context) (*SalesStatisticsResponse, error)
}

type statisticsService struct {
	invoiceRepo repository.InvoiceRepository
}

func NewStatisticsService(invoiceRepo repository.InvoiceRepository) StatisticsService {
	return &statisticsService{invoiceRepo: invoiceRepo}
}

func (s *statisticsService) GetSalesStatistics(ctx context.Context) (*SalesStatisticsResponse, error) {
	aggregates, err := s.invoiceRepo.Aggregates(ctx)
	if err != nil {
		return nil, fmt.Errorf("computing sales aggregates: %w", err)
	}

	resp := &SalesStatisticsResponse{
		TotalInvoices:   aggregates.TotalInvoices,
		TotalRevenue:    aggregates.TotalRevenue,
		AverageInvoice:  aggregates.AverageInvoice,
		HighestInvoice:  aggregates.HighestInvoice,
		RevenueByClient: []ClientRevenueResponse{},
	}

	if aggregates.TotalInvoices == 0 {
		return resp, nil
	}

	byClient, err := s.invoiceRepo.RevenueByClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("computing per-client revenue: %w", err)
	}
	for _, row := range byClient {
		resp.RevenueByClient = append(resp.RevenueByClient, ClientRevenueResponse{
			ClientCode: row.ClientCode,
			ClientName: row.ClientName,
			Invoices:   row.Invoices,
			Revenue:    row.Revenue,
		})
	}

	return resp, nil
}
