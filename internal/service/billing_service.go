package service

import (
	"context"
	"fmt"
	"time"

	"facturation/internal/billing"
	"facturation/internal/model"
	"facturation/internal/repository"
)

// --- DTOs ---

type InvoiceLineRequest struct {
	ProductCode string `json:"product_code" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required"`
}

type PostInvoiceRequest struct {
	ClientCode string               `json:"client_code" binding:"required"`
	Lines      []InvoiceLineRequest `json:"lines"`
}

type InvoiceLineResponse struct {
	LineNo      int    `json:"line_no"`
	ProductCode string `json:"product_code"`
	Label       string `json:"label"`
	UnitPrice   string `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	LineTotal   string `json:"line_total"`
}

type CardResponse struct {
	Number       string `json:"number"`
	ClientCode   string `json:"client_code"`
	DiscountRate int    `json:"discount_rate"`
}

type InvoiceResponse struct {
	Number               string                `json:"number"`
	ClientCode           string                `json:"client_code"`
	ClientName           string                `json:"client_name,omitempty"`
	IssueDate            string                `json:"issue_date"`
	Lines                []InvoiceLineResponse `json:"lines"`
	TotalHT              string                `json:"total_ht"`
	DiscountRate         int                   `json:"discount_rate"`
	DiscountAmount       string                `json:"discount_amount"`
	TotalHTAfterDiscount string                `json:"total_ht_after_discount"`
	TaxAmount            string                `json:"tax_amount"`
	TotalTTC             string                `json:"total_ttc"`
	AmountInWords        string                `json:"amount_in_words"`
	IssuedCard           *CardResponse         `json:"issued_card,omitempty"`
}

// EventPublisher pushes billing events to connected listeners. The websocket
// hub satisfies it; tests pass nil.
type EventPublisher interface {
	Publish(event string, payload interface{})
}

// --- Interface ---

type BillingService interface {
	PostInvoice(ctx context.Context, req PostInvoiceRequest) (*InvoiceResponse, error)
	GetInvoice(ctx context.Context, number string) (*InvoiceResponse, error)
	ListInvoices(ctx context.Context, page, limit int, clientCode string) ([]InvoiceResponse, int64, error)
}

type billingService struct {
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	invoiceRepo repository.InvoiceRepository
	cardRepo    repository.CardRepository
	txManager   repository.TransactionManager
	events      EventPublisher
}

func NewBillingService(
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	invoiceRepo repository.InvoiceRepository,
	cardRepo repository.CardRepository,
	txManager repository.TransactionManager,
	events EventPublisher,
) BillingService {
	return &billingService{
		clientRepo:  clientRepo,
		productRepo: productRepo,
		invoiceRepo: invoiceRepo,
		cardRepo:    cardRepo,
		txManager:   txManager,
		events:      events,
	}
}

// --- Implementation ---

// PostInvoice runs the whole posting cycle inside one transaction: load the
// client, feed the billing engine with lookups bound to the transaction,
// then persist the invoice and — at most once per client — the issued card.
// The engine computes, the service writes; there are no partial writes.
func (s *billingService) PostInvoice(ctx context.Context, req PostInvoiceRequest) (*InvoiceResponse, error) {
	var (
		invoice *model.Invoice
		card    *model.DiscountCard
		client  *model.Client
	)

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		client, err = s.clientRepo.FindByCode(txCtx, req.ClientCode)
		if err != nil {
			return fmt.Errorf("client lookup: %w", err)
		}
		if client == nil {
			return &billing.NotFoundError{Entity: "client", Code: req.ClientCode}
		}

		engine := &billing.Engine{
			LookupProduct: func(code string) (*model.Product, error) {
				return s.productRepo.FindByCode(txCtx, code)
			},
			LookupCard: func(clientCode string) (*model.DiscountCard, error) {
				return s.cardRepo.FindByClientCode(txCtx, clientCode)
			},
			UsedInvoiceNumbers: func() (map[string]bool, error) {
				return s.invoiceRepo.ListNumbers(txCtx)
			},
			UsedCardNumbers: func() (map[string]bool, error) {
				return s.cardRepo.ListNumbers(txCtx)
			},
			Now: time.Now,
		}

		lines := make([]billing.LineRequest, 0, len(req.Lines))
		for _, l := range req.Lines {
			lines = append(lines, billing.LineRequest{ProductCode: l.ProductCode, Quantity: l.Quantity})
		}

		invoice, card, err = engine.PostInvoice(client, lines)
		if err != nil {
			return err
		}

		if err := s.invoiceRepo.Create(txCtx, invoice); err != nil {
			return fmt.Errorf("saving invoice: %w", err)
		}
		if card != nil {
			if err := s.cardRepo.Create(txCtx, card); err != nil {
				return fmt.Errorf("saving discount card: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Publish("invoice.posted", map[string]interface{}{
			"number":      invoice.Number,
			"client_code": invoice.ClientCode,
			"total_ttc":   invoice.TotalTTC.StringFixed(2),
		})
		if card != nil {
			s.events.Publish("card.issued", map[string]interface{}{
				"number":        card.Number,
				"client_code":   card.ClientCode,
				"discount_rate": card.DiscountRate,
			})
		}
	}

	return toInvoiceResponse(invoice, client.Name, card)
}

func (s *billingService) GetInvoice(ctx context.Context, number string) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("invoice lookup: %w", err)
	}
	if invoice == nil {
		return nil, &billing.NotFoundError{Entity: "invoice", Code: number}
	}

	clientName := ""
	if client, err := s.clientRepo.FindByCode(ctx, invoice.ClientCode); err == nil && client != nil {
		clientName = client.Name
	}

	return toInvoiceResponse(invoice, clientName, nil)
}

func (s *billingService) ListInvoices(ctx context.Context, page, limit int, clientCode string) ([]InvoiceResponse, int64, error) {
	invoices, total, err := s.invoiceRepo.List(ctx, page, limit, clientCode)
	if err != nil {
		return nil, 0, fmt.Errorf("listing invoices: %w", err)
	}

	result := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		resp, err := toInvoiceResponse(&invoices[i], "", nil)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *resp)
	}
	return result, total, nil
}

// --- Mapping ---

func toInvoiceResponse(inv *model.Invoice, clientName string, card *model.DiscountCard) (*InvoiceResponse, error) {
	words, err := billing.AmountInWords(inv.TotalTTC.IntPart())
	if err != nil {
		return nil, fmt.Errorf("legal amount text: %w", err)
	}

	resp := &InvoiceResponse{
		Number:               inv.Number,
		ClientCode:           inv.ClientCode,
		ClientName:           clientName,
		IssueDate:            inv.IssueDate.Format("2006-01-02"),
		TotalHT:              inv.TotalHT.StringFixed(2),
		DiscountRate:         inv.DiscountRate,
		DiscountAmount:       inv.DiscountAmount.StringFixed(2),
		TotalHTAfterDiscount: inv.TotalHTAfterDiscount.StringFixed(2),
		TaxAmount:            inv.TaxAmount.StringFixed(2),
		TotalTTC:             inv.TotalTTC.StringFixed(2),
		AmountInWords:        words,
	}
	for _, line := range inv.Lines {
		resp.Lines = append(resp.Lines, InvoiceLineResponse{
			LineNo:      line.LineNo,
			ProductCode: line.ProductCode,
			Label:       line.Label,
			UnitPrice:   line.UnitPrice.StringFixed(2),
			Quantity:    line.Quantity,
			LineTotal:   line.LineTotal.StringFixed(2),
		})
	}
	if card != nil {
		resp.IssuedCard = &CardResponse{
			Number:       card.Number,
			ClientCode:   card.ClientCode,
			DiscountRate: card.DiscountRate,
		}
	}
	return resp, nil
}
