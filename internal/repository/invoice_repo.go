package repository

import (
	"context"
	"errors"

	"facturation/internal/model"

	"gorm.io/gorm"
)

// SalesAggregates carries the ledger-wide figures of the statistics report.
// Sums come back as strings so decimal values survive both postgres and
// sqlite without float drift.
type SalesAggregates struct {
	TotalInvoices  int64
	TotalRevenue   string
	AverageInvoice string
	HighestInvoice string
}

// ClientRevenue is one row of the per-client revenue breakdown.
type ClientRevenue struct {
	ClientCode string
	ClientName string
	Invoices   int64
	Revenue    string
}

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *model.Invoice) error
	FindByNumber(ctx context.Context, number string) (*model.Invoice, error)
	List(ctx context.Context, page, limit int, clientCode string) ([]model.Invoice, int64, error)
	// ListNumbers loads every allocated invoice number; the allocator scans
	// this set for the first free slot.
	ListNumbers(ctx context.Context) (map[string]bool, error)
	Aggregates(ctx context.Context) (SalesAggregates, error)
	RevenueByClient(ctx context.Context) ([]ClientRevenue, error)
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *model.Invoice) error {
	return GetDB(ctx, r.db).Create(invoice).Error
}

func (r *invoiceRepository) FindByNumber(ctx context.Context, number string) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := GetDB(ctx, r.db).Preload("Lines", func(db *gorm.DB) *gorm.DB {
		return db.Order("line_no asc")
	}).Where("number = ?", number).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) List(ctx context.Context, page, limit int, clientCode string) ([]model.Invoice, int64, error) {
	var invoices []model.Invoice
	var total int64

	db := GetDB(ctx, r.db).Model(&model.Invoice{})
	if clientCode != "" {
		db = db.Where("client_code = ?", clientCode)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Preload("Lines").Order("created_at desc").Offset(offset).Limit(limit).Find(&invoices).Error; err != nil {
		return nil, 0, err
	}

	return invoices, total, nil
}

func (r *invoiceRepository) ListNumbers(ctx context.Context) (map[string]bool, error) {
	var numbers []string
	if err := GetDB(ctx, r.db).Model(&model.Invoice{}).Pluck("number", &numbers).Error; err != nil {
		return nil, err
	}
	used := make(map[string]bool, len(numbers))
	for _, n := range numbers {
		used[n] = true
	}
	return used, nil
}

func (r *invoiceRepository) Aggregates(ctx context.Context) (SalesAggregates, error) {
	var row struct {
		Count   int64
		Total   string
		Average string
		Highest string
	}
	err := GetDB(ctx, r.db).Model(&model.Invoice{}).
		Select("COUNT(*) as count, " +
			"COALESCE(CAST(SUM(total_ttc) AS TEXT), '0') as total, " +
			"COALESCE(CAST(AVG(total_ttc) AS TEXT), '0') as average, " +
			"COALESCE(CAST(MAX(total_ttc) AS TEXT), '0') as highest").
		Scan(&row).Error
	if err != nil {
		return SalesAggregates{}, err
	}
	return SalesAggregates{
		TotalInvoices:  row.Count,
		TotalRevenue:   row.Total,
		AverageInvoice: row.Average,
		HighestInvoice: row.Highest,
	}, nil
}

func (r *invoiceRepository) RevenueByClient(ctx context.Context) ([]ClientRevenue, error) {
	var rows []struct {
		ClientCode string
		ClientName string
		Invoices   int64
		Revenue    string
	}
	err := GetDB(ctx, r.db).Table("invoices").
		Select("invoices.client_code as client_code, clients.name as client_name, " +
			"COUNT(*) as invoices, CAST(SUM(invoices.total_ttc) AS TEXT) as revenue").
		Joins("JOIN clients ON clients.code = invoices.client_code").
		Group("invoices.client_code, clients.name").
		Order("SUM(invoices.total_ttc) DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]ClientRevenue, 0, len(rows))
	for _, row := range rows {
		result = append(result, ClientRevenue(row))
	}
	return result, nil
}
