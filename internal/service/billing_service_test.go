package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"facturation/internal/billing"
	"facturation/internal/database"
	"facturation/internal/model"
	"facturation/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T, name string) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newBillingService(db *gorm.DB) BillingService {
	return NewBillingService(
		repository.NewClientRepository(db),
		repository.NewProductRepository(db),
		repository.NewInvoiceRepository(db),
		repository.NewCardRepository(db),
		repository.NewTransactionManager(db),
		nil,
	)
}

func seedBillingData(t *testing.T, db *gorm.DB) {
	t.Helper()
	client := model.Client{Code: "CLI001", Name: "Entreprise ABC", Contact: "contact@abc.com", IFU: "1234567890123"}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	product := model.Product{Code: "PROD01", Label: "Ordinateur portable", UnitPrice: decimal.NewFromInt(800)}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
}

func TestPostInvoicePersistsInvoiceAndLines(t *testing.T) {
	db := setupTestDB(t, t.Name())
	seedBillingData(t, db)
	svc := newBillingService(db)

	resp, err := svc.PostInvoice(context.Background(), PostInvoiceRequest{
		ClientCode: "CLI001",
		Lines:      []InvoiceLineRequest{{ProductCode: "PROD01", Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("post invoice: %v", err)
	}

	if resp.Number != "FACT001" {
		t.Fatalf("expected number FACT001 got %s", resp.Number)
	}
	if resp.TotalHT != "1600.00" || resp.TaxAmount != "288.00" || resp.TotalTTC != "1888.00" {
		t.Fatalf("unexpected totals: HT=%s TVA=%s TTC=%s", resp.TotalHT, resp.TaxAmount, resp.TotalTTC)
	}
	if resp.AmountInWords != "mille huit cent quatre-vingt-huit francs CFA" {
		t.Fatalf("unexpected legal text: %q", resp.AmountInWords)
	}
	if resp.IssuedCard != nil {
		t.Fatalf("no card expected below threshold, got %+v", resp.IssuedCard)
	}

	// Reload through the read path: lines must have been persisted with the
	// catalog label and price copied.
	reloaded, err := svc.GetInvoice(context.Background(), "FACT001")
	if err != nil {
		t.Fatalf("get invoice: %v", err)
	}
	if len(reloaded.Lines) != 1 {
		t.Fatalf("expected 1 line got %d", len(reloaded.Lines))
	}
	line := reloaded.Lines[0]
	if line.Label != "Ordinateur portable" || line.UnitPrice != "800.00" || line.LineTotal != "1600.00" {
		t.Fatalf("unexpected line: %+v", line)
	}
	if reloaded.ClientName != "Entreprise ABC" {
		t.Fatalf("expected client name resolved, got %q", reloaded.ClientName)
	}
}

func TestPostInvoiceIssuesCardExactlyOnce(t *testing.T) {
	db := setupTestDB(t, t.Name())
	seedBillingData(t, db)
	svc := newBillingService(db)

	// 3 x 800 = 2400 HT, TTC 2832: crosses the 5% threshold.
	first, err := svc.PostInvoice(context.Background(), PostInvoiceRequest{
		ClientCode: "CLI001",
		Lines:      []InvoiceLineRequest{{ProductCode: "PROD01", Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("first invoice: %v", err)
	}
	if first.IssuedCard == nil {
		t.Fatalf("expected a card issued with TTC %s", first.TotalTTC)
	}
	if first.IssuedCard.Number != "CARTE0001" || first.IssuedCard.DiscountRate != 5 {
		t.Fatalf("unexpected card: %+v", first.IssuedCard)
	}
	if first.DiscountRate != 0 {
		t.Fatalf("card must not discount the invoice that earned it, got rate %d", first.DiscountRate)
	}

	// The second invoice uses the card's discount but never earns another one.
	second, err := svc.PostInvoice(context.Background(), PostInvoiceRequest{
		ClientCode: "CLI001",
		Lines:      []InvoiceLineRequest{{ProductCode: "PROD01", Quantity: 20}},
	})
	if err != nil {
		t.Fatalf("second invoice: %v", err)
	}
	if second.DiscountRate != 5 || second.DiscountAmount != "800.00" {
		t.Fatalf("expected 5%% discount of 800.00, got rate=%d amount=%s", second.DiscountRate, second.DiscountAmount)
	}
	if second.IssuedCard != nil {
		t.Fatalf("client already holds a card, none should be issued")
	}

	var cardCount int64
	if err := db.Model(&model.DiscountCard{}).Count(&cardCount).Error; err != nil {
		t.Fatalf("count cards: %v", err)
	}
	if cardCount != 1 {
		t.Fatalf("expected exactly 1 card got %d", cardCount)
	}
}

func TestPostInvoiceFillsNumberGaps(t *testing.T) {
	db := setupTestDB(t, t.Name())
	seedBillingData(t, db)
	svc := newBillingService(db)

	// Pre-existing ledger entries leave FACT002 free.
	for _, number := range []string{"FACT001", "FACT003"} {
		inv := model.Invoice{
			Number:               number,
			ClientCode:           "CLI001",
			IssueDate:            time.Now(),
			TotalHT:              decimal.NewFromInt(100),
			TotalHTAfterDiscount: decimal.NewFromInt(100),
			TaxAmount:            decimal.NewFromInt(18),
			TotalTTC:             decimal.NewFromInt(118),
		}
		if err := db.Create(&inv).Error; err != nil {
			t.Fatalf("seed invoice %s: %v", number, err)
		}
	}

	resp, err := svc.PostInvoice(context.Background(), PostInvoiceRequest{
		ClientCode: "CLI001",
		Lines:      []InvoiceLineRequest{{ProductCode: "PROD01", Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("post invoice: %v", err)
	}
	if resp.Number != "FACT002" {
		t.Fatalf("expected gap FACT002 reused, got %s", resp.Number)
	}
}

func TestPostInvoiceUnknownClientAndProduct(t *testing.T) {
	db := setupTestDB(t, t.Name())
	seedBillingData(t, db)
	svc := newBillingService(db)

	_, err := svc.PostInvoice(context.Background(), PostInvoiceRequest{
		ClientCode: "CLI999",
		Lines:      []InvoiceLineRequest{{ProductCode: "PROD01", Quantity: 1}},
	})
	if !billing.IsNotFound(err) {
		t.Fatalf("expected not-found for unknown client, got %v", err)
	}

	_, err = svc.PostInvoice(context.Background(), PostInvoiceRequest{
		ClientCode: "CLI001",
		Lines:      []InvoiceLineRequest{{ProductCode: "NOPE99", Quantity: 1}},
	})
	if !billing.IsNotFound(err) {
		t.Fatalf("expected not-found for unknown product, got %v", err)
	}

	// Rejected postings must leave the ledger untouched.
	var invoiceCount int64
	if err := db.Model(&model.Invoice{}).Count(&invoiceCount).Error; err != nil {
		t.Fatalf("count invoices: %v", err)
	}
	if invoiceCount != 0 {
		t.Fatalf("expected empty ledger got %d invoices", invoiceCount)
	}
}

func TestSalesStatistics(t *testing.T) {
	db := setupTestDB(t, t.Name())
	seedBillingData(t, db)
	other := model.Client{Code: "CLI002", Name: "Société XYZ", Contact: "info@xyz.com", IFU: "9876543210987"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}

	svc := newBillingService(db)
	stats := NewStatisticsService(repository.NewInvoiceRepository(db))

	empty, err := stats.GetSalesStatistics(context.Background())
	if err != nil {
		t.Fatalf("empty statistics: %v", err)
	}
	if empty.TotalInvoices != 0 || len(empty.RevenueByClient) != 0 {
		t.Fatalf("expected empty report got %+v", empty)
	}

	// CLI001: 2 x 800 -> TTC 1888; CLI002: 1 x 800 -> TTC 944.
	for _, req := range []PostInvoiceRequest{
		{ClientCode: "CLI001", Lines: []InvoiceLineRequest{{ProductCode: "PROD01", Quantity: 2}}},
		{ClientCode: "CLI002", Lines: []InvoiceLineRequest{{ProductCode: "PROD01", Quantity: 1}}},
	} {
		if _, err := svc.PostInvoice(context.Background(), req); err != nil {
			t.Fatalf("post invoice for %s: %v", req.ClientCode, err)
		}
	}

	report, err := stats.GetSalesStatistics(context.Background())
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if report.TotalInvoices != 2 {
		t.Fatalf("expected 2 invoices got %d", report.TotalInvoices)
	}
	assertAmount(t, "total revenue", report.TotalRevenue, "2832")
	assertAmount(t, "average invoice", report.AverageInvoice, "1416")
	assertAmount(t, "highest invoice", report.HighestInvoice, "1888")

	if len(report.RevenueByClient) != 2 {
		t.Fatalf("expected 2 client rows got %d", len(report.RevenueByClient))
	}
	if report.RevenueByClient[0].ClientCode != "CLI001" {
		t.Fatalf("expected best client first, got %s", report.RevenueByClient[0].ClientCode)
	}
	assertAmount(t, "best client revenue", report.RevenueByClient[0].Revenue, "1888")
}

// assertAmount compares numerically: the aggregates come back as driver
// formatted text ("1888" vs "1888.0").
func assertAmount(t *testing.T, label, got, want string) {
	t.Helper()
	gotDec, err := decimal.NewFromString(got)
	if err != nil {
		t.Fatalf("%s: parse %q: %v", label, got, err)
	}
	wantDec, err := decimal.NewFromString(want)
	if err != nil {
		t.Fatalf("%s: parse %q: %v", label, want, err)
	}
	if !gotDec.Equal(wantDec) {
		t.Fatalf("%s: expected %s got %s", label, want, got)
	}
}
