package billing

import (
	"testing"
	"time"

	"facturation/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore backs the engine collaborators with plain maps, mimicking the
// read-modify-write cycle the service layer performs against the database.
type fakeStore struct {
	products       map[string]*model.Product
	cards          map[string]*model.DiscountCard
	invoiceNumbers map[string]bool
	cardNumbers    map[string]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: map[string]*model.Product{
			"PROD01": {Code: "PROD01", Label: "Ordinateur portable", UnitPrice: d("800.00")},
			"PROD02": {Code: "PROD02", Label: "Souris sans fil", UnitPrice: d("25.00")},
			"PROD05": {Code: "PROD05", Label: "Imprimante laser", UnitPrice: d("350.00")},
		},
		cards:          map[string]*model.DiscountCard{},
		invoiceNumbers: map[string]bool{},
		cardNumbers:    map[string]bool{},
	}
}

func (s *fakeStore) engine() *Engine {
	return &Engine{
		LookupProduct: func(code string) (*model.Product, error) { return s.products[code], nil },
		LookupCard:    func(clientCode string) (*model.DiscountCard, error) { return s.cards[clientCode], nil },
		UsedInvoiceNumbers: func() (map[string]bool, error) {
			return s.invoiceNumbers, nil
		},
		UsedCardNumbers: func() (map[string]bool, error) {
			return s.cardNumbers, nil
		},
		Now: func() time.Time { return time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC) },
	}
}

// commit mirrors the service layer persisting the engine's output.
func (s *fakeStore) commit(inv *model.Invoice, card *model.DiscountCard) {
	s.invoiceNumbers[inv.Number] = true
	if card != nil {
		s.cardNumbers[card.Number] = true
		s.cards[card.ClientCode] = card
	}
}

var testClient = &model.Client{Code: "CLI001", Name: "Entreprise ABC", Contact: "contact@abc.com", IFU: "1234567890123"}

func TestPostInvoiceBelowThreshold(t *testing.T) {
	store := newFakeStore()

	invoice, card, err := store.engine().PostInvoice(testClient, []LineRequest{{ProductCode: "PROD01", Quantity: 2}})
	require.NoError(t, err)

	assert.Equal(t, "FACT001", invoice.Number)
	assert.Equal(t, "CLI001", invoice.ClientCode)
	assert.True(t, invoice.TotalHT.Equal(d("1600.00")))
	assert.True(t, invoice.DiscountAmount.IsZero())
	assert.True(t, invoice.TaxAmount.Equal(d("288.00")))
	assert.True(t, invoice.TotalTTC.Equal(d("1888.00")))
	assert.Nil(t, card, "1888 TTC stays below the 2000 threshold")

	require.Len(t, invoice.Lines, 1)
	assert.Equal(t, 1, invoice.Lines[0].LineNo)
	assert.Equal(t, "Ordinateur portable", invoice.Lines[0].Label)
	assert.True(t, invoice.Lines[0].LineTotal.Equal(d("1600.00")))
}

func TestPostInvoiceIssuesCardExactlyOnce(t *testing.T) {
	store := newFakeStore()
	engine := store.engine()

	// 3 × 800 → HT 2400, TTC 2832: crosses the lowest tier.
	invoice, card, err := engine.PostInvoice(testClient, []LineRequest{{ProductCode: "PROD01", Quantity: 3}})
	require.NoError(t, err)
	require.NotNil(t, card)
	assert.Equal(t, "CARTE0001", card.Number)
	assert.Equal(t, "CLI001", card.ClientCode)
	assert.Equal(t, 5, card.DiscountRate, "rate comes from the qualifying invoice's TTC")
	assert.Zero(t, invoice.DiscountRate, "the card never applies to the invoice that created it")
	store.commit(invoice, card)

	// A second qualifying invoice gets the discount but no second card.
	second, secondCard, err := engine.PostInvoice(testClient, []LineRequest{{ProductCode: "PROD01", Quantity: 20}})
	require.NoError(t, err)
	assert.Nil(t, secondCard, "a client holds at most one card, ever")
	assert.Equal(t, "FACT002", second.Number)
	assert.Equal(t, 5, second.DiscountRate)
	assert.True(t, second.DiscountAmount.Equal(d("800.00")), "remise = %s", second.DiscountAmount)
	store.commit(second, secondCard)
}

func TestPostInvoiceCardRateFollowsTTCTier(t *testing.T) {
	store := newFakeStore()

	// 12 × 800 → HT 9600, TTC 11328: lands in the 15% tier.
	_, card, err := store.engine().PostInvoice(testClient, []LineRequest{{ProductCode: "PROD01", Quantity: 12}})
	require.NoError(t, err)
	require.NotNil(t, card)
	assert.Equal(t, 15, card.DiscountRate)
}

func TestPostInvoiceFillsNumberGaps(t *testing.T) {
	store := newFakeStore()
	store.invoiceNumbers["FACT001"] = true
	store.invoiceNumbers["FACT003"] = true

	invoice, _, err := store.engine().PostInvoice(testClient, []LineRequest{{ProductCode: "PROD02", Quantity: 1}})
	require.NoError(t, err)
	assert.Equal(t, "FACT002", invoice.Number, "gaps left by external edits are reused first")
}

func TestPostInvoiceUnknownProduct(t *testing.T) {
	store := newFakeStore()

	_, _, err := store.engine().PostInvoice(testClient, []LineRequest{{ProductCode: "NOPE99", Quantity: 1}})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "NOPE99")
}

func TestPostInvoiceValidation(t *testing.T) {
	store := newFakeStore()
	engine := store.engine()

	_, _, err := engine.PostInvoice(testClient, nil)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, _, err = engine.PostInvoice(testClient, []LineRequest{{ProductCode: "PROD01", Quantity: 0}})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, _, err = engine.PostInvoice(nil, []LineRequest{{ProductCode: "PROD01", Quantity: 1}})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestPostInvoiceStampsInjectedDate(t *testing.T) {
	store := newFakeStore()

	invoice, _, err := store.engine().PostInvoice(testClient, []LineRequest{{ProductCode: "PROD05", Quantity: 1}})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), invoice.IssueDate)
}
