package billing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextIdentifierStartsAtOne(t *testing.T) {
	assert.Equal(t, "FACT001", NextIdentifier("FACT", 3, nil))
	assert.Equal(t, "CARTE0001", NextIdentifier("CARTE", 4, map[string]bool{}))
}

func TestNextIdentifierFillsGaps(t *testing.T) {
	used := map[string]bool{"FACT001": true, "FACT003": true}
	assert.Equal(t, "FACT002", NextIdentifier("FACT", 3, used))
}

func TestNextIdentifierAppendsWhenDense(t *testing.T) {
	used := map[string]bool{"FACT001": true, "FACT002": true, "FACT003": true}
	assert.Equal(t, "FACT004", NextIdentifier("FACT", 3, used))
}

func TestNextIdentifierIgnoresForeignEntries(t *testing.T) {
	// Manually edited stores may hold identifiers outside the pattern; they
	// must not shift the counter.
	used := map[string]bool{"FACT001": true, "INVOICE-77": true, "FACT9999": true}
	assert.Equal(t, "FACT002", NextIdentifier("FACT", 3, used))
}

func TestNextIdentifierIsPure(t *testing.T) {
	used := map[string]bool{"FACT001": true}
	first := NextIdentifier("FACT", 3, used)
	second := NextIdentifier("FACT", 3, used)
	assert.Equal(t, first, second, "same used-set must yield the same identifier")
	assert.Equal(t, map[string]bool{"FACT001": true}, used, "used-set must not be mutated")
}

func TestNextIdentifierOverflowEscapeValve(t *testing.T) {
	used := make(map[string]bool, 999)
	for i := 1; i <= 999; i++ {
		used[fmt.Sprintf("FACT%03d", i)] = true
	}
	// Width exhausted: unpadded fallback based on the set size.
	assert.Equal(t, "FACT1000", NextIdentifier("FACT", 3, used))
}

func TestPatternHelpers(t *testing.T) {
	assert.Equal(t, "FACT001", NextInvoiceNumber(nil))
	assert.Equal(t, "CARTE0001", NextCardNumber(nil))
}
