package billing

import (
	"fmt"
	"log"
	"strconv"
)

// Identifier patterns shared with the store and the document renderer.
const (
	InvoicePrefix      = "FACT"
	InvoiceNumberWidth = 3
	CardPrefix         = "CARTE"
	CardNumberWidth    = 4
)

// NextIdentifier returns the lowest unused identifier formed from prefix plus
// a zero-padded counter starting at 1. It fills gaps left by manual edits of
// the backing store instead of appending past the maximum, so re-running
// against a freshly reloaded used-set always yields the same answer.
//
// When every counter of the fixed width is taken, the escape valve returns
// prefix + (len(used)+1) without padding. That deviation from the documented
// format is logged, never raised as an error.
func NextIdentifier(prefix string, width int, used map[string]bool) string {
	limit := 1
	for i := 0; i < width; i++ {
		limit *= 10
	}

	for counter := 1; counter < limit; counter++ {
		candidate := fmt.Sprintf("%s%0*d", prefix, width, counter)
		if !used[candidate] {
			return candidate
		}
	}

	fallback := prefix + strconv.Itoa(len(used)+1)
	log.Printf("identifier space %s+%d digits exhausted, overflowing to %s", prefix, width, fallback)
	return fallback
}

// NextInvoiceNumber allocates the lowest free FACT number.
func NextInvoiceNumber(used map[string]bool) string {
	return NextIdentifier(InvoicePrefix, InvoiceNumberWidth, used)
}

// NextCardNumber allocates the lowest free CARTE number.
func NextCardNumber(used map[string]bool) string {
	return NextIdentifier(CardPrefix, CardNumberWidth, used)
}
