package billing

import (
	"strings"
)

// French numeral vocabulary. The 70s and 90s are not derived arithmetically:
// soixante-dix is "sixty-ten" and quatre-vingt-dix is "four-twenty-ten",
// which is linguistic convention, so the compounds are built from the teens
// table rather than from a tens word of their own.
var (
	frUnits = [10]string{"zéro", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf"}
	frTeens = [10]string{"dix", "onze", "douze", "treize", "quatorze", "quinze", "seize", "dix-sept", "dix-huit", "dix-neuf"}
	frTens  = [7]string{"", "dix", "vingt", "trente", "quarante", "cinquante", "soixante"}
)

const (
	currencySingular = "franc CFA"
	currencyPlural   = "francs CFA"

	maxSpellableAmount = int64(1_000_000_000_000) - 1 // up to 999 milliards
)

// AmountInWords converts a non-negative integer amount of francs CFA into its
// full-word French expression, currency suffix included, for the legal line
// of an invoice ("Arrêtée, la présente facture à la somme de : …").
// Fractional subunits are never spelled out; callers truncate beforehand.
func AmountInWords(amount int64) (string, error) {
	if amount < 0 {
		return "", validationf("amount in words requires a non-negative amount, got %d", amount)
	}
	if amount > maxSpellableAmount {
		return "", validationf("amount %d exceeds the largest spellable value (%d)", amount, maxSpellableAmount)
	}

	currency := currencyPlural
	if amount <= 1 {
		currency = currencySingular
	}
	return spellInteger(amount) + " " + currency, nil
}

// spellInteger writes n in French words, without the currency suffix.
func spellInteger(n int64) string {
	if n == 0 {
		return frUnits[0]
	}

	var parts []string

	if g := n / 1_000_000_000; g > 0 {
		if g == 1 {
			parts = append(parts, "un milliard")
		} else {
			parts = append(parts, spellGroup(int(g), false)+" milliards")
		}
		n %= 1_000_000_000
	}

	if g := n / 1_000_000; g > 0 {
		if g == 1 {
			parts = append(parts, "un million")
		} else {
			parts = append(parts, spellGroup(int(g), false)+" millions")
		}
		n %= 1_000_000
	}

	if g := n / 1000; g > 0 {
		// "mille" is invariant: no "un mille", no plural s.
		if g == 1 {
			parts = append(parts, "mille")
		} else {
			parts = append(parts, spellGroup(int(g), false)+" mille")
		}
		n %= 1000
	}

	if n > 0 {
		parts = append(parts, spellGroup(int(n), true))
	}

	return strings.Join(parts, " ")
}

// spellGroup writes 1–999. final marks a group that ends the whole
// expression: only then do "cents" and "quatre-vingts" take their plural s.
func spellGroup(n int, final bool) string {
	hundreds := n / 100
	rest := n % 100

	if hundreds == 0 {
		return spellUnderHundred(rest, final)
	}

	var head string
	switch {
	case hundreds == 1:
		head = "cent"
	case rest == 0 && final:
		head = frUnits[hundreds] + " cents"
	default:
		head = frUnits[hundreds] + " cent"
	}

	if rest == 0 {
		return head
	}
	return head + " " + spellUnderHundred(rest, final)
}

// spellUnderHundred writes 0–99, applying the irregular compound rules:
// "et un" on 21/31/41/51/61, "soixante et onze", the 70s and 90s built on the
// teens, and the bare/plural quatre-vingt(s) split.
func spellUnderHundred(n int, final bool) string {
	switch {
	case n < 10:
		return frUnits[n]
	case n < 20:
		return frTeens[n-10]
	case n < 70:
		tens, unit := n/10, n%10
		switch unit {
		case 0:
			return frTens[tens]
		case 1:
			return frTens[tens] + " et un"
		default:
			return frTens[tens] + "-" + frUnits[unit]
		}
	case n == 71:
		return "soixante et onze"
	case n < 80:
		return "soixante-" + frTeens[n-70]
	case n == 80:
		if final {
			return "quatre-vingts"
		}
		return "quatre-vingt"
	case n < 90:
		return "quatre-vingt-" + frUnits[n-80]
	default:
		return "quatre-vingt-" + frTeens[n-90]
	}
}
