// Package pdf renders invoices as printable A4 documents.
package pdf

import (
	"bytes"
	"fmt"

	"facturation/internal/service"

	"github.com/phpdave11/gofpdf"
)

const issuerName = "SOCIETE DE DISTRIBUTION GENERALE"

// RenderInvoice produces the printable PDF for a posted invoice: issuer and
// client blocks, the line table, the totals table and the legal amount line.
func RenderInvoice(invoice *service.InvoiceResponse, client *service.ClientResponse) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	// Header: issuer on the left, issue date on the right.
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(120, 7, tr(issuerName), "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(70, 7, tr("Date d'émission : "+invoice.IssueDate), "", 1, "R", false, 0, "")
	doc.Ln(6)

	// Client block.
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6, tr("Code client : "+client.Code), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, tr("Nom : "+client.Name), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, tr("Contact : "+client.Contact), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, tr("IFU : "+client.IFU), "", 1, "L", false, 0, "")
	doc.Ln(6)

	// Title.
	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 10, tr("FACTURE n° "+invoice.Number), "", 1, "C", false, 0, "")
	doc.Ln(4)

	// Line table.
	colWidths := []float64{12, 28, 68, 28, 16, 38}
	headers := []string{"N°", "Code Produit", "Libellé", "P.U.", "Qté", "Total HT"}

	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(230, 230, 230)
	for i, h := range headers {
		doc.CellFormat(colWidths[i], 8, tr(h), "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 9)
	for _, line := range invoice.Lines {
		doc.CellFormat(colWidths[0], 7, fmt.Sprintf("%d", line.LineNo), "1", 0, "C", false, 0, "")
		doc.CellFormat(colWidths[1], 7, tr(line.ProductCode), "1", 0, "C", false, 0, "")
		doc.CellFormat(colWidths[2], 7, tr(line.Label), "1", 0, "L", false, 0, "")
		doc.CellFormat(colWidths[3], 7, line.UnitPrice, "1", 0, "R", false, 0, "")
		doc.CellFormat(colWidths[4], 7, fmt.Sprintf("%d", line.Quantity), "1", 0, "C", false, 0, "")
		doc.CellFormat(colWidths[5], 7, line.LineTotal, "1", 1, "R", false, 0, "")
	}
	doc.Ln(6)

	// Totals table, right-aligned.
	labelW, valueW := 60.0, 38.0
	indent := 190.0 - labelW - valueW
	totals := []struct {
		label string
		value string
	}{
		{"Total HT", invoice.TotalHT},
		{fmt.Sprintf("Remise (%d%%)", invoice.DiscountRate), invoice.DiscountAmount},
		{"THT remise", invoice.TotalHTAfterDiscount},
		{"TVA (18%)", invoice.TaxAmount},
		{"Total TTC", invoice.TotalTTC},
	}
	for i, row := range totals {
		style := ""
		if i == len(totals)-1 {
			style = "B"
		}
		doc.SetFont("Helvetica", style, 10)
		doc.CellFormat(indent, 7, "", "", 0, "L", false, 0, "")
		doc.CellFormat(labelW, 7, tr(row.label), "1", 0, "L", false, 0, "")
		doc.CellFormat(valueW, 7, row.value, "1", 1, "R", false, 0, "")
	}
	doc.Ln(8)

	// Legal amount line.
	doc.SetFont("Helvetica", "I", 10)
	doc.MultiCell(0, 6, tr("Arrêtée, la présente facture à la somme de : "+invoice.AmountInWords), "", "L", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering invoice %s: %w", invoice.Number, err)
	}
	return buf.Bytes(), nil
}
