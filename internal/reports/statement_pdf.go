// Package reports renders printable client statements.
package reports

import (
	_ "embed"
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/baharkarakas/credit-ledger/internal/models"
)

// DejaVu Sans covers Latin and Arabic, including the presentation forms.
var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	fontRegular []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	fontBold []byte
)

const family = "DejaVu"

type Statement struct {
	Client       models.ClientBalance
	Transactions []models.Transaction // newest first
	Currency     string
	GeneratedAt  time.Time
}

// WriteStatementPDF writes an A4 statement: client header, the three totals
// and the transaction history. Arabic client names are shaped and right aligned.
func WriteStatementPDF(w io.Writer, s Statement) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8FontFromBytes(family, "", fontRegular)
	pdf.AddUTF8FontFromBytes(family, "B", fontBold)
	pdf.SetMargins(14, 14, 14)
	pdf.SetTitle("Statement - "+s.Client.Name, true)
	pdf.SetAuthor("credit-ledger", false)
	pdf.AddPage()

	nameAlign := "L"
	if hasArabic(s.Client.Name) {
		nameAlign = "R"
	}
	pdf.SetFont(family, "B", 18)
	pdf.CellFormat(0, 10, visualOrder(s.Client.Name), "", 1, nameAlign, false, 0, "")
	pdf.SetFont(family, "", 10)
	phone := s.Client.PhoneOrEmpty()
	if phone == "" {
		phone = "-"
	}
	pdf.CellFormat(0, 6, "Phone: "+visualOrder(phone), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Generated: "+s.GeneratedAt.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	colW := 60.0
	pdf.SetFont(family, "B", 10)
	for _, h := range []string{"Total credit", "Total payment", "Balance"} {
		pdf.CellFormat(colW, 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont(family, "", 11)
	for _, v := range []string{
		money(s.Client.TotalCredit.StringFixed(2), s.Currency),
		money(s.Client.TotalPayment.StringFixed(2), s.Currency),
		money(s.Client.Balance.StringFixed(2), s.Currency),
	} {
		pdf.CellFormat(colW, 9, v, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(14)

	pdf.SetFont(family, "B", 10)
	pdf.CellFormat(70, 8, "Date", "B", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, "Type", "B", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, "Amount", "B", 1, "R", false, 0, "")
	pdf.SetFont(family, "", 10)
	if len(s.Transactions) == 0 {
		pdf.CellFormat(0, 8, "No transactions recorded.", "", 1, "L", false, 0, "")
	}
	for _, t := range s.Transactions {
		pdf.CellFormat(70, 7, t.CreatedAt.Format("2006-01-02 15:04"), "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, string(t.Type), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, money(t.Amount.StringFixed(2), s.Currency), "", 1, "R", false, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render statement: %w", err)
	}
	return pdf.Output(w)
}

func money(v, currency string) string {
	if currency == "" {
		return v
	}
	return visualOrder(v + " " + currency)
}
