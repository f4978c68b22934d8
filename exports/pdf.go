package exports

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/go-pdf/fpdf"
)

// Letterhead is the fixed company header printed on every report page
type Letterhead struct {
	CompanyName string
	Address     string
	Phone       string
	Email       string
	LogoPath    string
}

// ReportPDF renders a table as a paginated A4 report with the company
// letterhead on each page and page numbers in the footer
func ReportPDF(lh Letterhead, t Table) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 14, 12)
	pdf.SetAutoPageBreak(true, 20)

	pdf.SetHeaderFunc(func() {
		if lh.LogoPath != "" {
			if _, err := os.Stat(lh.LogoPath); err == nil {
				pdf.ImageOptions(lh.LogoPath, 12, 10, 18, 0, false, fpdf.ImageOptions{}, 0, "")
			}
		}
		pdf.SetFont("Helvetica", "B", 15)
		pdf.SetXY(34, 12)
		pdf.CellFormat(0, 7, lh.CompanyName, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetX(34)
		contact := lh.Address
		if lh.Phone != "" {
			contact += "  |  " + lh.Phone
		}
		if lh.Email != "" {
			contact += "  |  " + lh.Email
		}
		pdf.CellFormat(0, 5, contact, "", 1, "L", false, 0, "")
		pdf.Ln(3)
		pdf.SetDrawColor(244, 121, 32)
		pdf.SetLineWidth(0.6)
		pdf.Line(12, pdf.GetY(), 198, pdf.GetY())
		pdf.Ln(5)
	})

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Generated %s  -  Page %d", time.Now().Format("2006-01-02"), pdf.PageNo()),
			"", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, t.Title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	colWidth := 186.0 / float64(len(t.Headers))

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(244, 121, 32)
	pdf.SetTextColor(255, 255, 255)
	for _, header := range t.Headers {
		pdf.CellFormat(colWidth, 7, header, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(30, 30, 30)
	fill := false
	pdf.SetFillColor(245, 245, 245)
	for _, row := range t.Rows {
		for _, value := range row {
			pdf.CellFormat(colWidth, 6, value, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
