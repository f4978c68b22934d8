package exports

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	"github.com/go-pdf/fpdf"
)

// IDCardData is the employee info printed on a generated ID card
type IDCardData struct {
	EmployeeID  string
	Name        string
	Designation string
	Department  string
	JoinDate    string
}

// IDCardPDF renders a CR80-sized ID card with the company letterhead and a QR
// code carrying the employee id
func IDCardPDF(lh Letterhead, card IDCardData) ([]byte, error) {
	qrCode, err := qr.Encode(card.EmployeeID, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	qrCode, err = barcode.Scale(qrCode, 240, 240)
	if err != nil {
		return nil, fmt.Errorf("scale qr: %w", err)
	}

	var qrBuf bytes.Buffer
	if err := png.Encode(&qrBuf, qrCode); err != nil {
		return nil, fmt.Errorf("render qr: %w", err)
	}

	// CR80 card: 85.6mm x 54mm
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "L",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 85.6, Ht: 54},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Header band
	pdf.SetFillColor(244, 121, 32)
	pdf.Rect(0, 0, 85.6, 12, "F")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(4, 3)
	pdf.CellFormat(0, 6, lh.CompanyName, "", 1, "L", false, 0, "")

	pdf.SetTextColor(30, 30, 30)
	pdf.SetXY(4, 16)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(52, 6, card.Name, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetX(4)
	pdf.CellFormat(52, 5, card.Designation, "", 1, "L", false, 0, "")
	pdf.SetX(4)
	pdf.CellFormat(52, 5, card.Department, "", 1, "L", false, 0, "")
	if card.JoinDate != "" {
		pdf.SetX(4)
		pdf.CellFormat(52, 5, "Since "+card.JoinDate, "", 1, "L", false, 0, "")
	}
	pdf.SetX(4)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(52, 5, "ID: "+card.EmployeeID, "", 1, "L", false, 0, "")

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("idcard-qr", opts, &qrBuf)
	pdf.ImageOptions("idcard-qr", 58, 16, 24, 24, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
