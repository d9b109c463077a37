package service

import (
	"bytes"
	"fmt"

	"islatours/pkg/model"
	"islatours/pkg/notify"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// RenderReceipt draws an A4 booking receipt with a QR code that links back
// to the confirmation page.
func RenderReceipt(receipt *model.BookingReceipt, confirmationURL string) ([]byte, error) {
	b := receipt.Booking

	qrPNG, err := qrcode.Encode(confirmationURL, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encoding receipt QR code: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Booking "+b.ID, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr("Private Tour Booking"))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	rows := [][2]string{
		{"Booking", b.ID},
		{"Status", b.Status},
		{"Tour", b.PrivateTourName},
		{"Date", b.TourDate},
		{"Guest", b.FirstName + " " + b.LastName},
		{"Email", b.Email},
		{"Phone", b.Phone},
		{"Adults", fmt.Sprintf("%d", b.Adults)},
		{"Children", fmt.Sprintf("%d", b.Children)},
	}
	if b.Hotel != "" {
		rows = append(rows, [2]string{"Hotel", b.Hotel})
	}
	for _, row := range rows {
		pdf.CellFormat(35, 8, tr(row[0]+":"), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, tr(row[1]), "", 1, "L", false, 0, "")
	}

	if len(receipt.Options) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, "Additional options")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 12)
		for _, o := range receipt.Options {
			pdf.CellFormat(120, 8, tr(o.Name), "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 8, "$"+notify.Money(o.Price), "", 1, "R", false, 0, "")
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Total: $"+notify.Money(b.TotalPrice), "T", 1, "R", false, 0, "")

	if b.Comments != "" {
		pdf.Ln(2)
		pdf.SetFont("Arial", "I", 10)
		pdf.MultiCell(0, 6, tr(b.Comments), "", "L", false)
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 20, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering receipt: %w", err)
	}
	return buf.Bytes(), nil
}
