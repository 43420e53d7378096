// Package receipt renders booking quotes as printable PDF receipts.
// Each receipt carries a QR code of the quote reference so staff can look the enquiry up.
package receipt

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"github.com/aaplitrip/trip-catalog/internal/domain"
	"github.com/aaplitrip/trip-catalog/internal/infrastructure/timeutil"
)

// Defaults applied when Config leaves a field empty.
const (
	DefaultTitle  = "Booking Receipt"
	DefaultIssuer = "Aapli Trip"

	// DefaultQRSize is the edge of the QR image in pixels
	DefaultQRSize = 256

	qrImageName = "reference-qr"
	qrEdgeMM    = 40.0
)

// ErrNilQuote is returned when Render is called without a quote.
var ErrNilQuote = errors.New("receipt: nil quote")

// Config holds the receipt layout options.
type Config struct {
	// Title is printed as the page heading
	Title string

	// Issuer is printed in the header and footer
	Issuer string

	// QRSize is the QR image edge in pixels
	QRSize int

	// FormatAmount renders rupee amounts; core PDF fonts cannot draw the rupee sign,
	// so a leading "₹" is replaced by "INR "
	FormatAmount func(float64) string

	// Clock stamps the issue time; nil uses the system time
	Clock timeutil.Clock
}

// Renderer renders quotes to PDF.
type Renderer struct {
	title        string
	issuer       string
	qrSize       int
	formatAmount func(float64) string
	clock        timeutil.Clock
}

// NewRenderer creates a Renderer, filling unset Config fields with defaults.
func NewRenderer(cfg Config) *Renderer {
	r := &Renderer{
		title:        cfg.Title,
		issuer:       cfg.Issuer,
		qrSize:       cfg.QRSize,
		formatAmount: cfg.FormatAmount,
		clock:        cfg.Clock,
	}
	if r.title == "" {
		r.title = DefaultTitle
	}
	if r.issuer == "" {
		r.issuer = DefaultIssuer
	}
	if r.qrSize <= 0 {
		r.qrSize = DefaultQRSize
	}
	if r.formatAmount == nil {
		r.formatAmount = func(f float64) string {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
	}
	if r.clock == nil {
		r.clock = timeutil.NewRealClock()
	}
	return r
}

// Render produces the PDF bytes of a receipt for quote.
func (r *Renderer) Render(quote *domain.BookingQuote) ([]byte, error) {
	if quote == nil {
		return nil, ErrNilQuote
	}

	qrPNG, err := qrcode.Encode(quote.Reference, qrcode.Medium, r.qrSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(r.title+" "+quote.Reference, true)
	pdf.SetCreator(r.issuer, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, tr(r.issuer))
	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, tr(r.title))
	pdf.Ln(14)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(qrImageName, imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions(qrImageName, 160, 15, qrEdgeMM, qrEdgeMM, false, imageOpts, 0, "")

	pdf.SetFont("Arial", "", 12)
	for _, row := range r.rows(quote) {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(50, 8, tr(row[0]), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.CellFormat(0, 8, tr(row[1]), "", 1, "L", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(50, 10, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 10, tr(r.amount(quote.Budget)), "T", 1, "L", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 9)
	pdf.MultiCell(0, 5, tr(fmt.Sprintf(
		"Status: %s. This receipt records an enquiry; %s confirms the booking separately. Issued %s.",
		quote.Status, r.issuer, r.clock.Now().Format(time.RFC1123),
	)), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// rows lists the label/value pairs printed in the receipt body.
func (r *Renderer) rows(q *domain.BookingQuote) [][2]string {
	rows := [][2]string{
		{"Reference", q.Reference},
		{"Destination", q.DestinationName},
		{"Country", q.Country},
		{"Joining point", orDash(q.Source)},
		{"Travel mode", string(q.TravelMode)},
		{"Duration", orDash(q.Duration)},
		{"Travel dates", q.StartDate + " to " + q.EndDate},
		{"Travellers", strconv.Itoa(q.Persons)},
		{"Price per person", r.amount(q.UnitPrice)},
	}
	if q.SelectedVariant != nil {
		rows = append(rows, [2]string{"Option", q.SelectedVariant.SourceCity + " by " + string(q.SelectedVariant.TravelMode)})
	}
	return rows
}

func (r *Renderer) amount(f float64) string {
	s := r.formatAmount(f)
	if rest, ok := strings.CutPrefix(s, "₹"); ok {
		return "INR " + rest
	}
	return s
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
