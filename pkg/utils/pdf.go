package utils

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
)

// PDFRenderer is the PDF-rendering collaborator: arbitrary text in, document bytes out.
type PDFRenderer interface {
	Render(text string) ([]byte, error)
}

type FPDFRenderer struct {
	FontSize   float64
	LineHeight float64
}

func NewFPDFRenderer() *FPDFRenderer {
	return &FPDFRenderer{FontSize: 14, LineHeight: 8}
}

func (r *FPDFRenderer) Render(text string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", r.FontSize)

	for _, line := range strings.Split(text, "\n") {
		safe, err := ToLatin1(line)
		if err != nil {
			return nil, err
		}
		pdf.MultiCell(0, r.LineHeight, safe, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// ToLatin1 replaces every rune the core PDF fonts cannot encode with '?'
// and returns the Latin-1 byte string.
func ToLatin1(s string) (string, error) {
	replaced := strings.Map(func(r rune) rune {
		if r > 0xFF {
			return '?'
		}
		return r
	}, s)
	return charmap.ISO8859_1.NewEncoder().String(replaced)
}

// PlanFileName is the download name offered for an exported itinerary.
func PlanFileName(city string) string {
	return fmt.Sprintf("%s_AI_TravelPlan.pdf", city)
}
