package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/samabhi804-sketch/trip-ai/store"

	"github.com/jung-kurt/gofpdf"
)

// GenerateTripPDF renders a trip summary and returns raw bytes (no filesystem
// needed).
func GenerateTripPDF(trip store.Trip) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "TripAI", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "AI-Powered Travel Planner", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Section Helper ───────────────────────────────────────
	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	// ── Trip Overview ─────────────────────────────────────────
	sectionHeader("Trip Overview")
	row("Title", trip.Title)
	row("Destination", trip.Destination)
	row("Dates", trip.Dates)
	row("Duration", trip.Duration)
	row("Travelers", fmt.Sprintf("%d", trip.Travelers))
	row("Status", trip.Status)
	row("Generated", time.Now().UTC().Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	// ── Flights ───────────────────────────────────────────────
	if len(trip.Flights) > 0 {
		sectionHeader("Flights")
		for _, f := range trip.Flights {
			row(fmt.Sprintf("%s %s", f.Airline, f.FlightNumber),
				fmt.Sprintf("%s %s (%s) -> %s %s (%s), %s",
					f.Departure.Airport, f.Departure.Time, f.Departure.Date,
					f.Arrival.Airport, f.Arrival.Time, f.Arrival.Date, f.Duration))
		}
		pdf.Ln(4)
	}

	// ── Itinerary ─────────────────────────────────────────────
	if len(trip.Itinerary) > 0 {
		sectionHeader("Itinerary")
		for _, day := range trip.Itinerary {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetTextColor(20, 20, 20)
			pdf.CellFormat(170, 7, fmt.Sprintf("Day %d - %s", day.Day, day.Date), "", 1, "L", false, 0, "")
			for _, act := range day.Activities {
				pdf.SetFont("Helvetica", "", 9)
				pdf.SetTextColor(60, 60, 60)
				line := fmt.Sprintf("%s  %s - %s", act.Time, act.Title, act.Location)
				if act.Price > 0 {
					line += fmt.Sprintf(" ($%.0f)", act.Price)
				}
				pdf.CellFormat(170, 6, "    "+line, "", 1, "L", false, 0, "")
			}
		}
		pdf.Ln(4)
	}

	// ── Bookings ──────────────────────────────────────────────
	if len(trip.Bookings) > 0 {
		sectionHeader("Bookings")
		for _, b := range trip.Bookings {
			row(b.Title, fmt.Sprintf("%s, $%.0f (%s)", b.Description, b.Price, b.Status))
		}
		pdf.Ln(4)
	}

	// ── Budget ────────────────────────────────────────────────
	sectionHeader("Budget")
	row("Budget", fmt.Sprintf("$%.0f", trip.Budget))
	row("Spent so far", fmt.Sprintf("$%.0f", trip.Spent))

	pdf.SetFillColor(212, 168, 67)
	pdf.SetTextColor(13, 24, 37)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(55, 9, "REMAINING", "", 0, "L", true, 0, "")
	pdf.CellFormat(115, 9, fmt.Sprintf("$%.0f", trip.Budget-trip.Spent), "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)

	// ── Footer ────────────────────────────────────────────────
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		"Generated by TripAI Travel Planner - Not a booking confirmation - Prices subject to change",
		"", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}
