package notify

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"
)

const DefaultSheet = "Bookings"

// RowAppender appends one row to a sheet.
type RowAppender func(ctx context.Context, row []any) error

// Sheets appends each booking as a row to a Google spreadsheet.
type Sheets struct {
	appendRow RowAppender
}

func NewSheets(ctx context.Context, serviceAccountFile, spreadsheetID, sheet string) (*Sheets, error) {
	if _, err := os.Stat(serviceAccountFile); err != nil {
		return nil, fmt.Errorf("service account json: %w", err)
	}
	srv, err := sheetsv4.NewService(ctx,
		option.WithCredentialsFile(serviceAccountFile),
		option.WithScopes(sheetsv4.SpreadsheetsScope),
	)
	if err != nil {
		return nil, err
	}

	return NewSheetsWithAppender(func(ctx context.Context, row []any) error {
		vr := &sheetsv4.ValueRange{Values: [][]any{row}}
		_, err := srv.Spreadsheets.Values.Append(spreadsheetID, sheet+"!A:Z", vr).
			ValueInputOption("RAW").
			InsertDataOption("INSERT_ROWS").
			Context(ctx).
			Do()
		return err
	}), nil
}

func NewSheetsWithAppender(appendRow RowAppender) *Sheets {
	return &Sheets{appendRow: appendRow}
}

func (s *Sheets) Name() string { return "sheets" }

func (s *Sheets) Notify(ctx context.Context, event BookingEvent) error {
	return s.appendRow(ctx, Row(event))
}

// Row is the spreadsheet layout: created, id, tour, date, guest, email, phone,
// country, adults, children, options, hotel, comments, total, status.
func Row(event BookingEvent) []any {
	b := event.Booking
	options := make([]string, len(event.Options))
	for i, o := range event.Options {
		options[i] = o.Name
	}
	return []any{
		b.CreatedAt.UTC().Format(time.RFC3339),
		b.ID,
		b.PrivateTourName,
		b.TourDate,
		strings.TrimSpace(b.FirstName + " " + b.LastName),
		b.Email,
		b.Phone,
		b.Country,
		b.Adults,
		b.Children,
		strings.Join(options, ", "),
		b.Hotel,
		b.Comments,
		b.TotalPrice,
		b.Status,
	}
}
