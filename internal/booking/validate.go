// Package booking implements the booking-intent logic: draft
// validation, stay duration, pricing, and the date-range picker state
// machine. Everything here is pure; network effects live in the
// service and store layers.
package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/doltonsedward/toraja-hillstop/internal/model"
)

// DateLayout is the ISO calendar-date format used on the wire.
const DateLayout = "2006-01-02"

// ValidationError reports a rejected form field with a user-facing
// message. The messages match the site's operating language.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Stay is a validated date range.
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
	Nights   int
}

// Validate checks a booking request, failing fast on the first broken
// rule. On success it returns the parsed stay with the night count
// already computed. Rules, in order: non-empty name, non-empty phone,
// both dates present and well-formed, checkout strictly after checkin.
func Validate(req *model.BookingRequest) (Stay, error) {
	if strings.TrimSpace(req.GuestName) == "" {
		return Stay{}, &ValidationError{Field: "guest_name", Reason: "Mohon isikan nama Anda."}
	}
	if strings.TrimSpace(req.GuestPhone) == "" {
		return Stay{}, &ValidationError{Field: "guest_phone", Reason: "Mohon isikan nomor WhatsApp Anda."}
	}
	if req.CheckInDate == "" || req.CheckOutDate == "" {
		return Stay{}, &ValidationError{Field: "dates", Reason: "Mohon pilih tanggal check-in dan check-out."}
	}

	checkIn, err := time.Parse(DateLayout, req.CheckInDate)
	if err != nil {
		return Stay{}, &ValidationError{Field: "check_in_date", Reason: "Mohon pilih tanggal check-in dan check-out."}
	}
	checkOut, err := time.Parse(DateLayout, req.CheckOutDate)
	if err != nil {
		return Stay{}, &ValidationError{Field: "check_out_date", Reason: "Mohon pilih tanggal check-in dan check-out."}
	}

	if !checkOut.After(checkIn) {
		return Stay{}, &ValidationError{Field: "check_out_date", Reason: "Tanggal check-out harus setelah check-in."}
	}

	return Stay{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Nights:   Nights(checkIn, checkOut),
	}, nil
}
