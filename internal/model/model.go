// Package model defines the core domain types for the guesthouse
// booking flow.
package model

import "time"

// Booking lifecycle statuses as stored in the audit trail. The human
// operator advances bookings out of band; the site only ever writes
// the initial pending/unpaid pair.
const (
	StatusPending       = "pending"
	PaymentStatusUnpaid = "unpaid"
)

// BookingRequest is the payload submitted from the booking form. Dates
// are ISO calendar dates (YYYY-MM-DD). ClientToken identifies one
// rendered form instance so double submits can be rejected.
type BookingRequest struct {
	ClientToken    string `json:"client_token,omitempty"`
	GuestName      string `json:"guest_name"`
	GuestPhone     string `json:"guest_phone"`
	GuestEmail     string `json:"guest_email,omitempty"`
	CheckInDate    string `json:"check_in_date"`
	CheckOutDate   string `json:"check_out_date"`
	NumberOfGuests int    `json:"number_of_guests"`
	NumberOfRooms  int    `json:"number_of_rooms"`
	RoomID         string `json:"room_id,omitempty"`
}

// Booking is the record written to the external audit store. It is an
// append-only convenience trail, not the source of truth for
// availability.
type Booking struct {
	ID             string    `json:"id"`
	GuestName      string    `json:"guest_name"`
	GuestPhone     string    `json:"guest_phone"`
	GuestEmail     string    `json:"guest_email,omitempty"`
	CheckInDate    string    `json:"check_in_date"`
	CheckOutDate   string    `json:"check_out_date"`
	NumberOfGuests int       `json:"number_of_guests"`
	NumberOfRooms  int       `json:"number_of_rooms"`
	RoomID         string    `json:"room_id,omitempty"`
	TotalPrice     int       `json:"total_price"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"payment_status"`
	CreatedAt      time.Time `json:"created_at"`
}

// Room is one entry of the static room catalog. The catalog matches
// what is advertised on the site; it is not live inventory.
type Room struct {
	ID            string   `json:"id"`
	RoomNumber    string   `json:"room_number"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	MaxGuests     int      `json:"max_guests"`
	PricePerNight int      `json:"price_per_night"`
	Amenities     []string `json:"amenities"`
}

// SubmitResult summarises a successful submission. WhatsAppURL is the
// pre-filled deep link the browser opens; Stored reports whether the
// audit record made it to the external store (false is not an error).
type SubmitResult struct {
	BookingID   string `json:"booking_id"`
	Nights      int    `json:"nights"`
	TotalPrice  int    `json:"total_price"`
	WhatsAppURL string `json:"whatsapp_url"`
	Message     string `json:"message"`
	Stored      bool   `json:"stored"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
