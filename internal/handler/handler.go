// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/doltonsedward/toraja-hillstop/internal/booking"
	"github.com/doltonsedward/toraja-hillstop/internal/model"
	"github.com/doltonsedward/toraja-hillstop/internal/service"
)

// BookingHandler holds all HTTP handlers for the booking API.
type BookingHandler struct {
	svc *service.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20) // 1 MB limit
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// ─── Handlers ─────────────────────────────────────────────────────────────────

// SubmitBooking handles POST /api/bookings
// Runs the full submit flow and returns the WhatsApp deep link for the
// browser to open.
func (h *BookingHandler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	var req model.BookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.svc.Submit(r.Context(), &req)
	if err != nil {
		var verr *booking.ValidationError
		switch {
		case errors.As(err, &verr):
			writeError(w, http.StatusBadRequest, verr.Reason)
		case errors.Is(err, service.ErrSubmitInProgress):
			writeError(w, http.StatusConflict, "Pemesanan sedang diproses. Mohon tunggu.")
		default:
			// Anything unexpected surfaces as a generic failure.
			writeError(w, http.StatusInternalServerError, "Terjadi kesalahan. Mohon coba lagi.")
		}
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// ListRooms handles GET /api/rooms
// Returns the static room catalog.
func (h *BookingHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms := h.svc.Rooms()
	if rooms == nil {
		rooms = []model.Room{}
	}
	writeJSON(w, http.StatusOK, rooms)
}

// dateRangeRequest carries the picker's current selection plus the
// clicked day. Empty date strings mean "not set".
type dateRangeRequest struct {
	CheckInDate  string `json:"check_in_date,omitempty"`
	CheckOutDate string `json:"check_out_date,omitempty"`
	Clicked      string `json:"clicked"`
}

type dateRangeResponse struct {
	State        string `json:"state"`
	CheckInDate  string `json:"check_in_date,omitempty"`
	CheckOutDate string `json:"check_out_date,omitempty"`
}

// DateRangeClick handles POST /api/daterange
// Applies one calendar click to the two-click range picker and returns
// the next selection. The picker state lives in the page; this
// endpoint is a pure transition function.
func (h *BookingHandler) DateRangeClick(w http.ResponseWriter, r *http.Request) {
	var req dateRangeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	clicked, err := time.Parse(booking.DateLayout, req.Clicked)
	if err != nil {
		writeError(w, http.StatusBadRequest, "clicked must be a YYYY-MM-DD date")
		return
	}

	sel := booking.RangeSelection{}
	if req.CheckInDate != "" {
		if sel.CheckIn, err = time.Parse(booking.DateLayout, req.CheckInDate); err != nil {
			writeError(w, http.StatusBadRequest, "check_in_date must be a YYYY-MM-DD date")
			return
		}
	}
	if req.CheckOutDate != "" {
		if sel.CheckOut, err = time.Parse(booking.DateLayout, req.CheckOutDate); err != nil {
			writeError(w, http.StatusBadRequest, "check_out_date must be a YYYY-MM-DD date")
			return
		}
	}

	next := sel.Click(clicked)

	resp := dateRangeResponse{State: next.State().String()}
	if !next.CheckIn.IsZero() {
		resp.CheckInDate = next.CheckIn.Format(booking.DateLayout)
	}
	if !next.CheckOut.IsZero() {
		resp.CheckOutDate = next.CheckOut.Format(booking.DateLayout)
	}
	writeJSON(w, http.StatusOK, resp)
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
