// Package service implements the booking submission orchestration
// between HTTP handlers and the audit store.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/doltonsedward/toraja-hillstop/internal/booking"
	"github.com/doltonsedward/toraja-hillstop/internal/catalog"
	"github.com/doltonsedward/toraja-hillstop/internal/model"
	"github.com/doltonsedward/toraja-hillstop/internal/store"
	"github.com/doltonsedward/toraja-hillstop/internal/whatsapp"
)

// ErrSubmitInProgress is returned when a form instance submits again
// while its first submission is still outstanding.
var ErrSubmitInProgress = errors.New("a submission for this form is already in progress")

// BookingService runs the submit flow: validate, price, best-effort
// audit write, message render, deep-link build.
type BookingService struct {
	store    store.AuditStore
	pricer   booking.Pricer
	catalog  *catalog.Catalog
	waNumber string

	// inflight tracks client tokens with an outstanding submission.
	inflight sync.Map
}

// NewBookingService constructs a BookingService with its dependencies.
func NewBookingService(
	auditStore store.AuditStore,
	pricer booking.Pricer,
	cat *catalog.Catalog,
	waNumber string,
) *BookingService {
	return &BookingService{
		store:    auditStore,
		pricer:   pricer,
		catalog:  cat,
		waNumber: waNumber,
	}
}

// Rooms returns the advertised room catalog.
func (s *BookingService) Rooms() []model.Room {
	return s.catalog.Rooms()
}

// Submit processes one booking attempt.
//
// The audit-store write is deliberately best-effort: the WhatsApp
// handoff is the real reservation path, so a failed insert is logged
// and the flow continues. Validation and pricing errors, by contrast,
// block submission before any network call happens. The in-flight
// guard is keyed by the form's client token and always released,
// whatever the outcome.
func (s *BookingService) Submit(ctx context.Context, req *model.BookingRequest) (*model.SubmitResult, error) {
	if tok := req.ClientToken; tok != "" {
		if _, busy := s.inflight.LoadOrStore(tok, struct{}{}); busy {
			return nil, ErrSubmitInProgress
		}
		defer s.inflight.Delete(tok)
	}

	stay, err := booking.Validate(req)
	if err != nil {
		return nil, err
	}

	total, err := s.pricer.Total(req, stay.Nights)
	if err != nil {
		return nil, fmt.Errorf("price booking: %w", err)
	}

	rec := &model.Booking{
		ID:             uuid.New().String(),
		GuestName:      strings.TrimSpace(req.GuestName),
		GuestPhone:     strings.TrimSpace(req.GuestPhone),
		GuestEmail:     strings.TrimSpace(req.GuestEmail),
		CheckInDate:    req.CheckInDate,
		CheckOutDate:   req.CheckOutDate,
		NumberOfGuests: max(req.NumberOfGuests, 1),
		NumberOfRooms:  max(req.NumberOfRooms, 1),
		RoomID:         req.RoomID,
		TotalPrice:     total,
		Status:         model.StatusPending,
		PaymentStatus:  model.PaymentStatusUnpaid,
		CreatedAt:      time.Now().UTC(),
	}

	stored := false
	if s.store.Enabled() {
		if err := s.store.Insert(ctx, rec); err != nil {
			log.Printf("audit store: insert booking %s failed (non-fatal): %v", rec.ID, err)
		} else {
			stored = true
		}
	}

	msg := whatsapp.Message(req, stay, total)

	return &model.SubmitResult{
		BookingID:   rec.ID,
		Nights:      stay.Nights,
		TotalPrice:  total,
		WhatsAppURL: whatsapp.Link(s.waNumber, msg),
		Message:     msg,
		Stored:      stored,
	}, nil
}
