package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/doltonsedward/toraja-hillstop/internal/model"
)

func sampleBooking() *model.Booking {
	return &model.Booking{
		ID:             "b7c9e1d0-0000-0000-0000-000000000001",
		GuestName:      "Budi Santoso",
		GuestPhone:     "6281234567890",
		CheckInDate:    "2024-01-10",
		CheckOutDate:   "2024-01-12",
		NumberOfGuests: 2,
		NumberOfRooms:  1,
		TotalPrice:     400_000,
		Status:         model.StatusPending,
		PaymentStatus:  model.PaymentStatusUnpaid,
		CreatedAt:      time.Date(2024, 1, 9, 12, 0, 0, 0, time.UTC),
	}
}

func TestSupabaseInsert(t *testing.T) {
	var got model.Booking
	var gotPath, gotAPIKey, gotAuth, gotPrefer string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		gotPrefer = r.Header.Get("Prefer")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	s := NewSupabase(srv.URL, "anon-key")
	if !s.Enabled() {
		t.Fatal("configured store must be enabled")
	}

	if err := s.Insert(context.Background(), sampleBooking()); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if gotPath != "/rest/v1/bookings" {
		t.Errorf("path = %q, want /rest/v1/bookings", gotPath)
	}
	if gotAPIKey != "anon-key" || gotAuth != "Bearer anon-key" {
		t.Errorf("auth headers = %q / %q", gotAPIKey, gotAuth)
	}
	if gotPrefer != "return=minimal" {
		t.Errorf("Prefer = %q, want return=minimal", gotPrefer)
	}

	if got.GuestName != "Budi Santoso" ||
		got.CheckInDate != "2024-01-10" ||
		got.CheckOutDate != "2024-01-12" ||
		got.NumberOfGuests != 2 ||
		got.TotalPrice != 400_000 ||
		got.Status != "pending" ||
		got.PaymentStatus != "unpaid" {
		t.Errorf("unexpected record shape: %+v", got)
	}
}

func TestSupabaseInsertOmitsEmptyEmail(t *testing.T) {
	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&raw)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	if err := NewSupabase(srv.URL, "k").Insert(context.Background(), sampleBooking()); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, present := raw["guest_email"]; present {
		t.Error("empty guest_email should be omitted from the payload")
	}
}

func TestSupabaseInsertErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"permission denied"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	err := NewSupabase(srv.URL, "bad-key").Insert(context.Background(), sampleBooking())
	if err == nil {
		t.Fatal("expected an error for a non-2xx response")
	}
}

func TestSupabaseInsertNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	err := NewSupabase(srv.URL, "k").Insert(context.Background(), sampleBooking())
	if err == nil {
		t.Fatal("expected a transport error")
	}
}

func TestDisabledStore(t *testing.T) {
	var d Disabled
	if d.Enabled() {
		t.Error("Disabled.Enabled() must be false")
	}
	if err := d.Insert(context.Background(), sampleBooking()); err != nil {
		t.Errorf("Disabled.Insert must be a no-op, got %v", err)
	}
}
