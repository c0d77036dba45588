package site

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/doltonsedward/toraja-hillstop/internal/catalog"
)

func newSite(t *testing.T) *Site {
	t.Helper()
	s, err := New(catalog.New(), "6281354617616", 100_000)
	if err != nil {
		t.Fatalf("site.New: %v", err)
	}
	return s
}

func get(t *testing.T, h http.HandlerFunc, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestLanding(t *testing.T) {
	s := newSite(t)

	w := get(t, s.Landing, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		"Toraja Hill Stop",
		"Experience Serenity",
		"wa.me/6281354617616",
		"google.com/maps/embed",
		"Galeri Kamar Kami",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("landing page missing %q", want)
		}
	}
}

func TestLandingIsCached(t *testing.T) {
	s := newSite(t)

	first := get(t, s.Landing, "/").Body.String()
	second := get(t, s.Landing, "/").Body.String()
	if first != second {
		t.Error("cached landing page should be byte-identical across requests")
	}
}

func TestBookingPageHasFreshToken(t *testing.T) {
	s := newSite(t)

	first := get(t, s.BookingPage, "/booking")
	if first.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", first.Code)
	}
	body := first.Body.String()
	if !strings.Contains(body, `name="client_token"`) {
		t.Fatal("booking page missing the client token field")
	}
	if !strings.Contains(body, "Pesan Kamar Anda") {
		t.Error("booking page missing the form heading")
	}

	// Each render carries a different token.
	second := get(t, s.BookingPage, "/booking").Body.String()
	if body == second {
		t.Error("booking page must not be cached: tokens should differ")
	}
}
