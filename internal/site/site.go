// Package site renders the guesthouse marketing pages: the landing
// page (hero, amenities, gallery, location) and the booking form page.
// Templates are embedded; rendered pages are static per process, so
// the landing page is served from a short-TTL cache.
package site

import (
	"bytes"
	"embed"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/karlseguin/ccache/v3"

	"github.com/doltonsedward/toraja-hillstop/internal/catalog"
	"github.com/doltonsedward/toraja-hillstop/internal/model"
	"github.com/doltonsedward/toraja-hillstop/internal/whatsapp"
)

//go:embed templates/*.html
var templateFS embed.FS

// tawkSrc is the Tawk.to live-chat widget loader for the property.
const tawkSrc = "https://embed.tawk.to/6972ad1a934bbd198163ee96/1jfjv8clr"

// mapEmbedURL is the fixed Google Maps embed for the guesthouse
// location. Informational only.
const mapEmbedURL = "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d248.9984923566498!2d119.85251688256223!3d-3.101068139486976!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x2d93ed0013df036b%3A0xff228ef5c0b21818!2sToraja%20hill%20stop%20guesthouse!5e0!3m2!1sid!2sid!4v1767677878429!5m2!1sid!2sid"

const (
	landingCacheKey = "page:landing"
	pageCacheTTL    = 5 * time.Minute
)

// Site renders and serves the HTML pages.
type Site struct {
	tmpl           *template.Template
	cache          *ccache.Cache[[]byte]
	catalog        *catalog.Catalog
	whatsAppNumber string
	ratePerGuest   int
}

// pageData is the data handed to every template.
type pageData struct {
	Title          string
	Description    string
	WhatsAppNumber string
	RatePerGuest   int
	Rooms          []model.Room
	MapEmbedURL    template.URL
	TawkSrc        template.URL
	FormToken      string
	Year           int
}

// New parses the embedded templates and builds the page cache.
func New(cat *catalog.Catalog, whatsAppNumber string, ratePerGuest int) (*Site, error) {
	tmpl, err := template.New("site").Funcs(template.FuncMap{
		"rupiah": whatsapp.FormatRupiah,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Site{
		tmpl:           tmpl,
		cache:          ccache.New(ccache.Configure[[]byte]().MaxSize(16)),
		catalog:        cat,
		whatsAppNumber: whatsAppNumber,
		ratePerGuest:   ratePerGuest,
	}, nil
}

func (s *Site) data(title, description string) pageData {
	return pageData{
		Title:          title,
		Description:    description,
		WhatsAppNumber: s.whatsAppNumber,
		RatePerGuest:   s.ratePerGuest,
		Rooms:          s.catalog.Rooms(),
		MapEmbedURL:    template.URL(mapEmbedURL),
		TawkSrc:        template.URL(tawkSrc),
		Year:           time.Now().Year(),
	}
}

func (s *Site) render(w http.ResponseWriter, name string, data pageData) ([]byte, bool) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}
	return buf.Bytes(), true
}

// Landing handles GET /
// The page has no per-request state, so the rendered bytes are cached.
func (s *Site) Landing(w http.ResponseWriter, r *http.Request) {
	if item := s.cache.Get(landingCacheKey); item != nil && !item.Expired() {
		writeHTML(w, item.Value())
		return
	}

	page, ok := s.render(w, "landing.html", s.data(
		"Toraja Hill Stop Guesthouse - Penginapan Nyaman di Tana Toraja",
		"Your comfortable sanctuary amidst the misty mountains and rich culture of Toraja.",
	))
	if !ok {
		return
	}

	s.cache.Set(landingCacheKey, page, pageCacheTTL)
	writeHTML(w, page)
}

// BookingPage handles GET /booking
// Each render embeds a fresh form token for the double-submit guard,
// so this page is never cached.
func (s *Site) BookingPage(w http.ResponseWriter, r *http.Request) {
	data := s.data(
		"Pesan Sekarang - Toraja Hill Stop Guesthouse",
		"Pesan kamar Anda sekarang di Toraja Hill Stop Guesthouse.",
	)
	data.FormToken = uuid.New().String()

	if page, ok := s.render(w, "booking.html", data); ok {
		writeHTML(w, page)
	}
}

func writeHTML(w http.ResponseWriter, page []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}
