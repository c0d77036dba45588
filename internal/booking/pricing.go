package booking

import (
	"fmt"
	"time"

	"github.com/doltonsedward/toraja-hillstop/internal/catalog"
	"github.com/doltonsedward/toraja-hillstop/internal/model"
)

// Nights returns the stay duration in whole calendar days. Both
// arguments are truncated to their date before subtraction, so the
// result is independent of any time-of-day component. Inverted or
// same-day ranges yield a non-positive count; Validate rejects those
// before pricing runs.
func Nights(checkIn, checkOut time.Time) int {
	return int(midnight(checkOut).Sub(midnight(checkIn)) / (24 * time.Hour))
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Pricer computes the estimated total for a stay. All prices are
// integer rupiah. Two mutually exclusive models exist; the deployment
// picks one at startup.
type Pricer interface {
	Total(req *model.BookingRequest, nights int) (int, error)
}

// PerGuestPricer charges a flat nightly rate per person:
// total = rate x guests x nights.
type PerGuestPricer struct {
	Rate int
}

func (p PerGuestPricer) Total(req *model.BookingRequest, nights int) (int, error) {
	guests := req.NumberOfGuests
	if guests < 1 {
		guests = 1
	}
	return p.Rate * guests * nights, nil
}

// PerRoomPricer charges each requested room its catalog nightly rate:
// total = room rate x rooms x nights. A request without a room ID uses
// the catalog default.
type PerRoomPricer struct {
	Catalog *catalog.Catalog
}

func (p PerRoomPricer) Total(req *model.BookingRequest, nights int) (int, error) {
	room := p.Catalog.Default()
	if req.RoomID != "" {
		r, err := p.Catalog.ByID(req.RoomID)
		if err != nil {
			return 0, fmt.Errorf("price room %q: %w", req.RoomID, err)
		}
		room = r
	}

	rooms := req.NumberOfRooms
	if rooms < 1 {
		rooms = 1
	}
	return room.PricePerNight * rooms * nights, nil
}
