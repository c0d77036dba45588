// Package catalog holds the static room catalog. The guesthouse has
// three rooms; the list mirrors what is advertised on the site and is
// not a live inventory query.
package catalog

import (
	"errors"

	"github.com/doltonsedward/toraja-hillstop/internal/model"
)

// ErrRoomNotFound is returned when a room ID is not in the catalog.
var ErrRoomNotFound = errors.New("room not found")

var standardAmenities = []string{"wifi", "breakfast", "hot-shower", "ac", "parking"}

// Catalog is a fixed, read-only list of rooms.
type Catalog struct {
	rooms []model.Room
}

// New returns the catalog of the three guest rooms.
func New() *Catalog {
	return &Catalog{
		rooms: []model.Room{
			{
				ID:            "kamar-1",
				RoomNumber:    "1",
				Name:          "Kamar 1",
				Description:   "Cozy bedroom with pink and terracotta bedding, garden view.",
				MaxGuests:     2,
				PricePerNight: 350_000,
				Amenities:     standardAmenities,
			},
			{
				ID:            "kamar-2",
				RoomNumber:    "2",
				Name:          "Kamar 2",
				Description:   "Comfortable double room facing the misty hills.",
				MaxGuests:     2,
				PricePerNight: 350_000,
				Amenities:     standardAmenities,
			},
			{
				ID:            "kamar-3",
				RoomNumber:    "3",
				Name:          "Kamar 3",
				Description:   "Quiet room at the back, closest to the terrace.",
				MaxGuests:     2,
				PricePerNight: 350_000,
				Amenities:     standardAmenities,
			},
		},
	}
}

// Rooms returns all rooms in display order.
func (c *Catalog) Rooms() []model.Room {
	out := make([]model.Room, len(c.rooms))
	copy(out, c.rooms)
	return out
}

// ByID returns a single room or ErrRoomNotFound.
func (c *Catalog) ByID(id string) (*model.Room, error) {
	for i := range c.rooms {
		if c.rooms[i].ID == id {
			return &c.rooms[i], nil
		}
	}
	return nil, ErrRoomNotFound
}

// Default returns the room used when a request does not name one.
func (c *Catalog) Default() *model.Room {
	return &c.rooms[0]
}
