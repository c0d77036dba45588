// Package whatsapp renders the booking summary message and builds the
// wa.me deep link. Rendering is kept separate from link construction
// so the message text is testable on its own.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/doltonsedward/toraja-hillstop/internal/booking"
	"github.com/doltonsedward/toraja-hillstop/internal/model"
)

// displayDate renders dates the way the operator reads them in chat,
// e.g. "10 January 2024".
const displayDate = "2 January 2006"

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an integer rupiah amount with Indonesian
// thousand grouping, e.g. 400000 -> "Rp 400.000".
func FormatRupiah(amount int) string {
	return idPrinter.Sprintf("Rp %d", amount)
}

// Message renders the pre-filled chat text for a validated booking.
func Message(req *model.BookingRequest, stay booking.Stay, total int) string {
	guests := req.NumberOfGuests
	if guests < 1 {
		guests = 1
	}
	rooms := req.NumberOfRooms
	if rooms < 1 {
		rooms = 1
	}

	var b strings.Builder
	b.WriteString("Halo, saya mau pesan kamar di Toraja Hill Stop.\n\n")
	b.WriteString("*Data Tamu:*\n")
	fmt.Fprintf(&b, "Nama: %s\n", strings.TrimSpace(req.GuestName))
	fmt.Fprintf(&b, "Nomor WA: %s\n\n", strings.TrimSpace(req.GuestPhone))
	b.WriteString("*Detail Pemesanan:*\n")
	fmt.Fprintf(&b, "• Check-in: %s\n", stay.CheckIn.Format(displayDate))
	fmt.Fprintf(&b, "• Check-out: %s\n", stay.CheckOut.Format(displayDate))
	fmt.Fprintf(&b, "• Jumlah Malam: %d\n", stay.Nights)
	fmt.Fprintf(&b, "• Jumlah Tamu: %d\n", guests)
	fmt.Fprintf(&b, "• Jumlah Kamar: %d\n", rooms)
	fmt.Fprintf(&b, "• Estimasi Total: %s\n\n", FormatRupiah(total))
	b.WriteString("Apakah kamar tersedia?")
	return b.String()
}

// Link builds the deep link that opens a chat with the guesthouse
// number pre-filled with text. The number is the international form
// without "+".
func Link(number, text string) string {
	return "https://wa.me/" + number + "?text=" + escape(text)
}

// escape percent-encodes text for a query value. url.QueryEscape would
// encode spaces as "+", which some chat clients render literally, so
// spaces become %20 instead.
func escape(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
