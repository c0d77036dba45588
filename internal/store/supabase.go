package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/doltonsedward/toraja-hillstop/internal/model"
)

// bookingsPath is the PostgREST route for the bookings table.
const bookingsPath = "/rest/v1/bookings"

// Supabase writes booking records through the Supabase PostgREST API
// using the anon key. It only ever inserts.
type Supabase struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewSupabase builds a Supabase store. Pass the project URL (e.g.
// https://xyz.supabase.co) and the anon/publishable key.
func NewSupabase(baseURL, apiKey string) *Supabase {
	return &Supabase{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *Supabase) Enabled() bool { return true }

// Insert appends one booking record. PostgREST responds 201 on
// success; anything else is surfaced as an error for the caller to
// log.
func (s *Supabase) Insert(ctx context.Context, b *model.Booking) error {
	body, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encode booking: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+bookingsPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build insert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Prefer", "return=minimal")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("insert booking: status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}
