// Package report defines the per-seller performance report model and its
// JSON persistence.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// TopProduct is one entry of a seller's best-selling product list.
type TopProduct struct {
	SKU      string  `json:"sku"`
	Quantity float64 `json:"quantity"`
}

// SellerReport is the final per-seller output record. Revenue, Profit, and
// Bonus are rounded to 2 decimal places. TopProducts is ordered by quantity
// descending, SKU ascending on ties.
type SellerReport struct {
	SellerID    string       `json:"seller_id"`
	Name        string       `json:"name"`
	Revenue     float64      `json:"revenue"`
	Profit      float64      `json:"profit"`
	SalesCount  int          `json:"sales_count"`
	TopProducts []TopProduct `json:"top_products"`
	Bonus       float64      `json:"bonus"`
}

// Envelope wraps one finished report run with identifying metadata.
type Envelope struct {
	ReportID    string         `json:"report_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	SellerCount int            `json:"seller_count"`
	Sellers     []SellerReport `json:"sellers"`
}

// NewEnvelope wraps sellers in an envelope with a fresh report ID.
func NewEnvelope(sellers []SellerReport) Envelope {
	return Envelope{
		ReportID:    uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		SellerCount: len(sellers),
		Sellers:     sellers,
	}
}

// Save writes an envelope to a JSON file.
func Save(path string, env Envelope) error {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// Load reads an envelope from a JSON file.
func Load(path string) (Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Envelope{}, fmt.Errorf("read report: %w", err)
	}

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("parse report: %w", err)
	}

	return env, nil
}
