// Package sales defines the raw input collections for sales analysis:
// sellers, products, and purchase records.
package sales

import (
	"math"
	"strconv"
	"strings"
)

// Number is a float64 that tolerates dirty input. JSON numbers, numeric
// strings, null, and malformed values all decode without error; anything
// that is not a finite number decodes as 0. Aggregation never fails on a
// single dirty field.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	*n = 0

	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	*n = Number(f)
	return nil
}

// Float returns the underlying float64.
func (n Number) Float() float64 {
	return float64(n)
}

// Seller is one entry of the input seller collection. Identity is ID;
// entries with an empty ID are not indexed.
type Seller struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// DisplayName returns the seller's human-readable name, "first last" with
// missing parts dropped.
func (s Seller) DisplayName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// Product is one entry of the product catalog. Identity is SKU; entries
// with an empty SKU are not indexed, and duplicate SKUs are last-write-wins.
type Product struct {
	SKU           string `json:"sku"`
	PurchasePrice Number `json:"purchase_price"`
}

// LineItem is one product entry within a purchase record. Items with an
// empty SKU are not counted. Discount is a percentage in [0, 100].
type LineItem struct {
	SKU       string `json:"sku"`
	Quantity  Number `json:"quantity"`
	SalePrice Number `json:"sale_price"`
	Discount  Number `json:"discount"`
}

// PurchaseRecord is one seller transaction with its ordered line items.
// Records with an empty seller ID are not counted.
type PurchaseRecord struct {
	SellerID string     `json:"seller_id"`
	Items    []LineItem `json:"items"`
}

// Dataset bundles the three input collections of an analysis run.
type Dataset struct {
	Sellers         []Seller         `json:"sellers"`
	Products        []Product        `json:"products"`
	PurchaseRecords []PurchaseRecord `json:"purchase_records"`
}
