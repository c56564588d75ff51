package sales

import (
	"encoding/json"
	"testing"
)

func TestNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"integer", `7`, 7},
		{"float", `10.5`, 10.5},
		{"negative", `-3.25`, -3.25},
		{"numeric string", `"10.5"`, 10.5},
		{"padded numeric string", `" 42 "`, 42},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
		{"garbage string", `"abc"`, 0},
		{"boolean", `true`, 0},
		{"object", `{"a":1}`, 0},
		{"array", `[1]`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			if err := json.Unmarshal([]byte(tt.input), &n); err != nil {
				t.Fatalf("Unmarshal(%s) returned error: %v", tt.input, err)
			}
			if n.Float() != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, n.Float(), tt.want)
			}
		})
	}
}

func TestDatasetUnmarshal_DirtyValues(t *testing.T) {
	raw := `{
		"sellers": [{"id": "s1", "first_name": "Ada", "last_name": "Lovelace"}],
		"products": [{"sku": "X", "purchase_price": "5"}],
		"purchase_records": [{
			"seller_id": "s1",
			"items": [{"sku": "X", "quantity": 3, "sale_price": "10", "discount": null}]
		}]
	}`

	var ds Dataset
	if err := json.Unmarshal([]byte(raw), &ds); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}

	if len(ds.Sellers) != 1 || len(ds.Products) != 1 || len(ds.PurchaseRecords) != 1 {
		t.Fatalf("unexpected collection sizes: %d/%d/%d",
			len(ds.Sellers), len(ds.Products), len(ds.PurchaseRecords))
	}
	if got := ds.Products[0].PurchasePrice.Float(); got != 5 {
		t.Errorf("purchase_price = %v, want 5", got)
	}

	item := ds.PurchaseRecords[0].Items[0]
	if item.SalePrice.Float() != 10 {
		t.Errorf("sale_price = %v, want 10", item.SalePrice.Float())
	}
	if item.Discount.Float() != 0 {
		t.Errorf("discount = %v, want 0", item.Discount.Float())
	}
}

func TestSellerDisplayName(t *testing.T) {
	tests := []struct {
		name   string
		seller Seller
		want   string
	}{
		{"both names", Seller{FirstName: "Ada", LastName: "Lovelace"}, "Ada Lovelace"},
		{"first only", Seller{FirstName: "Ada"}, "Ada"},
		{"last only", Seller{LastName: "Lovelace"}, "Lovelace"},
		{"neither", Seller{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.seller.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}
