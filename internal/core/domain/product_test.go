package domain

import "testing"

func TestVariantBySKU(t *testing.T) {
	p := &Product{Variants: []Variant{
		{SKU: "SHIRT-S", Stock: 5},
		{SKU: "SHIRT-M", Stock: 7},
	}}

	v := p.VariantBySKU("SHIRT-M")
	if v == nil || v.Stock != 7 {
		t.Fatalf("VariantBySKU(SHIRT-M) = %+v", v)
	}

	// The returned pointer aliases the product's slice so stock writes stick.
	v.Stock = 1
	if p.Variants[1].Stock != 1 {
		t.Error("write through returned variant did not update product")
	}

	if p.VariantBySKU("SHIRT-XL") != nil {
		t.Error("unknown SKU should return nil")
	}
}

func TestHasDuplicateSKU(t *testing.T) {
	if HasDuplicateSKU([]Variant{{SKU: "A"}, {SKU: "B"}}) {
		t.Error("distinct SKUs flagged as duplicate")
	}
	if !HasDuplicateSKU([]Variant{{SKU: "A"}, {SKU: "B"}, {SKU: "A"}}) {
		t.Error("duplicate SKUs not detected")
	}
	if HasDuplicateSKU(nil) {
		t.Error("nil variants flagged as duplicate")
	}
}
