package services

import "testing"

func TestServicePriceCaseInsensitive(t *testing.T) {
	tests := []struct {
		name string
		want float64
	}{
		{"Oil Change", 49.99},
		{"oil change", 49.99},
		{"OIL CHANGE", 49.99},
		{"  Oil Change  ", 49.99},
		{"Brake Service", 149.99},
		{"Underwater Basket Weaving", DefaultServicePrice},
		{"", DefaultServicePrice},
	}
	for _, tt := range tests {
		if got := ServicePrice(tt.name); got != tt.want {
			t.Errorf("ServicePrice(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestQuoteForOilChange(t *testing.T) {
	q := QuoteFor("Oil Change")
	if q.Price != 49.99 {
		t.Fatalf("price = %v, want 49.99", q.Price)
	}
	if q.Tax != 4.00 {
		t.Errorf("tax = %v, want 4.00", q.Tax)
	}
	if q.Total != 53.99 {
		t.Errorf("total = %v, want 53.99", q.Total)
	}
}

func TestQuoteForUnknownServiceUsesDefault(t *testing.T) {
	q := QuoteFor("Flux Capacitor Repair")
	if q.Price != DefaultServicePrice {
		t.Fatalf("price = %v, want default %v", q.Price, DefaultServicePrice)
	}
	if q.Total <= q.Price {
		t.Errorf("total %v should exceed price %v", q.Total, q.Price)
	}
}

func TestInvoiceNumber(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"a1b2c3d4-e5f6-7890-abcd-ef0123456789", "INV-A1B2C3D4"},
		{"abc", "INV-ABC"},
	}
	for _, tt := range tests {
		if got := InvoiceNumber(tt.id); got != tt.want {
			t.Errorf("InvoiceNumber(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
