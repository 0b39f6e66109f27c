package services

import (
	"math"
	"strings"
)

// TaxRate is applied on top of the listed price at checkout and on invoices.
const TaxRate = 0.08

// DefaultServicePrice is charged for service names not present in the table.
// An unmatched name is valid, not an error.
const DefaultServicePrice = 59.99

// servicePrices is the canonical price table. Lookup keys are lower-cased;
// both checkout math and finance invoicing read from this one table.
var servicePrices = map[string]float64{
	"oil change":           49.99,
	"tire rotation":        29.99,
	"brake service":        149.99,
	"engine diagnostic":    89.99,
	"battery replacement":  129.99,
	"ac service":           99.99,
	"wheel alignment":      79.99,
	"transmission service": 189.99,
	"full inspection":      119.99,
	"detailing":            149.99,
}

// ServicePrice looks up the price for a service name, case-insensitively.
func ServicePrice(name string) float64 {
	if p, ok := servicePrices[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p
	}
	return DefaultServicePrice
}

type Quote struct {
	Service string  `json:"service"`
	Price   float64 `json:"price"`
	Tax     float64 `json:"tax"`
	Total   float64 `json:"total"`
}

// QuoteFor computes the checkout total for a service. Tax and total are
// rounded to two decimals for display; the total is rounded from the
// unrounded sum, not from the rounded tax.
func QuoteFor(name string) Quote {
	price := ServicePrice(name)
	return Quote{
		Service: strings.TrimSpace(name),
		Price:   price,
		Tax:     round2(price * TaxRate),
		Total:   round2(price + price*TaxRate),
	}
}

// InvoiceNumber derives a display invoice number from a booking id prefix.
func InvoiceNumber(bookingID string) string {
	id := strings.ReplaceAll(bookingID, "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	return "INV-" + strings.ToUpper(id)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
