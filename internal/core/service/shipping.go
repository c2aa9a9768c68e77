package service

import "github.com/govalues/decimal"

// cities served by the shop's own couriers ship free; everywhere else pays
// the flat provincial surcharge
var freeShippingCities = map[string]bool{
	"Ha Noi":      true,
	"Ho Chi Minh": true,
	"Da Nang":     true,
}

var provincialSurcharge = decimal.MustNew(30000, 0)

// ShippingFee is a pure function of the destination city. No I/O, computed
// once at checkout and frozen into the order.
func ShippingFee(city string) decimal.Decimal {
	if freeShippingCities[city] {
		return decimal.Zero
	}
	return provincialSurcharge
}
