package domain

import "github.com/govalues/decimal"

// CartSnapshot is the cart state handed over at checkout. Items and prices
// are already validated by the cart service; the order freezes them as-is.
type CartSnapshot struct {
	Items    []OrderItem     `json:"items"`
	Discount decimal.Decimal `json:"discount"`
}
