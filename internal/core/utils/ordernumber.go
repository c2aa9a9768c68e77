package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// NewOrderNumber generates the human-facing transaction reference:
// "ORD" + unix millis + 3-digit random suffix. Gateways treat it as opaque.
func NewOrderNumber() string {
	return fmt.Sprintf("ORD%d%03d", time.Now().UnixMilli(), rand.Intn(1000))
}
