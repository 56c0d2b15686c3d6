package order

import (
	"strconv"
	"strings"

	"github.com/jman2424/tariq-hala-bot/pkg/session"
)

// Subtotal sums cart prices best-effort. Prices are display strings like
// "£5.99" or "£3.99 (Out of stock)"; the currency sign is stripped and the
// leading number parsed. Entries that don't parse contribute 0 and are still
// listed in the cart.
func Subtotal(items []session.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += parsePrice(item.Price)
	}
	return total
}

func parsePrice(price string) float64 {
	s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(price), "£"))
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0
	}
	return v
}
