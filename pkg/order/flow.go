// Package order implements the cart and checkout state machine layered on
// top of sessions. There is no order identifier, receipt or fulfillment
// call: "confirmation" is a formatted acknowledgement and the collected
// details live only as long as the session does.
package order

import (
	"fmt"
	"strings"

	"github.com/jman2424/tariq-hala-bot/pkg/session"
	"github.com/jman2424/tariq-hala-bot/pkg/shop"
)

// ProductSearcher finds catalog entries for an "add" command. The shop
// Resolver satisfies this.
type ProductSearcher interface {
	SearchProducts(query string) []shop.Entry
}

type Flow struct {
	search ProductSearcher
}

func NewFlow(search ProductSearcher) *Flow {
	return &Flow{search: search}
}

// Handle runs one message through the state machine. handled is false when
// the message is neither an order command nor stage input, and the caller
// should resolve it normally. Command keywords take priority over stage
// input, so "checkout" typed while a name is awaited still acts as checkout.
func (f *Flow) Handle(sess *session.Session, msg string) (reply string, handled bool) {
	msg = strings.TrimSpace(msg)
	low := strings.ToLower(msg)

	switch {
	case strings.HasPrefix(low, "add "):
		return f.addItem(sess, strings.TrimSpace(msg[len("add "):])), true
	case low == "show cart" || low == "view cart":
		return f.showCart(sess), true
	case low == "checkout":
		return f.checkout(sess), true
	}

	if ord := sess.Order; ord != nil && ord.Stage != session.StageNone {
		return f.collectField(ord, msg), true
	}

	return "", false
}

// addItem appends the first fuzzy match to the cart. No match leaves the
// cart and stage untouched.
func (f *Flow) addItem(sess *session.Session, query string) string {
	matches := f.search.SearchProducts(query)
	if len(matches) == 0 {
		return fmt.Sprintf("❌ Sorry, couldn't find %q in our catalog.\nTry 'menu' to browse categories.", query)
	}

	item := matches[0]
	ord := sess.EnsureOrder()
	ord.Cart = append(ord.Cart, session.CartItem{Name: item.Name, Price: item.Price})

	return fmt.Sprintf("✅ Added %s (%s) to your cart.\nType 'show cart' to review or 'checkout' to order.", item.Name, item.Price)
}

func (f *Flow) showCart(sess *session.Session) string {
	if sess.Order == nil || len(sess.Order.Cart) == 0 {
		return "🛒 Your cart is empty. Add items with: add <product name>"
	}

	var b strings.Builder
	b.WriteString("🛒 Your cart:\n")
	for _, item := range sess.Order.Cart {
		fmt.Fprintf(&b, "- %s: %s\n", item.Name, item.Price)
	}
	fmt.Fprintf(&b, "\nSubtotal: £%.2f", Subtotal(sess.Order.Cart))
	return b.String()
}

// checkout prompts for the next missing delivery detail, or confirms and
// clears the order once all three are collected.
func (f *Flow) checkout(sess *session.Session) string {
	ord := sess.Order
	if ord == nil || len(ord.Cart) == 0 {
		return "🛒 Your cart is empty, nothing to check out. Add items with: add <product name>"
	}

	switch {
	case ord.Name == "":
		ord.Stage = session.StageAwaitingName
		return "📝 Almost there! What name should we put on the order?"
	case ord.Address == "":
		ord.Stage = session.StageAwaitingAddress
		return "🏠 What's the delivery address?"
	case ord.Phone == "":
		ord.Stage = session.StageAwaitingPhone
		return "📞 And a contact phone number?"
	default:
		reply := fmt.Sprintf(
			"✅ Order confirmed!\n\nName: %s\nAddress: %s\nPhone: %s\nTotal: £%.2f\n\nThank you for shopping with Tariq Halal Meats! 🕌",
			ord.Name, ord.Address, ord.Phone, Subtotal(ord.Cart),
		)
		sess.Order = nil
		return reply
	}
}

func (f *Flow) collectField(ord *session.Order, msg string) string {
	switch ord.Stage {
	case session.StageAwaitingName:
		ord.Name = msg
		ord.Stage = session.StageAwaitingAddress
		return "🏠 Thanks! What's the delivery address?"
	case session.StageAwaitingAddress:
		ord.Address = msg
		ord.Stage = session.StageAwaitingPhone
		return "📞 And a contact phone number?"
	default:
		ord.Phone = msg
		ord.Stage = session.StageNone
		return "👍 All set. Type 'checkout' to confirm your order."
	}
}
