package order

import (
	"testing"

	"github.com/jman2424/tariq-hala-bot/pkg/session"
	"github.com/jman2424/tariq-hala-bot/pkg/shop"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlow(t *testing.T) *Flow {
	t.Helper()
	return NewFlow(shop.NewResolver(shop.DefaultCatalog(), shop.DefaultStoreInfo()))
}

func TestAddMatchGrowsCartByOne(t *testing.T) {
	f := newTestFlow(t)
	sess := &session.Session{SenderID: "whatsapp:+447700900000"}

	reply, handled := f.Handle(sess, "add beef mince")
	require.True(t, handled)
	assert.Contains(t, reply, "Beef Mince")

	require.NotNil(t, sess.Order)
	require.Len(t, sess.Order.Cart, 1)
	assert.Equal(t, "Beef Mince", sess.Order.Cart[0].Name)
	assert.Equal(t, "£12.99", sess.Order.Cart[0].Price)
}

func TestAddNoMatchLeavesCartUnchanged(t *testing.T) {
	f := newTestFlow(t)
	sess := &session.Session{}
	f.Handle(sess, "add chicken breast")
	require.Len(t, sess.Order.Cart, 1)

	reply, handled := f.Handle(sess, "add flux capacitor")
	require.True(t, handled)
	assert.Contains(t, reply, "couldn't find")
	assert.Len(t, sess.Order.Cart, 1)
	assert.Equal(t, session.StageNone, sess.Order.Stage)
}

func TestCheckoutOnEmptyCartDoesNotAdvanceStage(t *testing.T) {
	f := newTestFlow(t)
	sess := &session.Session{}

	reply, handled := f.Handle(sess, "checkout")
	require.True(t, handled)
	assert.Contains(t, reply, "empty")
	assert.Nil(t, sess.Order)
}

func TestFullCheckoutFlow(t *testing.T) {
	f := newTestFlow(t)
	sess := &session.Session{}

	_, handled := f.Handle(sess, "add chicken breast")
	require.True(t, handled)

	reply, _ := f.Handle(sess, "checkout")
	assert.Contains(t, reply, "name")
	assert.Equal(t, session.StageAwaitingName, sess.Order.Stage)

	reply, _ = f.Handle(sess, "Aisha Khan")
	assert.Contains(t, reply, "address")
	assert.Equal(t, session.StageAwaitingAddress, sess.Order.Stage)
	assert.Equal(t, "Aisha Khan", sess.Order.Name)

	reply, _ = f.Handle(sess, "12 High Street, London")
	assert.Contains(t, reply, "phone")
	assert.Equal(t, session.StageAwaitingPhone, sess.Order.Stage)

	reply, _ = f.Handle(sess, "07700 900123")
	assert.Contains(t, reply, "checkout")
	assert.Equal(t, session.StageNone, sess.Order.Stage)
	assert.Equal(t, "07700 900123", sess.Order.Phone)

	// the confirming checkout clears the whole order state
	reply, _ = f.Handle(sess, "checkout")
	assert.Contains(t, reply, "Order confirmed")
	assert.Contains(t, reply, "Aisha Khan")
	assert.Contains(t, reply, "12 High Street, London")
	assert.Contains(t, reply, "07700 900123")
	assert.Nil(t, sess.Order)
}

func TestCommandsTakePriorityOverStageInput(t *testing.T) {
	f := newTestFlow(t)
	sess := &session.Session{}

	f.Handle(sess, "add chicken breast")
	f.Handle(sess, "checkout")
	require.Equal(t, session.StageAwaitingName, sess.Order.Stage)

	reply, handled := f.Handle(sess, "show cart")
	require.True(t, handled)
	assert.Contains(t, reply, "Chicken Breast")
	assert.Empty(t, sess.Order.Name, "command must not be captured as a name")
}

func TestShowCartRendersSubtotal(t *testing.T) {
	f := newTestFlow(t)
	sess := &session.Session{}

	f.Handle(sess, "add chicken breast") // £9.99
	f.Handle(sess, "add beef mince")     // £12.99

	reply, handled := f.Handle(sess, "show cart")
	require.True(t, handled)
	assert.Contains(t, reply, "- Chicken Breast: £9.99")
	assert.Contains(t, reply, "- Beef Mince: £12.99")
	assert.Contains(t, reply, "Subtotal: £22.98")
}

func TestFreeTextNotHandledOutsideOrderFlow(t *testing.T) {
	f := newTestFlow(t)
	sess := &session.Session{}

	_, handled := f.Handle(sess, "do you deliver to cardiff?")
	assert.False(t, handled)
}

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name   string
		prices []string
		want   float64
	}{
		{"parsable prices", []string{"£5.99", "£10.99"}, 16.98},
		{"unparsable contributes zero", []string{"£5.99", "N/A"}, 5.99},
		{"availability suffix ignored", []string{"£3.99 (Out of stock)"}, 3.99},
		{"empty cart", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var items []session.CartItem
			for _, p := range tt.prices {
				items = append(items, session.CartItem{Name: "x", Price: p})
			}
			assert.InDelta(t, tt.want, Subtotal(items), 0.001)
		})
	}
}
