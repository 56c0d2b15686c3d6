package session

import "time"

// Turn is one user/bot exchange kept for AI context.
type Turn struct {
	User string `json:"user"`
	Bot  string `json:"bot"`
}

// Stage is the order flow position within a session.
type Stage string

const (
	StageNone            Stage = "none"
	StageAwaitingName    Stage = "awaiting_name"
	StageAwaitingAddress Stage = "awaiting_address"
	StageAwaitingPhone   Stage = "awaiting_phone"
)

// CartItem is a product added to an in-progress order. Price stays a display
// string; the subtotal parses it best-effort.
type CartItem struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// Order is the in-progress order attached to a session. It is created on the
// first "add" command and discarded entirely on checkout confirmation.
type Order struct {
	Cart    []CartItem `json:"cart"`
	Stage   Stage      `json:"stage"`
	Name    string     `json:"name,omitempty"`
	Address string     `json:"address,omitempty"`
	Phone   string     `json:"phone,omitempty"`
}

// Session is per-sender conversational state. It lives in a Store and expires
// after the store's TTL measured from LastActivity.
type Session struct {
	SenderID     string    `json:"sender_id"`
	History      []Turn    `json:"history"`
	Order        *Order    `json:"order,omitempty"`
	LastActivity time.Time `json:"last_activity"`
}

// AppendTurn records one exchange, evicting the oldest turns beyond depth.
func (s *Session) AppendTurn(user, bot string, depth int) {
	s.History = append(s.History, Turn{User: user, Bot: bot})
	if depth > 0 && len(s.History) > depth {
		s.History = s.History[len(s.History)-depth:]
	}
}

// EnsureOrder returns the in-progress order, creating an empty one if the
// session has none.
func (s *Session) EnsureOrder() *Order {
	if s.Order == nil {
		s.Order = &Order{Stage: StageNone}
	}
	return s.Order
}

func (s *Session) clone() *Session {
	cp := *s
	cp.History = append([]Turn(nil), s.History...)
	if s.Order != nil {
		o := *s.Order
		o.Cart = append([]CartItem(nil), s.Order.Cart...)
		cp.Order = &o
	}
	return &cp
}
