package shop

import (
	"fmt"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Similarity thresholds (0-100). Product matching is stricter than category
// matching so that short queries don't pull in half the catalog.
const (
	categoryMatchThreshold = 60
	productMatchThreshold  = 70
)

// Resolver answers a message from the catalog and store information alone.
// Resolution order: greeting, menu, FAQ topics, exact product, exact
// category, fuzzy category, substring/fuzzy product. First hit wins; a
// message containing both a FAQ keyword and a product name is answered as a
// FAQ.
type Resolver struct {
	catalog *Catalog
	info    *StoreInfo
}

func NewResolver(catalog *Catalog, info *StoreInfo) *Resolver {
	return &Resolver{catalog: catalog, info: info}
}

// Resolve maps a trimmed user message to a reply. ok is false when nothing
// deterministic answers it and the caller should fall back to the AI.
func (r *Resolver) Resolve(msg string) (reply string, ok bool) {
	m := strings.ToLower(strings.TrimSpace(msg))
	if m == "" {
		return "", false
	}

	if isGreeting(m) {
		return r.welcome(), true
	}
	if containsAny(m, "menu", "products", "catalog") {
		return r.menu(), true
	}
	if reply, ok := r.resolveFAQ(m); ok {
		return reply, true
	}
	if reply, ok := r.exactProduct(m); ok {
		return reply, true
	}
	if cat, ok := r.catalog.CategoryByName(m); ok {
		return renderCategory(cat), true
	}
	if cat, ok := r.fuzzyCategory(m); ok {
		return renderCategory(cat), true
	}
	if matches := r.SearchProducts(m); len(matches) > 0 {
		return renderMatches(matches), true
	}

	return "", false
}

// resolveFAQ checks the fixed topic keywords against the whole message.
// Keyword checks are substring checks, in this order.
func (r *Resolver) resolveFAQ(m string) (string, bool) {
	switch {
	case strings.Contains(m, "delivery"):
		return r.info.DeliveryPolicy, true
	case containsAny(m, "hours", "opening", "closing", "time", "clock"):
		return r.info.OpeningHours, true
	case containsAny(m, "location", "address", "branch", "store near"):
		return r.locationReply(m), true
	case containsAny(m, "contact", "phone", "email"):
		return "📞 Contact Us:\n" + r.info.Contact + "\n" + r.info.OpeningHours, true
	case containsAny(m, "history", "about"):
		return r.info.About, true
	case containsAny(m, "complaint", "refund", "return"):
		return r.info.CustomerService, true
	}
	return "", false
}

// LocateBranch returns the first branch whose name or postcode appears in
// the message, in directory order. No match falls back to the head office.
// This is a substring check, not a distance computation.
func (r *Resolver) LocateBranch(msg string) Branch {
	m := strings.ToLower(msg)
	for _, b := range r.info.Branches {
		if strings.Contains(m, strings.ToLower(b.Name)) {
			return b
		}
		if pc := strings.ToLower(b.Postcode); pc != "" {
			if strings.Contains(m, pc) || strings.Contains(m, strings.Fields(pc)[0]) {
				return b
			}
		}
	}
	return r.info.HeadOffice
}

func (r *Resolver) locationReply(m string) string {
	b := r.LocateBranch(m)
	return fmt.Sprintf("🏪 Our closest store:\n%s: %s, %s | %s", b.Name, b.Address, b.Postcode, b.Phone)
}

func (r *Resolver) exactProduct(m string) (string, bool) {
	for _, cat := range r.catalog.Categories() {
		for _, e := range cat.Entries {
			if strings.ToLower(e.Name) == m {
				return fmt.Sprintf("%s: %s", e.Name, e.Price), true
			}
		}
	}
	return "", false
}

// fuzzyCategory picks the best-scoring category label above the threshold.
// Earlier categories win ties.
func (r *Resolver) fuzzyCategory(m string) (Category, bool) {
	var best Category
	bestScore := categoryMatchThreshold - 1
	for _, cat := range r.catalog.Categories() {
		if score := fuzzy.Ratio(m, strings.ToLower(cat.Name)); score > bestScore {
			best, bestScore = cat, score
		}
	}
	return best, bestScore >= categoryMatchThreshold
}

// SearchProducts scans every entry in every category and collects those the
// query is a substring of, or that are a close fuzzy match to the query.
// Results keep catalog order. The order flow uses this for "add" commands.
func (r *Resolver) SearchProducts(query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var matches []Entry
	for _, cat := range r.catalog.Categories() {
		for _, e := range cat.Entries {
			name := strings.ToLower(e.Name)
			if strings.Contains(name, q) || fuzzy.Ratio(q, name) >= productMatchThreshold {
				matches = append(matches, e)
			}
		}
	}
	return matches
}

func (r *Resolver) welcome() string {
	return "🕌 Welcome to Tariq Halal Meats!\n\n" +
		"You can ask about:\n" +
		"- Products & prices 🛒\n" +
		"- Delivery info 🚚\n" +
		"- Store locations 🏪\n" +
		"- Or ask any question!"
}

func (r *Resolver) menu() string {
	var b strings.Builder
	b.WriteString("📋 Our Product Categories:\n\n")
	for i, cat := range r.catalog.Categories() {
		fmt.Fprintf(&b, "%d. %s\n", i+1, cat.Name)
	}
	b.WriteString("\nReply with a category name or product name for details!")
	return b.String()
}

func renderCategory(cat Category) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📋 %s:\n", cat.Name)
	for _, e := range cat.Entries {
		fmt.Fprintf(&b, "- %s: %s\n", e.Name, e.Price)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderMatches(matches []Entry) string {
	var b strings.Builder
	b.WriteString("🔎 We found these matching products:\n")
	for _, e := range matches {
		fmt.Fprintf(&b, "- %s (%s): %s\n", e.Name, titleCase(e.Category), e.Price)
	}
	b.WriteString("\nNeed anything else?")
	return b.String()
}

// isGreeting matches greetings on whole words only; a substring check would
// greet anyone asking about chicken ("hi").
func isGreeting(m string) bool {
	for _, w := range strings.Fields(m) {
		switch strings.Trim(w, "!.,?") {
		case "hi", "hello", "hey", "salaam", "salam":
			return true
		}
	}
	return false
}

func containsAny(m string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(m, k) {
			return true
		}
	}
	return false
}
