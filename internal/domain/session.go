package domain

import "strings"

// Role values issued by the authentication backend.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Session is the caller's opaque authentication state.
// It is passed explicitly to anything that gates on it; the catalog never validates the token.
type Session struct {
	Token string
	Role  string
}

// IsAuthenticated reports whether the caller presented a token.
func (s Session) IsAuthenticated() bool {
	return strings.TrimSpace(s.Token) != ""
}

// IsAdmin reports whether the caller holds the admin role.
func (s Session) IsAdmin() bool {
	return s.IsAuthenticated() && strings.EqualFold(s.Role, RoleAdmin)
}

// CanViewPrices reports whether prices may be shown to the caller.
func (s Session) CanViewPrices() bool {
	return s.IsAuthenticated()
}

// RedactPrices returns a copy of d with every price blanked.
func RedactPrices(d Destination) Destination {
	c := d.Clone()
	c.Price = ""
	for i := range c.Variants {
		c.Variants[i].Price = 0
	}
	return c
}
