package entity

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// CartIdentity identifies whose cart is addressed: an authenticated user or an anonymous session.
type CartIdentity struct {
	UserID    *uuid.UUID
	SessionID string
}

// UserIdentity returns the identity of an authenticated user.
func UserIdentity(userID uuid.UUID) CartIdentity {
	return CartIdentity{UserID: &userID}
}

// SessionIdentity returns the identity of an anonymous session.
func SessionIdentity(sessionID string) CartIdentity {
	return CartIdentity{SessionID: sessionID}
}

// IsZero reports whether neither a user nor a session is set.
func (i CartIdentity) IsZero() bool {
	return i.UserID == nil && i.SessionID == ""
}

// Key returns the storage key suffix, preferring the user over the session.
func (i CartIdentity) Key() string {
	if i.UserID != nil {
		return fmt.Sprintf("user:%s", i.UserID.String())
	}

	return fmt.Sprintf("session:%s", i.SessionID)
}

// Cart maps product ids to quantities. Quantities are always at least 1.
type Cart struct {
	Items map[uuid.UUID]int
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{Items: make(map[uuid.UUID]int)}
}

// IsEmpty reports whether the cart has no entries.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// ProductIDs returns the product ids in a stable order.
func (c *Cart) ProductIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.Items))
	for id := range c.Items {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(a, b int) bool {
		return ids[a].String() < ids[b].String()
	})

	return ids
}

// CartLine is a priced cart entry for display.
type CartLine struct {
	Product  *Product
	Quantity int
	Total    Money
}

// CartView is a cart resolved against the current catalog.
type CartView struct {
	Lines      []*CartLine
	TotalItems int
	Total      Money
}
