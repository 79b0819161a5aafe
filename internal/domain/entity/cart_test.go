package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCartIdentity_Key(t *testing.T) {
	userID := uuid.MustParse("11111111-1111-1111-1111-111111111111")

	assert.Equal(t, "user:11111111-1111-1111-1111-111111111111", UserIdentity(userID).Key())
	assert.Equal(t, "session:abc", SessionIdentity("abc").Key())

	both := CartIdentity{UserID: &userID, SessionID: "abc"}
	assert.Equal(t, "user:11111111-1111-1111-1111-111111111111", both.Key())

	assert.True(t, CartIdentity{}.IsZero())
}

func TestCart_ProductIDsAreSorted(t *testing.T) {
	a := uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000000")
	b := uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000000")
	cart := &Cart{Items: map[uuid.UUID]int{b: 1, a: 2}}

	assert.Equal(t, []uuid.UUID{a, b}, cart.ProductIDs())
	assert.False(t, cart.IsEmpty())
	assert.True(t, NewCart().IsEmpty())
}
