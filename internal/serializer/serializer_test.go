package serializer

import (
	"testing"
	"time"

	"autolot/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUnit() *entity.Unit {
	expire := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	storeID := int64(7)

	return &entity.Unit{
		ID:          42,
		StockNumber: "A-1001",
		ExpireDate:  &expire,
		VehicleID:   9,
		StoreID:     &storeID,
		Vehicle: &entity.Vehicle{
			ID:    9,
			Year:  2021,
			Make:  "Honda",
			Model: "Civic",
			VIN:   "2HGFC2F59MH000001",
		},
		Store: &entity.Store{
			ID:   7,
			Name: "North Lot",
			Users: []*entity.User{
				{ID: 3, Email: "clerk@example.com", HashedPassword: "secret-hash"},
			},
		},
	}
}

func TestUnit_OmitsRelationshipsByDefault(t *testing.T) {
	attrs := Unit(testUnit(), Options{Depth: 1})

	assert.Equal(t, int64(42), attrs["id"])
	assert.NotContains(t, attrs, "vehicle")
	assert.NotContains(t, attrs, "store")
}

func TestUnit_ExpandsOnlyIncludedRelationships(t *testing.T) {
	attrs := Unit(testUnit(), Options{Depth: 1, Include: []string{"vehicle"}})

	vehicle, ok := attrs["vehicle"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Civic", vehicle["model"])
	assert.NotContains(t, attrs, "store")
}

func TestUnit_DepthZeroExpandsNothing(t *testing.T) {
	attrs := Unit(testUnit(), Options{Depth: 0, Include: []string{"vehicle", "store"}})

	assert.NotContains(t, attrs, "vehicle")
	assert.NotContains(t, attrs, "store")
}

func TestUnit_DepthBoundsNestedExpansion(t *testing.T) {
	attrs := Unit(testUnit(), Options{Depth: 1, Include: []string{"store", "users"}})

	store, ok := attrs["store"].(map[string]any)
	require.True(t, ok)
	// The store's own relationships are one level deeper than the budget allows.
	assert.NotContains(t, store, "users")
}

func TestUser_NeverExposesCredentials(t *testing.T) {
	user := &entity.User{
		ID:             3,
		Email:          "clerk@example.com",
		Password:       "plaintext",
		HashedPassword: "secret-hash",
	}

	attrs := User(user, Options{Depth: 2, Include: []string{"store"}})

	assert.NotContains(t, attrs, "password")
	assert.NotContains(t, attrs, "hashed_password")
	for _, v := range attrs {
		assert.NotEqual(t, "plaintext", v)
		assert.NotEqual(t, "secret-hash", v)
	}
}

func TestUser_CredentialsExcludedWhenNestedUnderStore(t *testing.T) {
	attrs := Unit(testUnit(), Options{Depth: 2, Include: []string{"store", "users"}})

	store, ok := attrs["store"].(map[string]any)
	require.True(t, ok)
	users, ok := store["users"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, users, 1)
	assert.NotContains(t, users[0], "hashed_password")
	assert.NotContains(t, users[0], "password")
}

func TestStore_NilRelationsSerializeAsEmptyLists(t *testing.T) {
	attrs := Store(&entity.Store{ID: 7}, Options{Depth: 1, Include: []string{"units", "users"}})

	assert.Empty(t, attrs["units"])
	assert.Empty(t, attrs["users"])
}
