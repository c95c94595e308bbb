package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ablmazed/pg-shop-api/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.Cart{}, &models.CartItem{}))
	return db
}

func price(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestAddItemCreatesCartLazily(t *testing.T) {
	db := newTestDB(t)
	s := NewCartStore(db)

	cart, err := s.FindBySessionID("sess-1")
	require.NoError(t, err)
	require.Nil(t, cart)

	cart, err = s.AddItem("sess-1", models.CartItem{
		ProductID: "p1", Name: "Hat", Slug: "hat", Price: price(t, "24.99"), Qty: 1,
	}, 10)
	require.NoError(t, err)
	require.Equal(t, "sess-1", cart.SessionCartID)
	require.Nil(t, cart.UserID)
	require.Len(t, cart.Items, 1)
}

func TestAddItemAccumulatesQuantity(t *testing.T) {
	db := newTestDB(t)
	s := NewCartStore(db)

	item := models.CartItem{ProductID: "p1", Name: "Shirt", Slug: "shirt", Price: price(t, "9.99"), Qty: 2}
	cart, err := s.AddItem("sess-1", item, 100)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 2, cart.Items[0].Qty)

	item.Qty = 3
	cart, err = s.AddItem("sess-1", item, 100)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 5, cart.Items[0].Qty)
	require.True(t, cart.TotalPrice.Equal(price(t, "49.95")), "total %s", cart.TotalPrice)
}

func TestAddItemClampsToStock(t *testing.T) {
	db := newTestDB(t)
	s := NewCartStore(db)

	item := models.CartItem{ProductID: "p1", Name: "Mug", Slug: "mug", Price: price(t, "5.00"), Qty: 3}
	_, err := s.AddItem("sess-1", item, 5)
	require.NoError(t, err)

	item.Qty = 4
	cart, err := s.AddItem("sess-1", item, 5)
	require.NoError(t, err)
	require.Equal(t, 5, cart.Items[0].Qty)
	require.True(t, cart.TotalPrice.Equal(price(t, "25.00")), "total %s", cart.TotalPrice)
}

func TestAddItemRoundsEachLineHalfUp(t *testing.T) {
	db := newTestDB(t)
	s := NewCartStore(db)

	// 1.005 rounds up to 1.01 per unit before summation
	_, err := s.AddItem("sess-1", models.CartItem{
		ProductID: "p1", Name: "Pen", Slug: "pen", Price: price(t, "1.005"), Qty: 2,
	}, 100)
	require.NoError(t, err)

	cart, err := s.AddItem("sess-1", models.CartItem{
		ProductID: "p2", Name: "Clip", Slug: "clip", Price: price(t, "0.994"), Qty: 1,
	}, 100)
	require.NoError(t, err)
	require.True(t, cart.TotalPrice.Equal(price(t, "3.01")), "total %s", cart.TotalPrice)
}

func TestRemoveItemDecrementsThenDropsLine(t *testing.T) {
	db := newTestDB(t)
	s := NewCartStore(db)

	_, err := s.AddItem("sess-1", models.CartItem{
		ProductID: "p1", Name: "Hat", Slug: "hat", Price: price(t, "24.99"), Qty: 2,
	}, 10)
	require.NoError(t, err)

	cart, err := s.RemoveItem("sess-1", "p1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 1, cart.Items[0].Qty)
	require.True(t, cart.TotalPrice.Equal(price(t, "24.99")))

	cart, err = s.RemoveItem("sess-1", "p1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 0)
	require.True(t, cart.TotalPrice.IsZero(), "total %s", cart.TotalPrice)
}

func TestRemoveItemMissingLeavesCartUnchanged(t *testing.T) {
	db := newTestDB(t)
	s := NewCartStore(db)

	_, err := s.AddItem("sess-1", models.CartItem{
		ProductID: "p1", Name: "Hat", Slug: "hat", Price: price(t, "24.99"), Qty: 2,
	}, 10)
	require.NoError(t, err)

	_, err = s.RemoveItem("sess-1", "p2")
	require.ErrorIs(t, err, ErrItemNotFound)

	cart, err := s.FindBySessionID("sess-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 2, cart.Items[0].Qty)
	require.True(t, cart.TotalPrice.Equal(price(t, "49.98")))
}

func TestRemoveItemWithoutCart(t *testing.T) {
	db := newTestDB(t)
	s := NewCartStore(db)

	_, err := s.RemoveItem("sess-none", "p1")
	require.ErrorIs(t, err, ErrItemNotFound)
}

func TestReassignOwner(t *testing.T) {
	db := newTestDB(t)
	s := NewCartStore(db)

	cart, err := s.AddItem("sess-1", models.CartItem{
		ProductID: "p1", Name: "Hat", Slug: "hat", Price: price(t, "24.99"), Qty: 1,
	}, 10)
	require.NoError(t, err)

	require.NoError(t, s.ReassignOwner(cart.ID, "user-1"))

	claimed, err := s.FindByUserID("user-1")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	require.Equal(t, cart.ID, claimed.ID)
	require.Equal(t, "sess-1", claimed.SessionCartID)

	// re-applying with the same user is a no-op
	require.NoError(t, s.ReassignOwner(cart.ID, "user-1"))

	// a different user must be rejected
	require.ErrorIs(t, s.ReassignOwner(cart.ID, "user-2"), ErrCartClaimed)

	require.ErrorIs(t, s.ReassignOwner("no-such-cart", "user-1"), ErrCartNotFound)
}
