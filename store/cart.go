package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ablmazed/pg-shop-api/models"
)

var (
	ErrItemNotFound = errors.New("cart item not found")
	ErrCartClaimed  = errors.New("cart already claimed by another user")
	ErrCartNotFound = errors.New("cart not found")
)

// CartStore owns cart rows keyed by session cart id or user id.
type CartStore struct {
	db *gorm.DB
}

func NewCartStore(db *gorm.DB) *CartStore {
	return &CartStore{db: db}
}

func itemOrder(db *gorm.DB) *gorm.DB {
	return db.Order("cart_items.id ASC")
}

// FindBySessionID returns the cart for a session cart id, or nil when no
// cart has been created for that session yet.
func (s *CartStore) FindBySessionID(sessionCartID string) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.Preload("Items", itemOrder).Where("session_cart_id = ?", sessionCartID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// FindByUserID returns the claimed cart for a user, or nil if the user has
// never claimed one.
func (s *CartStore) FindByUserID(userID string) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.Preload("Items", itemOrder).Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddItem adds an item to the session's cart, creating the cart lazily on
// first use. Adding a product already in the cart increments its quantity;
// the resulting quantity is clamped to the given stock. The cart total is
// recomputed from scratch over all lines.
func (s *CartStore) AddItem(sessionCartID string, item models.CartItem, stock int) (*models.Cart, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.Preload("Items", itemOrder).Where("session_cart_id = ?", sessionCartID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cart = models.Cart{
				ID:            uuid.NewString(),
				SessionCartID: sessionCartID,
			}
			if err := tx.Create(&cart).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		updated := false
		for i := range cart.Items {
			if cart.Items[i].ProductID == item.ProductID {
				qty := cart.Items[i].Qty + item.Qty
				if qty > stock {
					qty = stock
				}
				cart.Items[i].Qty = qty
				cart.Items[i].AddedAt = time.Now()
				if err := tx.Save(&cart.Items[i]).Error; err != nil {
					return err
				}
				updated = true
				break
			}
		}
		if !updated {
			qty := item.Qty
			if qty > stock {
				qty = stock
			}
			line := models.CartItem{
				CartID:    cart.ID,
				ProductID: item.ProductID,
				Name:      item.Name,
				Slug:      item.Slug,
				Image:     item.Image,
				Price:     item.Price,
				Qty:       qty,
				AddedAt:   time.Now(),
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
			cart.Items = append(cart.Items, line)
		}

		return tx.Model(&models.Cart{}).
			Where("id = ?", cart.ID).
			Update("total_price", cartTotal(cart.Items)).Error
	})
	if err != nil {
		return nil, err
	}
	return s.FindBySessionID(sessionCartID)
}

// RemoveItem decrements the product's quantity by one, deleting the line
// when it reaches zero.
func (s *CartStore) RemoveItem(sessionCartID, productID string) (*models.Cart, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.Preload("Items", itemOrder).Where("session_cart_id = ?", sessionCartID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		if err != nil {
			return err
		}

		idx := -1
		for i := range cart.Items {
			if cart.Items[i].ProductID == productID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ErrItemNotFound
		}

		if cart.Items[idx].Qty <= 1 {
			if err := tx.Delete(&cart.Items[idx]).Error; err != nil {
				return err
			}
			cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
		} else {
			cart.Items[idx].Qty--
			if err := tx.Save(&cart.Items[idx]).Error; err != nil {
				return err
			}
		}

		return tx.Model(&models.Cart{}).
			Where("id = ?", cart.ID).
			Update("total_price", cartTotal(cart.Items)).Error
	})
	if err != nil {
		return nil, err
	}
	return s.FindBySessionID(sessionCartID)
}

// ReassignOwner claims a cart for a user. The update is conditional on the
// cart being unclaimed (or already claimed by the same user), so concurrent
// claims cannot overwrite each other.
func (s *CartStore) ReassignOwner(cartID, userID string) error {
	res := s.db.Model(&models.Cart{}).
		Where("id = ? AND (user_id IS NULL OR user_id = ?)", cartID, userID).
		Update("user_id", userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var cart models.Cart
		err := s.db.First(&cart, "id = ?", cartID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartNotFound
		}
		if err != nil {
			return err
		}
		return ErrCartClaimed
	}
	return nil
}

// cartTotal sums price * qty over all lines, each price rounded to two
// decimals before summation.
func cartTotal(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Round(2).Mul(decimal.NewFromInt(int64(it.Qty))))
	}
	return total
}
