package auth

import (
	"errors"

	"github.com/ablmazed/pg-shop-api/store"
)

var ErrSessionCartMissing = errors.New("session cart not found")

// MergeSessionCart reconciles the anonymous cart for the current session
// into the authenticated user's cart. Runs once per sign-in or sign-up,
// after credentials are verified and before the session token is issued.
//
// The rule is claim-if-absent: an unclaimed anonymous cart becomes the
// user's cart only when the user has no cart yet. If the user already has a
// claimed cart, that cart stays authoritative and the anonymous one is left
// unclaimed rather than merged line by line, so quantities are never
// double-counted.
func MergeSessionCart(carts *store.CartStore, userID, sessionCartID string) error {
	if sessionCartID == "" {
		return ErrSessionCartMissing
	}

	anon, err := carts.FindBySessionID(sessionCartID)
	if err != nil {
		return err
	}
	if anon == nil {
		return nil
	}
	if anon.UserID != nil {
		// Already claimed, possibly by this user on an earlier sign-in.
		return nil
	}

	owned, err := carts.FindByUserID(userID)
	if err != nil {
		return err
	}
	if owned != nil {
		return nil
	}

	err = carts.ReassignOwner(anon.ID, userID)
	if errors.Is(err, store.ErrCartClaimed) {
		// Lost a concurrent claim; same outcome as finding it claimed above.
		return nil
	}
	return err
}
