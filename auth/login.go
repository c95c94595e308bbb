package auth

import (
	"gorm.io/gorm"

	"github.com/ablmazed/pg-shop-api/store"
)

// SignInWithCredentials drives the sign-in sequence end to end: verify
// credentials, reconcile the anonymous session cart, issue the session
// token. A merge failure aborts the whole sign-in even though the
// credentials were valid.
func SignInWithCredentials(db *gorm.DB, email, password, sessionCartID string) (string, *Identity, error) {
	identity, err := Authorize(db, email, password)
	if err != nil {
		return "", nil, err
	}
	if identity == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := MergeSessionCart(store.NewCartStore(db), identity.ID, sessionCartID); err != nil {
		return "", nil, err
	}

	token, err := IssueToken(identity)
	if err != nil {
		return "", nil, err
	}
	return token, identity, nil
}
