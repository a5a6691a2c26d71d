package auth

import "errors"

// ErrForbidden means the caller is authenticated but is not the owner of
// the resource it tries to mutate.
var ErrForbidden = errors.New("forbidden")

// AuthorizeOwner allows a mutation only when the caller is the recorded
// creator of the resource. Callers must resolve resource existence first:
// a missing resource is a not-found outcome, never a forbidden one.
func AuthorizeOwner(ownerEmail, callerEmail string) error {
	if ownerEmail != callerEmail {
		return ErrForbidden
	}
	return nil
}
