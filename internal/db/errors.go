package db

import "errors"

// ErrNotFound is returned when a requested document does not exist. All
// repositories in this package wrap it so callers can errors.Is against a
// single sentinel regardless of collection.
var ErrNotFound = errors.New("document not found")

// ErrEmailAlreadyExists is returned by AuthRepository.CreateAccount when the
// e-mail is already bound to an identity. The Admin SDK reports this with a
// typed error, not a server code string, so the repository translates it.
var ErrEmailAlreadyExists = errors.New("email already in use")
