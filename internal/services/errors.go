package services

import "errors"

// Service-level failure conditions. Handlers map these to HTTP responses;
// nothing here is ever fatal to the process.
var (
	// ErrEmailTaken signals a duplicate email during registration.
	ErrEmailTaken = errors.New("An account with this email already exists")

	// ErrInvalidCredentials is the uniform sign-in failure. It deliberately
	// does not reveal whether the email exists.
	ErrInvalidCredentials = errors.New("Invalid email or password")

	// ErrMalformedBackup signals an import document without the required
	// structure. Nothing is restored.
	ErrMalformedBackup = errors.New("Invalid backup file format")

	// ErrStoreWrite signals that the store refused a write. The collection
	// keeps its previous contents.
	ErrStoreWrite = errors.New("failed to persist data")
)
