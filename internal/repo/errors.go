package repo

import "errors"

// ErrItemNotFound is returned when an inventory item is not in the store.
var ErrItemNotFound = errors.New("item not found")

// ErrDuplicateProductID is returned when a create or update would violate
// the product_id uniqueness invariant.
var ErrDuplicateProductID = errors.New("product id already in use")

// ErrAlertNotFound is returned when an alert is not in the store.
var ErrAlertNotFound = errors.New("alert not found")

// ErrUserNotFound is returned when no user matches the given email.
var ErrUserNotFound = errors.New("user not found")
