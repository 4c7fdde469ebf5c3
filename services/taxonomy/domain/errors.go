package domain

import "errors"

// Sentinel errors for the taxonomy domain. Use errors.Is() to check these.
var (
	// ErrNodeNotFound indicates the referenced manufacturer, category, or
	// trim level does not exist.
	ErrNodeNotFound = errors.New("taxonomy node not found")

	// ErrDuplicateName indicates a sibling with the same name already exists
	// under the same parent.
	ErrDuplicateName = errors.New("taxonomy name already exists under this parent")

	// ErrNodeInUse indicates the node still has children. Deleting a parent
	// never orphans children silently; the delete is rejected instead.
	ErrNodeInUse = errors.New("taxonomy node still has children")

	// ErrInvalidNode indicates a field violates domain constraints.
	ErrInvalidNode = errors.New("invalid taxonomy node")
)
