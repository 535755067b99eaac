// SPDX-License-Identifier: MIT

package sparse

import "github.com/google/uuid"

// Handle is an opaque reference to a matrix owned by an Engine.
// The zero Handle is never issued.
type Handle struct {
	id uuid.UUID
}

// ID returns the handle's identity.
func (h Handle) ID() uuid.UUID { return h.id }

// String returns the UUID in canonical form.
func (h Handle) String() string { return h.id.String() }

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool { return h.id == uuid.Nil }
