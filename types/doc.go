// Package types defines the composite value types shared across game packet
// shapes: actor identifiers, positions and rotations, game rules, level
// settings, resource pack descriptors, input and interaction unions, and
// inventory transaction data.
//
// Each composite serializes as the concatenation of its fields in
// declaration order through a single Marshal method over wire.IO, so encode
// and decode cannot drift apart. Tagged unions carry a leading discriminant
// and surface unrecognized tags as errs.ErrUnknownVariant naming both the
// union and the observed tag.
package types
