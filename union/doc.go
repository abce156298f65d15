// Package union provides the shared tag-header machinery behind a tagged
// union: reading/writing a small integer discriminant, computing the
// padding between the tag and the payload, and validating the tag is in
// range before any payload byte is inspected.
//
// A union's payload variants have different Go types by nature, so unlike
// vec/str/flex this package does not itself provide a generic Union[T]
// container — that would need the payload type to vary per tag, which Go's
// type system cannot express as a single type parameter. Instead, this
// package is the fixed part a concrete tagged union composes with its own
// per-tag switch; the module itself defines no concrete tagged union.
package union
