// Package owner binds flat.Owning to the concrete byte-owning containers a
// caller actually has on hand: a plain heap slice, or a pooled
// buffer.Buffer — one adapter per carrier type, all delegating to the same
// validate function.
package owner
