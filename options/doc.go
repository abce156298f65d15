// Package options provides the generic functional-options pattern used to
// configure buffer.Pool and other constructors across flatgo.
package options
