// Package flex implements FlexVec[T]: a growable vector of possibly-unsized
// elements with no separate length header, instead using the two-terminator
// offset convention at each entry:
//
//	[off0][payload0][off1][payload1][off2][payload2..to end of buffer]
//
// An offset slot holds one of three things: 0 means no entry begins here
// (end of an otherwise-empty tail), L::MAX means the entry beginning here
// is the last one and its payload runs to the end of the backing buffer,
// and any other value is the byte distance from this slot to the next
// entry's slot (i.e. this entry's own total size, header included).
//
// Because offsets double as a singly-linked chain, growing the vector
// means walking from the start every time: finding the current L::MAX
// slot, converting it to a concrete distance once the entry's size is
// known, and writing a fresh L::MAX slot after it for the new entry.
package flex
