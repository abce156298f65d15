// Package str implements FlatString[L]: the same layout as FlatVec[byte, L],
// with the added invariant that the active region is valid UTF-8. It is
// built directly on package vec's FlatVec[byte], adding only UTF-8
// re-validation and a push_str-style append.
package str
