// Package buffer provides pooled, fixed-size byte buffers for flat values: a
// sync.Pool-backed allocator sized once at Get and never grown afterward.
// A flat value's Owning wrapper never reallocates, so a buffer that grew
// after being handed out would move the bytes a live view already points
// into, corrupting it; buffer.Buffer is deliberately incapable of that.
package buffer
