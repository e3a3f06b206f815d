package arborx

import "errors"

// ErrUnsupportedEncoding is returned when a BVH reports an Encoding
// the core does not recognize. The core supports exactly TwoChild and
// LeftChildRope; anything else is a precondition violation the core
// rejects rather than guesses at.
var ErrUnsupportedEncoding = errors.New("arborx: unsupported node encoding")

// ErrEncodingMismatch is returned when a BVH's Encoding() disagrees
// with the accessor interface (TwoChildBVH / RopeBVH) it actually
// implements.
var ErrEncodingMismatch = errors.New("arborx: BVH.Encoding() does not match its node accessor type")
