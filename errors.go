package compacttrie

import "errors"

var (
	// ErrLabelTooLong is returned by Build when a radix edge label exceeds
	// the 127-byte limit the compact node's 7-bit label_len field can hold.
	ErrLabelTooLong = errors.New("compacttrie: radix edge label exceeds 127 bytes")

	// ErrTrieTooLarge is returned by Build when the number of compact nodes
	// would exceed the 23-bit first_child index space.
	ErrTrieTooLarge = errors.New("compacttrie: node count exceeds 23-bit index space")

	// ErrCorruptImage is returned by FromBytes when the input is shorter
	// than its declared sections, or an internal offset falls outside the
	// buffer it indexes into.
	ErrCorruptImage = errors.New("compacttrie: serialized image is truncated or has out-of-range offsets")
)
