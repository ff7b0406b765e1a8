package compacttrie

// Build converts the pointer-linked tree into the compact two-array form
// and runs label compression over it. It returns ErrLabelTooLong if any
// radix edge prefix exceeds 127 bytes, or ErrTrieTooLarge if the node count
// would exceed the 23-bit first_child index space.
//
// Build does not mutate or invalidate the Builder, but the Builder is
// intended for single use: build the tree, then Build it once.
func (b *Builder) Build(opts ...BuildOption) ([]CompactNode, []byte, error) {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(o)
	}

	nodes, labels, err := flatten(b.root)
	if err != nil {
		return nil, nil, err
	}

	labels = compressLabels(nodes, labels, o.logger, o.chainDepthCap)
	return nodes, labels, nil
}
