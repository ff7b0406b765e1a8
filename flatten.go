package compacttrie

import (
	"fmt"
	"sort"
)

// flatten runs a one-shot BFS over root, producing the compact node array
// and raw (pre-compression) label buffer. Sibling blocks are assigned
// contiguously in BFS order, and siblings within a block are sorted by full
// edge label ascending byte-lexicographic, which is the only tie-break and
// is mandatory for the sibling-linear-scan contract relied on by Contains
// and Suggest.
func flatten(root *builderNode) ([]CompactNode, []byte, error) {
	if len(root.prefix) > maxLabelLen {
		return nil, nil, fmt.Errorf("%w: root label is %d bytes", ErrLabelTooLong, len(root.prefix))
	}

	nodes := make([]CompactNode, 0, 64)
	labels := make([]byte, 0, 256)

	labels = append(labels, root.prefix...)
	rootNode, err := appendNode(nodes, newCompactNode(0, SentinelChild, len(root.prefix), root.isLeaf, false))
	if err != nil {
		return nil, nil, err
	}
	nodes = rootNode

	type queued struct {
		idx int
		src *builderNode
	}
	queue := []queued{{0, root}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if len(item.src.children) == 0 {
			continue
		}

		children := make([]*builderNode, 0, len(item.src.children))
		for _, c := range item.src.children {
			children = append(children, c)
		}
		sort.Slice(children, func(i, j int) bool { return children[i].prefix < children[j].prefix })

		start := len(nodes)
		nodes[item.idx].setFirstChild(uint32(start))

		for i, child := range children {
			if len(child.prefix) > maxLabelLen {
				return nil, nil, fmt.Errorf("%w: label %q is %d bytes", ErrLabelTooLong, child.prefix, len(child.prefix))
			}

			labelStart := len(labels)
			labels = append(labels, child.prefix...)
			hasNextSibling := i < len(children)-1

			nodes, err = appendNode(nodes, newCompactNode(uint32(labelStart), SentinelChild, len(child.prefix), child.isLeaf, hasNextSibling))
			if err != nil {
				return nil, nil, err
			}

			queue = append(queue, queued{start + i, child})
		}
	}

	return nodes, labels, nil
}

// appendNode appends n to nodes, rejecting the append if doing so would
// place n at the reserved SentinelChild index - that index must remain
// available to mean "no children".
func appendNode(nodes []CompactNode, n CompactNode) ([]CompactNode, error) {
	if len(nodes) >= int(SentinelChild) {
		return nodes, fmt.Errorf("%w: %d nodes", ErrTrieTooLarge, len(nodes)+1)
	}
	return append(nodes, n), nil
}
