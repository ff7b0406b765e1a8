package compacttrie

// Trie is an immutable, space-optimized radix trie: a node array and a
// label byte buffer, as produced by Builder.Build or FromBytes. Multiple
// readers may consult the same Trie concurrently without synchronization.
type Trie struct {
	nodes  []CompactNode
	labels []byte
}

// NewTrie wraps a (nodes, labels) pair produced by Builder.Build as a
// queryable Trie. It does not copy either slice.
func NewTrie(nodes []CompactNode, labels []byte) *Trie {
	return &Trie{nodes: nodes, labels: labels}
}

func (t *Trie) label(idx uint32) []byte {
	n := t.nodes[idx]
	start := n.LabelStart
	end := start + uint32(n.LabelLen())
	return t.labels[start:end]
}

// Contains reports whether key was inserted into the builder that produced
// this Trie. An empty key reports the root's terminal flag. A key whose
// consumption ends mid-edge is never a match: this trie stores words only
// at node boundaries.
func (t *Trie) Contains(key string) bool {
	if len(t.nodes) == 0 {
		return false
	}

	nodeIdx := uint32(0)
	cursor := 0

	for cursor < len(key) {
		firstChild := t.nodes[nodeIdx].FirstChild()
		if firstChild == SentinelChild {
			return false
		}

		childIdx := firstChild
		matched := false
		for {
			lbl := t.label(childIdx)
			rest := key[cursor:]
			if len(rest) >= len(lbl) && rest[:len(lbl)] == string(lbl) {
				cursor += len(lbl)
				nodeIdx = childIdx
				matched = true
				break
			}
			if !t.nodes[childIdx].HasNextSibling() {
				break
			}
			childIdx++
		}

		if !matched {
			return false
		}
	}

	return t.nodes[nodeIdx].IsTerminal()
}

// Suggest returns up to k words beginning with prefix, in ascending
// byte-lexicographic order.
func (t *Trie) Suggest(prefix string, k int) []string {
	results := []string{}
	if k <= 0 || len(t.nodes) == 0 {
		return results
	}

	nodeIdx := uint32(0)
	cursor := 0
	buf := make([]byte, 0, len(prefix)+16)

	for cursor < len(prefix) {
		firstChild := t.nodes[nodeIdx].FirstChild()
		if firstChild == SentinelChild {
			return results
		}

		childIdx := firstChild
		remaining := prefix[cursor:]
		advanced := false

		for {
			lbl := t.label(childIdx)
			lcp := commonPrefixLenBytes(lbl, remaining)

			switch {
			case lcp > 0 && lcp == len(remaining):
				// The prefix ends inside, or exactly at the edge of, this
				// child's label. Collection starts from here.
				buf = append(buf, lbl[:lcp]...)
				t.collect(childIdx, lcp, &buf, &results, k)
				return results
			case lcp > 0 && lcp == len(lbl):
				buf = append(buf, lbl...)
				cursor += lcp
				nodeIdx = childIdx
				advanced = true
			case lcp > 0:
				// Diverges mid-edge: no matches.
				return results
			}

			if advanced {
				break
			}
			if !t.nodes[childIdx].HasNextSibling() {
				break
			}
			childIdx++
		}

		if !advanced {
			return results
		}
	}

	if t.nodes[nodeIdx].IsTerminal() {
		results = append(results, string(buf))
		if len(results) >= k {
			return results
		}
	}

	child := t.nodes[nodeIdx].FirstChild()
	for child != SentinelChild {
		t.collect(child, 0, &buf, &results, k)
		if len(results) >= k {
			return results
		}
		if !t.nodes[child].HasNextSibling() {
			break
		}
		child++
	}

	return results
}

// collect performs a depth-first walk from nodeIdx, siblings in index order,
// appending label suffixes (from offset onward) to *buf and emitting *buf
// whenever a terminal node is reached. It restores *buf to its length on
// entry before returning, so callers may keep reusing the same backing
// array across sibling calls.
func (t *Trie) collect(nodeIdx uint32, offset int, buf *[]byte, results *[]string, k int) {
	if len(*results) >= k {
		return
	}

	lbl := t.label(nodeIdx)
	remainder := lbl[offset:]
	baseLen := len(*buf)
	*buf = append(*buf, remainder...)

	if t.nodes[nodeIdx].IsTerminal() {
		*results = append(*results, string(*buf))
		if len(*results) >= k {
			*buf = (*buf)[:baseLen]
			return
		}
	}

	child := t.nodes[nodeIdx].FirstChild()
	for child != SentinelChild {
		t.collect(child, 0, buf, results, k)
		if len(*results) >= k {
			*buf = (*buf)[:baseLen]
			return
		}
		if !t.nodes[child].HasNextSibling() {
			break
		}
		child++
	}

	*buf = (*buf)[:baseLen]
}

// SizeInBytes returns the in-memory footprint of the node array plus the
// label buffer: 8*N + L.
func (t *Trie) SizeInBytes() int {
	return len(t.nodes)*nodeRecordSize + len(t.labels)
}

func commonPrefixLenBytes(a []byte, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
