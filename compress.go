package compacttrie

import (
	"sort"
	"strings"
)

// redirect describes where an inactive unique label's bytes actually live:
// target is the unique_id of the label that subsumes it (as a prefix or a
// suffix), and offset is where within target's bytes this label begins.
type redirect struct {
	target int
	offset uint32
}

// compressLabels deduplicates labels, then folds labels that are proper
// prefixes or suffixes of other labels into a single super-buffer, and
// rewrites every node's LabelStart to point into it. label_len fields are
// left untouched - only the base offset moves.
//
// Three phases, in order: (a) dedup distinct label strings to a dense
// unique_id; (b) sort unique ids ascending by string value and fold each
// adjacent (small, large) pair where large starts with small; (c) sort the
// still-active ids ascending by reversed byte sequence and fold each
// adjacent pair where large ends with small. Folding only ever happens once
// per label (inactive ids are skipped), so the redirect graph has no
// cycles - every edge points from a strictly shorter string to a strictly
// longer one.
func compressLabels(nodes []CompactNode, labels []byte, log Logger, chainDepthCap int) []byte {
	total := len(nodes)
	log.Debugf("starting label compression on %d nodes", total)

	stringToID := make(map[string]int, total)
	uniqueStrings := make([]string, 0, total)
	nodeToUnique := make([]int, total)

	for i, n := range nodes {
		s := string(labels[n.LabelStart : n.LabelStart+uint32(n.LabelLen())])
		id, ok := stringToID[s]
		if !ok {
			id = len(uniqueStrings)
			stringToID[s] = id
			uniqueStrings = append(uniqueStrings, s)
		}
		nodeToUnique[i] = id
	}

	numUnique := len(uniqueStrings)
	log.Debugf("reduced to %d unique labels", numUnique)

	redirects := make([]redirect, numUnique)
	for i := range redirects {
		redirects[i] = redirect{target: i}
	}
	active := make([]bool, numUnique)
	for i := range active {
		active[i] = true
	}

	// (b) Prefix folding.
	byValue := make([]int, numUnique)
	for i := range byValue {
		byValue[i] = i
	}
	sort.Slice(byValue, func(i, j int) bool { return uniqueStrings[byValue[i]] < uniqueStrings[byValue[j]] })

	for i := 0; i+1 < numUnique; i++ {
		small, large := byValue[i], byValue[i+1]
		if strings.HasPrefix(uniqueStrings[large], uniqueStrings[small]) {
			redirects[small] = redirect{target: large, offset: 0}
			active[small] = false
		}
	}

	// (c) Suffix folding, over the still-active ids only.
	activeIDs := make([]int, 0, numUnique)
	for i := 0; i < numUnique; i++ {
		if active[i] {
			activeIDs = append(activeIDs, i)
		}
	}
	sort.Slice(activeIDs, func(i, j int) bool {
		return reverseLess(uniqueStrings[activeIDs[i]], uniqueStrings[activeIDs[j]])
	})

	for i := 0; i+1 < len(activeIDs); i++ {
		small, large := activeIDs[i], activeIDs[i+1]
		ss, ls := uniqueStrings[small], uniqueStrings[large]
		if strings.HasSuffix(ls, ss) {
			redirects[small] = redirect{target: large, offset: uint32(len(ls) - len(ss))}
			active[small] = false
		}
	}

	// (d) Resolution: follow each id's redirect chain to an active root,
	// summing offsets along the way.
	resolvedRoot := make([]int, numUnique)
	resolvedOffset := make([]uint32, numUnique)
	for i := 0; i < numUnique; i++ {
		cur := i
		var off uint32
		for depth := 0; !active[cur] && depth <= chainDepthCap; depth++ {
			r := redirects[cur]
			if r.target == cur {
				break
			}
			off += r.offset
			cur = r.target
		}
		resolvedRoot[i] = cur
		resolvedOffset[i] = off
	}

	// (e) Emit the super-buffer and rewrite node offsets.
	log.Debugf("constructing super-buffer")
	superBuffer := make([]byte, 0, len(labels))
	rootAddr := make([]uint32, numUnique)
	for i := 0; i < numUnique; i++ {
		if active[i] {
			rootAddr[i] = uint32(len(superBuffer))
			superBuffer = append(superBuffer, uniqueStrings[i]...)
		}
	}

	log.Debugf("updating pointers for %d nodes", total)
	for i := range nodes {
		uid := nodeToUnique[i]
		root := resolvedRoot[uid]
		nodes[i].LabelStart = rootAddr[root] + resolvedOffset[uid]
	}

	log.Debugf("label compression complete: %d bytes (from %d)", len(superBuffer), len(labels))
	return superBuffer
}

// reverseLess orders a before b when a's bytes, read from the end, are
// lexicographically smaller than b's - i.e. suffix order.
func reverseLess(a, b string) bool {
	i, j := len(a)-1, len(b)-1
	for i >= 0 && j >= 0 {
		if a[i] != b[j] {
			return a[i] < b[j]
		}
		i--
		j--
	}
	return len(a) < len(b)
}
