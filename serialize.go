package compacttrie

import "encoding/binary"

// nodeRecordSize is the on-wire (and in-memory) size of one CompactNode:
// two little-endian u32 words.
const nodeRecordSize = 8

// ToBytes serializes t into the little-endian binary format:
//
//	offset 0        : u32 node_count N
//	offset 4        : N * 8 bytes node records
//	offset 4+8N     : u32 label_count L
//	offset 8+8N     : L bytes label buffer
func (t *Trie) ToBytes() []byte {
	n := len(t.nodes)
	out := make([]byte, 4+n*nodeRecordSize+4+len(t.labels))

	binary.LittleEndian.PutUint32(out[0:4], uint32(n))

	off := 4
	for _, nd := range t.nodes {
		binary.LittleEndian.PutUint32(out[off:off+4], nd.LabelStart)
		binary.LittleEndian.PutUint32(out[off+4:off+8], nd.Packed)
		off += nodeRecordSize
	}

	binary.LittleEndian.PutUint32(out[off:off+4], uint32(len(t.labels)))
	off += 4
	copy(out[off:], t.labels)

	return out
}

// FromBytes deserializes the format written by ToBytes. It returns
// ErrCorruptImage if data is shorter than its declared sections, or any
// node's label range or first_child index falls outside the buffers it
// indexes into.
func FromBytes(data []byte) (*Trie, error) {
	if len(data) < 4 {
		return nil, ErrCorruptImage
	}
	n := binary.LittleEndian.Uint32(data[0:4])

	nodesStart := 4
	nodesEnd := nodesStart + int(n)*nodeRecordSize
	if nodesEnd+4 > len(data) {
		return nil, ErrCorruptImage
	}

	nodes := make([]CompactNode, n)
	off := nodesStart
	for i := range nodes {
		nodes[i].LabelStart = binary.LittleEndian.Uint32(data[off : off+4])
		nodes[i].Packed = binary.LittleEndian.Uint32(data[off+4 : off+8])
		off += nodeRecordSize
	}

	labelCount := binary.LittleEndian.Uint32(data[nodesEnd : nodesEnd+4])
	labelsStart := nodesEnd + 4
	labelsEnd := labelsStart + int(labelCount)
	if labelsEnd > len(data) {
		return nil, ErrCorruptImage
	}

	labels := make([]byte, labelCount)
	copy(labels, data[labelsStart:labelsEnd])

	for _, nd := range nodes {
		if uint64(nd.LabelStart)+uint64(nd.LabelLen()) > uint64(labelCount) {
			return nil, ErrCorruptImage
		}
		if fc := nd.FirstChild(); fc != SentinelChild && fc >= n {
			return nil, ErrCorruptImage
		}
	}

	return &Trie{nodes: nodes, labels: labels}, nil
}
