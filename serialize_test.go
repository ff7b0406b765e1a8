package compacttrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	words := []string{"cat", "car", "cart", "carbon"}
	b := NewBuilder()
	for _, w := range words {
		b.Insert(w)
	}
	nodes, labels, err := b.Build()
	require.NoError(t, err)
	trie := NewTrie(nodes, labels)

	data := trie.ToBytes()
	restored, err := FromBytes(data)
	require.NoError(t, err)

	for _, w := range words {
		assert.True(t, restored.Contains(w), w)
	}
	assert.Equal(t, []string{"car", "carbon", "cart"}, restored.Suggest("car", 10))
	assert.Equal(t, trie.Suggest("car", 10), restored.Suggest("car", 10))
}

func TestRoundTripByteIdentical(t *testing.T) {
	trie := buildTrie(t, "apple", "app", "application", "applied")
	restored, err := FromBytes(trie.ToBytes())
	require.NoError(t, err)
	assert.Equal(t, trie.ToBytes(), restored.ToBytes())
}

func TestToBytesFormat(t *testing.T) {
	trie := buildTrie(t, "a")
	data := trie.ToBytes()

	n := len(trie.nodes)
	require.Len(t, data, 4+n*nodeRecordSize+4+len(trie.labels))
}

func TestFromBytesRejectsTruncatedHeader(t *testing.T) {
	_, err := FromBytes([]byte{1, 2})
	assert.ErrorIs(t, err, ErrCorruptImage)
}

func TestFromBytesRejectsTruncatedNodeArray(t *testing.T) {
	trie := buildTrie(t, "apple", "banana")
	data := trie.ToBytes()
	truncated := data[:4+len(trie.nodes)*nodeRecordSize-1]
	_, err := FromBytes(truncated)
	assert.ErrorIs(t, err, ErrCorruptImage)
}

func TestFromBytesRejectsTruncatedLabels(t *testing.T) {
	trie := buildTrie(t, "apple", "banana")
	data := trie.ToBytes()
	truncated := data[:len(data)-1]
	_, err := FromBytes(truncated)
	assert.ErrorIs(t, err, ErrCorruptImage)
}

func TestFromBytesRejectsOutOfRangeLabelStart(t *testing.T) {
	trie := buildTrie(t, "apple", "banana")
	data := trie.ToBytes()

	// Corrupt the first non-root node's label_start to point past the
	// label buffer.
	nodesStart := 4
	if len(trie.nodes) > 1 {
		off := nodesStart + nodeRecordSize
		huge := uint32(0x7FFFFFF0)
		data[off] = byte(huge)
		data[off+1] = byte(huge >> 8)
		data[off+2] = byte(huge >> 16)
		data[off+3] = byte(huge >> 24)
	}

	_, err := FromBytes(data)
	assert.ErrorIs(t, err, ErrCorruptImage)
}

func TestFromBytesRejectsOutOfRangeFirstChild(t *testing.T) {
	trie := buildTrie(t, "apple", "banana")
	data := trie.ToBytes()

	// Corrupt the root node's packed word so first_child points beyond N
	// but is not the sentinel.
	nodesStart := 4
	offPacked := nodesStart + 4
	bogus := uint32(len(trie.nodes) + 1000)
	data[offPacked] = byte(bogus)
	data[offPacked+1] = byte(bogus >> 8)
	data[offPacked+2] = byte(bogus >> 16)
	data[offPacked+3] = byte(bogus >> 24)

	_, err := FromBytes(data)
	assert.ErrorIs(t, err, ErrCorruptImage)
}

func TestBuildIsDeterministic(t *testing.T) {
	words := []string{"romane", "romanus", "romulus", "rubens", "ruber", "rubicon", "rubicundus"}

	build := func() ([]CompactNode, []byte) {
		b := NewBuilder()
		for _, w := range words {
			b.Insert(w)
		}
		nodes, labels, err := b.Build()
		require.NoError(t, err)
		return nodes, labels
	}

	nodes1, labels1 := build()
	nodes2, labels2 := build()
	assert.Equal(t, nodes1, nodes2)
	assert.Equal(t, labels1, labels2)
}
