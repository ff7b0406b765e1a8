// Package compacttrie implements a compact, immutable radix trie optimized
// for prefix search and autocomplete over a static string dictionary.
//
// The package has two lives. Builder is a mutable, pointer-linked radix
// tree that accepts word insertions and splits edges on partial prefix
// match, same as a traditional compressed trie. Build flattens that pointer
// tree into a pair of tightly packed arrays - a fixed-size node array and a
// flat label byte buffer - then runs a label-compression pass that folds
// labels which are proper prefixes or suffixes of other labels into a
// shared super-buffer. Trie is the read-only view over the two arrays: it
// supports exact containment and prefix-suggestion queries directly against
// the packed form, with no decompression step, and round-trips through a
// small binary format.
//
// The words "HELLO" and "HELPER" take 8 nodes in an uncompressed trie:
//
//	+---+      +---+      +---+      +---+      +---+
//	| H | ---> | E | ---> | L | ---> | L | ---> | O |
//	+---+      +---+      +---+      +---+      +---+
//	                        |
//	                      +---+      +---+      +---+
//	                      | P | ---> | E | ---> | R |
//	                      +---+      +---+      +---+
//
// A radix trie stores the same two words in 4 nodes by keeping shared
// prefixes on the edges between nodes:
//
//	+---+  HEL  +---+  LO  +---+
//	|   | ----> |   | ---> |   |
//	+---+       +---+      +---+
//	              | PER
//	            +---+
//	            |   |
//	            +---+
//
// Builder is not safe for concurrent mutation; a built Trie is immutable and
// safe for concurrent reads. Labels and keys are treated as opaque byte
// sequences - the package never validates or normalizes UTF-8.
package compacttrie
