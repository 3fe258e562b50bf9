// Package bitaddr maps bit indices onto arrays of fixed-width words.
//
// A bit index i in an unbounded bit sequence backed by words of W bits lives
// in word i>>S at bit i&M, where S = log2(W) and M = W-1. The pair (S, M) is
// looked up once from a Table and then used for every access:
//
//	a, err := bitaddr.NativeWords.Derive(64)
//	if err != nil {
//		// unsupported width, fail initialization
//	}
//	addr := a.Resolve(130) // Word 2, Bit 2
//	words[addr.Word] |= addr.Mask()
//
// Two tables are provided. NativeWords follows log2 strictly and is meant for
// arrays of machine words. DigestWords is used to carve hash digests into
// slots and is deliberately not derived from NativeWords: its 8-bit entry
// hands out 16 slots per word. Use Addressing.Span, not Width, when reasoning
// about how many slots a word holds.
//
// Nothing in this package checks a word index against a backing array; that
// is left to the caller.
package bitaddr
