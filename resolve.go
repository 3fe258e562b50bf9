package bitaddr

// Address locates a single bit: word Word of the backing array, bit Bit of
// that word, with 0 the least significant bit.
type Address struct {
	Word uint64
	Bit  uint
}

// Mask returns the one-bit selector for a within a native word.
func (a Address) Mask() uint { return 1 << a.Bit }

// Resolve splits bitIndex into a word index and an intra-word offset using
// shift and mask from a derived Addressing. It never fails; the word index
// is not checked against any array.
func Resolve(bitIndex uint64, shift uint8, mask uint64) Address {
	return Address{
		Word: bitIndex >> shift,
		Bit:  uint(bitIndex & mask),
	}
}

// Resolve is Resolve(bitIndex, a.Shift, a.Mask).
func (a Addressing) Resolve(bitIndex uint64) Address {
	return Resolve(bitIndex, a.Shift, a.Mask)
}

// Join is the inverse of Resolve.
func (a Addressing) Join(addr Address) uint64 {
	return addr.Word<<a.Shift | uint64(addr.Bit)&a.Mask
}
