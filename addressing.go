package bitaddr

import (
	"errors"
	"fmt"
	"math/bits"
	"slices"
)

// ErrUnsupportedWordWidth is matched by every *UnsupportedWordWidthError.
var ErrUnsupportedWordWidth = errors.New("bitaddr: unsupported word width")

// UnsupportedWordWidthError reports a width a Table cannot address.
type UnsupportedWordWidthError struct {
	Table  string // table name
	Width  uint   // offending width
	Reason string // optional detail
}

func (e *UnsupportedWordWidthError) Error() string {
	msg := fmt.Sprintf("bitaddr: unsupported word width %d for table %q", e.Width, e.Table)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *UnsupportedWordWidthError) Is(target error) bool {
	return target == ErrUnsupportedWordWidth
}

// Table maps a word width to the number of low bit-index bits that select a
// position inside a word. A Table is immutable once built.
type Table struct {
	name   string
	shifts map[uint]uint8
}

var (
	// NativeWords addresses arrays of machine words: Shift = log2(Width).
	NativeWords = Table{
		name: "native",
		shifts: map[uint]uint8{
			8:   3,
			16:  4,
			32:  5,
			64:  6,
			128: 7,
		},
	}

	// DigestWords carves fixed-width hash digests into slots. It is
	// independent of NativeWords and does not follow log2: an 8-bit domain
	// gets 16 slots.
	DigestWords = Table{
		name: "digest",
		shifts: map[uint]uint8{
			8:   4,
			16:  3,
			32:  4,
			64:  5,
			128: 6,
		},
	}
)

// NewTable builds a Table from width→shift pairs. Every width must be a
// non-zero power of two and every shift must fit the native uint.
func NewTable(name string, shifts map[uint]uint8) (Table, error) {
	if len(shifts) == 0 {
		return Table{}, &UnsupportedWordWidthError{Table: name, Reason: "empty table"}
	}
	m := make(map[uint]uint8, len(shifts))
	for w, s := range shifts {
		if w == 0 || w&(w-1) != 0 {
			return Table{}, &UnsupportedWordWidthError{Table: name, Width: w, Reason: "not a power of two"}
		}
		if int(s) >= bits.UintSize {
			return Table{}, &UnsupportedWordWidthError{
				Table:  name,
				Width:  w,
				Reason: fmt.Sprintf("shift %d exceeds %d-bit word", s, bits.UintSize),
			}
		}
		m[w] = s
	}
	return Table{name: name, shifts: m}, nil
}

// Name returns the name the table was built with.
func (t Table) Name() string { return t.name }

// Widths returns the widths t supports in ascending order.
func (t Table) Widths() []uint {
	ws := make([]uint, 0, len(t.shifts))
	for w := range t.shifts {
		ws = append(ws, w)
	}
	slices.Sort(ws)
	return ws
}

// Derive returns the addressing constants for width. Widths not present in
// t yield an *UnsupportedWordWidthError and a zero Addressing; callers should
// treat that as a fatal configuration error.
func (t Table) Derive(width uint) (Addressing, error) {
	shift, ok := t.shifts[width]
	if !ok {
		return Addressing{}, &UnsupportedWordWidthError{Table: t.name, Width: width}
	}
	return Addressing{
		Width: width,
		Shift: shift,
		Mask:  lowMask(shift),
	}, nil
}

// lowMask returns a value with the low n bits set. For n == 0 the shift
// count equals the word size and Go yields 0.
func lowMask(n uint8) uint64 {
	k := uint(bits.UintSize) - uint(n)
	return uint64(^uint(0) << k >> k)
}

// Addressing holds the constants derived for one word width. It is a plain
// value and may be shared freely between goroutines.
type Addressing struct {
	Width uint   // word width in bits
	Shift uint8  // low index bits selecting a position within a word
	Mask  uint64 // low Shift bits set
}

// Span returns the number of bit slots per word, 1<<Shift. It equals Width
// for NativeWords.
func (a Addressing) Span() uint64 { return 1 << a.Shift }

// Words returns the number of words needed to hold nbits bits.
func (a Addressing) Words(nbits uint64) uint64 {
	return (nbits >> a.Shift) + ((nbits&a.Mask + a.Mask) >> a.Shift)
}

func (a Addressing) String() string {
	return fmt.Sprintf("w=%d shift=%d mask=%#x", a.Width, a.Shift, a.Mask)
}
