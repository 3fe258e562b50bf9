package bitaddr

const (
	_m    = ^uint(0)
	_logS = _m>>8&1 + _m>>16&1 + _m>>32&1
	_S    = 1 << _logS

	// WordBits is the width of the platform's uint in bits.
	WordBits = _S << 3
)

// Native derives NativeWords for the platform word size.
func Native() (Addressing, error) {
	return NativeWords.Derive(WordBits)
}
