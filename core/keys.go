// Package core defines the identifier types shared across varset.
package core

import (
	"fmt"
	"strconv"
)

// Key is the opaque identifier a variable is stored under.
// It is totally ordered and unique within one container instance.
type Key uint64

const (
	indexBits = 56
	indexMask = Key(1)<<indexBits - 1
)

// String renders the key symbolically when its tag byte is a printable
// ASCII character, and as a plain number otherwise.
func (k Key) String() string {
	c := byte(k >> indexBits)
	if c >= 'A' && c <= 'z' {
		return string(c) + strconv.FormatUint(uint64(k&indexMask), 10)
	}
	return strconv.FormatUint(uint64(k), 10)
}

// Symbol is a human-friendly key: a one-byte character tag plus a 56-bit
// index, e.g. x7 for the 8th pose variable. Symbols and plain numeric keys
// share the same Key space and may be mixed within one container.
type Symbol struct {
	chr   byte
	index uint64
}

// NewSymbol creates a symbol from a character tag and an index.
// The index must fit in 56 bits; larger indices are truncated.
func NewSymbol(c byte, index uint64) Symbol {
	return Symbol{chr: c, index: index & uint64(indexMask)}
}

// SymbolFromKey recovers the symbol packed into k.
func SymbolFromKey(k Key) Symbol {
	return Symbol{chr: byte(k >> indexBits), index: uint64(k & indexMask)}
}

// Key packs the symbol into a Key: tag in the top byte, index below.
func (s Symbol) Key() Key {
	return Key(s.chr)<<indexBits | Key(s.index)
}

// Chr returns the character tag.
func (s Symbol) Chr() byte { return s.chr }

// Index returns the index part.
func (s Symbol) Index() uint64 { return s.index }

// String returns e.g. "x7".
func (s Symbol) String() string {
	return fmt.Sprintf("%c%d", s.chr, s.index)
}
