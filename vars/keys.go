package vars

import (
	"fmt"
	"strconv"
	"strings"
)

// Key identifies a single variable (continuous or discrete) of a model.
// Keys are opaque: hybnet containers compare them but never interpret them.
type Key uint64

// KeyFormatter renders a Key for display. Formatting is cosmetic only and
// never participates in equality or ordering.
type KeyFormatter func(Key) string

// DefaultKeyFormatter prints the raw decimal value of the key.
func DefaultKeyFormatter(k Key) string {
	return strconv.FormatUint(uint64(k), 10)
}

// symbolShift positions the tag character in the top byte of a Key,
// leaving 56 bits for the index.
const symbolShift = 56

// symbolIndexMask selects the index bits of a symbol-packed Key.
const symbolIndexMask = (Key(1) << symbolShift) - 1

// Symbol is a human-friendly key scheme packing a one-character tag and a
// 56-bit index into a single Key, e.g. x7 for the 8th pose or m1 for the
// 2nd mode variable. Purely a naming convenience: containers only ever see
// the packed Key.
type Symbol struct {
	tag byte
	idx uint64
}

// NewSymbol builds a Symbol from a tag character and an index.
// Indices wider than 56 bits are truncated into range.
func NewSymbol(tag byte, idx uint64) Symbol {
	return Symbol{tag: tag, idx: idx & uint64(symbolIndexMask)}
}

// SymbolFromKey unpacks a Key previously produced by Symbol.Key.
func SymbolFromKey(k Key) Symbol {
	return Symbol{tag: byte(k >> symbolShift), idx: uint64(k & symbolIndexMask)}
}

// Key returns the packed Key for this symbol.
func (s Symbol) Key() Key {
	return Key(s.tag)<<symbolShift | Key(s.idx)
}

// Tag returns the symbol's tag character.
func (s Symbol) Tag() byte { return s.tag }

// Index returns the symbol's index.
func (s Symbol) Index() uint64 { return s.idx }

// String renders the symbol as tag followed by index, e.g. "x7".
func (s Symbol) String() string {
	return fmt.Sprintf("%c%d", s.tag, s.idx)
}

// SymbolFormatter renders symbol-packed keys as "x7"-style names and falls
// back to DefaultKeyFormatter for keys whose top byte is not printable.
func SymbolFormatter(k Key) string {
	s := SymbolFromKey(k)
	if s.tag >= 'A' && s.tag <= 'z' {
		return s.String()
	}
	return DefaultKeyFormatter(k)
}

// FormatKeys renders a key slice with the given formatter, space-separated.
// A nil formatter falls back to DefaultKeyFormatter.
func FormatKeys(keys []Key, kf KeyFormatter) string {
	if kf == nil {
		kf = DefaultKeyFormatter
	}
	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(kf(k))
	}
	return sb.String()
}

// KeysEqual reports whether two key slices are identical element by element,
// order included.
func KeysEqual(a, b []Key) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// KeysEqualAsSets reports whether two key slices contain the same keys,
// ignoring order and multiplicity.
func KeysEqualAsSets(a, b []Key) bool {
	as := make(map[Key]struct{}, len(a))
	for _, k := range a {
		as[k] = struct{}{}
	}
	bs := make(map[Key]struct{}, len(b))
	for _, k := range b {
		bs[k] = struct{}{}
	}
	if len(as) != len(bs) {
		return false
	}
	for k := range as {
		if _, ok := bs[k]; !ok {
			return false
		}
	}
	return true
}
