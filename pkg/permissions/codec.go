package permissions

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
)

// MaxWidth is the widest flag table a Codec can describe.
const MaxWidth = 64

// Position binds a flag to a bit position. Bit 0 is the most-significant bit
// of the codec width.
type Position[F ~string] struct {
	Bit  int
	Flag F
}

// Codec is a fixed-width, MSB-first flag table. The same table drives decode,
// encode, single-flag and bulk mutation.
//
// A Codec is immutable after construction and safe for concurrent use. The
// Sets it produces are not.
type Codec[F ~string] struct {
	name      string
	width     int
	positions []Position[F] // ordered by Bit
	index     map[F]int
	keys      map[string]F
	mask      uint64
}

// NewCodec builds a codec of the given width from its named positions. Any
// position in [0, width) that is not listed is reserved.
func NewCodec[F ~string](name string, width int, positions ...Position[F]) (*Codec[F], error) {
	if width < 1 || width > MaxWidth {
		return nil, fmt.Errorf("%w: width %d out of range [1, %d]", ErrInvalidTable, width, MaxWidth)
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("%w: no positions", ErrInvalidTable)
	}

	sorted := make([]Position[F], len(positions))
	copy(sorted, positions)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Bit < sorted[j].Bit })

	c := &Codec[F]{
		name:      name,
		width:     width,
		positions: sorted,
		index:     make(map[F]int, len(sorted)),
		keys:      make(map[string]F, len(sorted)),
	}

	for i, p := range sorted {
		if p.Bit < 0 || p.Bit >= width {
			return nil, fmt.Errorf("%w: bit %d of %q outside width %d", ErrInvalidTable, p.Bit, p.Flag, width)
		}
		if p.Flag == "" {
			return nil, fmt.Errorf("%w: empty flag at bit %d", ErrInvalidTable, p.Bit)
		}
		if i > 0 && sorted[i-1].Bit == p.Bit {
			return nil, fmt.Errorf("%w: bit %d assigned to %q and %q", ErrInvalidTable, p.Bit, sorted[i-1].Flag, p.Flag)
		}
		if _, exists := c.index[p.Flag]; exists {
			return nil, fmt.Errorf("%w: flag %q listed twice", ErrInvalidTable, p.Flag)
		}
		key := normalizeName(string(p.Flag))
		if other, exists := c.keys[key]; exists {
			return nil, fmt.Errorf("%w: flags %q and %q normalize to the same name", ErrInvalidTable, other, p.Flag)
		}

		c.index[p.Flag] = i
		c.keys[key] = p.Flag
		c.mask |= c.bit(p.Bit)
	}

	return c, nil
}

// MustCodec is like NewCodec but panics on a malformed table. It is meant for
// package-level codec variables.
func MustCodec[F ~string](name string, width int, positions ...Position[F]) *Codec[F] {
	c, err := NewCodec(name, width, positions...)
	if err != nil {
		panic(fmt.Sprintf("permissions: codec %s: %v", name, err))
	}
	return c
}

// Name returns the codec name, e.g. "archive".
func (c *Codec[F]) Name() string {
	return c.name
}

// Width returns the number of bits in the wire representation.
func (c *Codec[F]) Width() int {
	return c.width
}

// Mask returns the level with every named bit set and every reserved bit clear.
func (c *Codec[F]) Mask() uint64 {
	return c.mask
}

// Max returns the largest value representable in the codec width.
func (c *Codec[F]) Max() uint64 {
	if c.width == MaxWidth {
		return ^uint64(0)
	}
	return uint64(1)<<c.width - 1
}

// Flags returns the named flags ordered from most- to least-significant bit.
func (c *Codec[F]) Flags() []F {
	flags := make([]F, len(c.positions))
	for i, p := range c.positions {
		flags[i] = p.Flag
	}
	return flags
}

// Positions returns a copy of the flag table.
func (c *Codec[F]) Positions() []Position[F] {
	out := make([]Position[F], len(c.positions))
	copy(out, c.positions)
	return out
}

// Reserved returns the bit positions that carry no flag.
func (c *Codec[F]) Reserved() []int {
	var reserved []int
	next := 0
	for bit := 0; bit < c.width; bit++ {
		if next < len(c.positions) && c.positions[next].Bit == bit {
			next++
			continue
		}
		reserved = append(reserved, bit)
	}
	return reserved
}

// BitOf returns the position of a flag.
func (c *Codec[F]) BitOf(flag F) (int, bool) {
	i, ok := c.index[flag]
	if !ok {
		return -1, false
	}
	return c.positions[i].Bit, true
}

// Lookup resolves a flag from user input. Matching ignores case and word
// separators, so "full-api-access", "full_api_access" and "FullAPIAccess"
// resolve to the same flag.
func (c *Codec[F]) Lookup(name string) (F, error) {
	if f, ok := c.index[F(name)]; ok {
		return c.positions[f].Flag, nil
	}
	if f, ok := c.keys[normalizeName(name)]; ok {
		return f, nil
	}
	var zero F
	return zero, fmt.Errorf("%w: %q is not in the %s table", ErrUnknownFlag, name, c.name)
}

// New returns an all-false set with level 0.
func (c *Codec[F]) New() *Set[F] {
	return &Set[F]{
		codec:  c,
		values: make([]bool, len(c.positions)),
	}
}

// Decode reads the named flags out of level. Only the low Width bits are
// consulted. The returned set keeps level verbatim until its first mutation
// or Encode call.
func (c *Codec[F]) Decode(level uint64) *Set[F] {
	s := c.New()
	c.decodeInto(s, level)
	return s
}

// FromLevel decodes level and immediately re-encodes it, so reserved and
// out-of-range bits are dropped from the set's level.
func (c *Codec[F]) FromLevel(level uint64) *Set[F] {
	s := c.Decode(level)
	s.Encode()
	return s
}

// DecodeInt decodes a signed level as received from loosely typed sources.
func (c *Codec[F]) DecodeInt(level int64) (*Set[F], error) {
	if level < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLevel, level)
	}
	return c.Decode(uint64(level)), nil
}

// ParseLevel decodes a level written as a decimal, or with a 0b, 0o or 0x
// prefix.
func (c *Codec[F]) ParseLevel(s string) (*Set[F], error) {
	level, err := parseLevel(s)
	if err != nil {
		return nil, err
	}
	return c.Decode(level), nil
}

// Encode packs a flag assignment into a level. Flags missing from values are
// false. Unknown flags are rejected.
func (c *Codec[F]) Encode(values map[F]bool) (uint64, error) {
	var level uint64
	for f, v := range values {
		i, ok := c.index[f]
		if !ok {
			return 0, fmt.Errorf("%w: %q is not in the %s table", ErrUnknownFlag, f, c.name)
		}
		if v {
			level |= c.bit(c.positions[i].Bit)
		}
	}
	return level, nil
}

// FormatBits renders level as a binary string padded to the codec width.
func (c *Codec[F]) FormatBits(level uint64) string {
	return fmt.Sprintf("%0*b", c.width, level&c.Max())
}

func (c *Codec[F]) bit(pos int) uint64 {
	return uint64(1) << (c.width - 1 - pos)
}

func (c *Codec[F]) decodeInto(s *Set[F], level uint64) {
	for i, p := range c.positions {
		s.values[i] = level&c.bit(p.Bit) != 0
	}
	s.level = level
}

func (c *Codec[F]) encode(values []bool) uint64 {
	var level uint64
	for i, p := range c.positions {
		if values[i] {
			level |= c.bit(p.Bit)
		}
	}
	return level
}

func normalizeName(name string) string {
	return strcase.ToSnake(strings.TrimSpace(name))
}

func parseLevel(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		n, err := strconv.ParseInt(s, 0, 64)
		if err == nil && n == 0 {
			return 0, nil
		}
		if err == nil {
			return 0, fmt.Errorf("%w: %s", ErrNegativeLevel, s)
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	level, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return level, nil
}
