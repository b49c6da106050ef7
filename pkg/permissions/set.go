package permissions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Set is one flag assignment for a codec together with its level.
//
// Every mutating method re-encodes the level, so Level never lags the flags.
// The only exception is a set returned by Codec.Decode, which reports the
// level it was decoded from until it is first mutated or encoded.
//
// The zero value of a Set over ArchiveFlag, InboxFlag or FieldProperty is an
// empty set of the matching built-in codec.
type Set[F ~string] struct {
	codec  *Codec[F]
	values []bool
	level  uint64
}

// Codec returns the codec the set belongs to.
func (s *Set[F]) Codec() *Codec[F] {
	s.bind()
	return s.codec
}

// Level returns the current wire value.
func (s *Set[F]) Level() uint64 {
	s.bind()
	return s.level
}

// Encode recomputes the level from the flags alone and returns it.
func (s *Set[F]) Encode() uint64 {
	s.bind()
	s.level = s.codec.encode(s.values)
	return s.level
}

// Has reports whether flag is set. It panics if flag is not in the codec's
// table; use Codec.Lookup to validate untrusted names.
func (s *Set[F]) Has(flag F) bool {
	i := s.mustIndex(flag)
	return s.values[i]
}

// Set assigns a single flag. It panics if flag is not in the codec's table.
func (s *Set[F]) Set(flag F, value bool) {
	i := s.mustIndex(flag)
	s.values[i] = value
	s.Encode()
}

// Enable sets the given flags to true.
func (s *Set[F]) Enable(flags ...F) {
	for _, f := range flags {
		i := s.mustIndex(f)
		s.values[i] = true
	}
	s.Encode()
}

// Disable sets the given flags to false.
func (s *Set[F]) Disable(flags ...F) {
	for _, f := range flags {
		i := s.mustIndex(f)
		s.values[i] = false
	}
	s.Encode()
}

// SetByName assigns a flag identified by a user-supplied name.
func (s *Set[F]) SetByName(name string, value bool) error {
	s.bind()
	f, err := s.codec.Lookup(name)
	if err != nil {
		return err
	}
	s.Set(f, value)
	return nil
}

// EnableNames enables every named flag. If any name is unknown nothing is
// changed and all unknown names are reported.
func (s *Set[F]) EnableNames(names ...string) error {
	return s.assignNames(names, true)
}

// DisableNames disables every named flag, with the same all-or-nothing
// behavior as EnableNames.
func (s *Set[F]) DisableNames(names ...string) error {
	return s.assignNames(names, false)
}

// SelectAll sets every named flag. Reserved bits stay zero.
func (s *Set[F]) SelectAll() {
	s.fill(true)
}

// ClearAll clears every named flag; the level becomes 0.
func (s *Set[F]) ClearAll() {
	s.fill(false)
}

// Enabled returns the set flags ordered from most- to least-significant bit.
func (s *Set[F]) Enabled() []F {
	s.bind()
	var out []F
	for i, p := range s.codec.positions {
		if s.values[i] {
			out = append(out, p.Flag)
		}
	}
	return out
}

// Flags returns a copy of the assignment with one entry per named flag.
func (s *Set[F]) Flags() map[F]bool {
	s.bind()
	out := make(map[F]bool, len(s.values))
	for i, p := range s.codec.positions {
		out[p.Flag] = s.values[i]
	}
	return out
}

// Bits renders the flags as a binary string of the codec width, most
// significant bit first. Reserved positions are always '0'.
func (s *Set[F]) Bits() string {
	s.bind()
	return s.codec.FormatBits(s.codec.encode(s.values))
}

// Equal reports whether both sets use the same codec and hold the same flags.
// Levels are not compared.
func (s *Set[F]) Equal(other *Set[F]) bool {
	if other == nil {
		return false
	}
	s.bind()
	other.bind()
	if s.codec != other.codec {
		return false
	}
	for i := range s.values {
		if s.values[i] != other.values[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (s *Set[F]) Clone() *Set[F] {
	s.bind()
	values := make([]bool, len(s.values))
	copy(values, s.values)
	return &Set[F]{codec: s.codec, values: values, level: s.level}
}

// String returns the enabled flags, e.g. "[Add|View]".
func (s *Set[F]) String() string {
	enabled := s.Enabled()
	names := make([]string, len(enabled))
	for i, f := range enabled {
		names[i] = string(f)
	}
	return "[" + strings.Join(names, "|") + "]"
}

// MarshalJSON implements json.Marshaler. A set is serialized as the level
// encoded from its flags. The value receiver lets sets held by value in
// non-addressable structs marshal as levels too.
func (s Set[F]) MarshalJSON() ([]byte, error) {
	c := s.codec
	if c == nil {
		c = builtinCodec[F]()
		if c == nil {
			return nil, fmt.Errorf("permissions: set has no codec")
		}
		return []byte("0"), nil
	}
	return strconv.AppendUint(nil, c.encode(s.values), 10), nil
}

// UnmarshalJSON implements json.Unmarshaler. Numbers and numeric strings are
// accepted; null leaves the set unchanged.
func (s *Set[F]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidLevel, data)
		}
	}

	level, err := parseLevel(raw)
	if err != nil {
		return err
	}

	s.bind()
	s.codec.decodeInto(s, level)
	return nil
}

func (s *Set[F]) assignNames(names []string, value bool) error {
	s.bind()

	var result *multierror.Error
	flags := make([]F, 0, len(names))
	for _, name := range names {
		f, err := s.codec.Lookup(name)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		flags = append(flags, f)
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	for _, f := range flags {
		s.values[s.codec.index[f]] = value
	}
	s.Encode()
	return nil
}

func (s *Set[F]) fill(value bool) {
	s.bind()
	for i := range s.values {
		s.values[i] = value
	}
	s.Encode()
}

func (s *Set[F]) mustIndex(flag F) int {
	s.bind()
	i, ok := s.codec.index[flag]
	if !ok {
		panic(fmt.Errorf("%w: %q is not in the %s table", ErrUnknownFlag, flag, s.codec.name))
	}
	return i
}

func (s *Set[F]) bind() {
	if s.codec != nil {
		return
	}
	c := builtinCodec[F]()
	if c == nil {
		var zero F
		panic(fmt.Sprintf("permissions: zero Set[%T] has no codec; create it with Codec.New", zero))
	}
	s.codec = c
	s.values = make([]bool, len(c.positions))
}

// builtinCodec returns the package codec for the built-in flag types, or nil.
func builtinCodec[F ~string]() *Codec[F] {
	var zero F
	switch any(zero).(type) {
	case ArchiveFlag:
		return any(Archive).(*Codec[F])
	case InboxFlag:
		return any(Inbox).(*Codec[F])
	case FieldProperty:
		return any(Field).(*Codec[F])
	}
	return nil
}
