package base

import (
	"strconv"
	"strings"
)

// StringSliceVar defines a repeatable string flag. Each occurrence may also
// hold a comma-separated list.
func (f *FlagSet) StringSliceVar(p *[]string, name, usage string) {
	f.Var((*stringSliceValue)(p), name, usage)
}

// IntSliceVar defines a repeatable integer flag.
func (f *FlagSet) IntSliceVar(p *[]int, name, usage string) {
	f.Var((*intSliceValue)(p), name, usage)
}

type stringSliceValue []string

func (s *stringSliceValue) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *stringSliceValue) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*s = append(*s, part)
		}
	}
	return nil
}

type intSliceValue []int

func (s *intSliceValue) String() string {
	if s == nil {
		return ""
	}
	parts := make([]string, len(*s))
	for i, n := range *s {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func (s *intSliceValue) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return err
		}
		*s = append(*s, n)
	}
	return nil
}
