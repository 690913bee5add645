package enum

import (
	"sort"
	"strconv"
)

// Member is one named constant of an enum set.
type Member interface {
	Code() int64
	String() string
}

// Set is a named group of enum constants, looked up by the schema through the enum name.
type Set struct {
	name    string
	members []Member
	byCode  map[int64]Member
	byName  map[string]Member
}

// Name returns the enum name used by field specs.
func (s *Set) Name() string {
	return s.name
}

// Members returns the constants ordered by code.
func (s *Set) Members() []Member {
	out := make([]Member, len(s.members))
	copy(out, s.members)
	return out
}

// ByCode returns the member with the given numeric code.
func (s *Set) ByCode(code int64) (Member, bool) {
	m, ok := s.byCode[code]
	return m, ok
}

// ByName returns the member with the given name.
func (s *Set) ByName(name string) (Member, bool) {
	m, ok := s.byName[name]
	return m, ok
}

var sets = map[string]*Set{}

// Lookup returns the enum set registered under name.
func Lookup(name string) (*Set, bool) {
	s, ok := sets[name]
	return s, ok
}

// Names returns all registered enum names, sorted.
func Names() []string {
	names := make([]string, 0, len(sets))
	for name := range sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type code interface {
	~uint8
	Member
}

// table keeps the names of one typed enum and the Set built from them.
type table[T code] struct {
	set   *Set
	names map[T]string
}

func newTable[T code](name string, names map[T]string) *table[T] {
	if _, ok := sets[name]; ok {
		panic("enum: duplicate set " + name)
	}
	s := &Set{
		name:   name,
		byCode: make(map[int64]Member, len(names)),
		byName: make(map[string]Member, len(names)),
	}
	for value, n := range names {
		s.members = append(s.members, value)
		s.byCode[int64(value)] = value
		s.byName[n] = value
	}
	sort.Slice(s.members, func(i, j int) bool {
		return s.members[i].Code() < s.members[j].Code()
	})
	sets[name] = s
	return &table[T]{set: s, names: names}
}

func (t *table[T]) name(v T) string {
	if n, ok := t.names[v]; ok {
		return n
	}
	return t.set.name + "(" + strconv.Itoa(int(v)) + ")"
}

func (t *table[T]) has(v T) bool {
	_, ok := t.names[v]
	return ok
}
