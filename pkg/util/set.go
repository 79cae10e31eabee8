package util

import "strings"

type StringSet map[string]any

func NewStringSet(keys ...string) StringSet {
	ss := make(StringSet, len(keys))

	for _, k := range keys {
		ss.Add(k)
	}

	return ss
}

func (s StringSet) Add(key string) {
	s[key] = struct{}{}
}

func (s StringSet) Has(key string) bool {
	_, ok := s[key]

	return ok
}

func (s StringSet) List() []string {
	res := make([]string, 0, len(s))

	for k := range s {
		res = append(res, k)
	}

	return res
}

func (s StringSet) String() string {
	sb := strings.Builder{}

	var notFirst bool

	for k := range s {
		if notFirst {
			sb.WriteRune(',')
		} else {
			notFirst = true
		}

		sb.WriteString(k)
	}

	return sb.String()
}
