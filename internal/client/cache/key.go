// Package cache builds canonical keys from query parameters and keeps the
// unbounded page caches that deduplicate list fetches.
package cache

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// Separator joins key:value pairs in a cache key.
const Separator = "|"

// Params is a set of query parameters. Empty values mean "not set".
type Params map[string]string

// Key returns the canonical cache key of p: empty values are dropped, the
// remaining keys sorted lexicographically and joined as key:value pairs.
// Two Params that differ only in insertion order or in unset entries yield the
// same key. Keys and values are query-escaped, so a separator inside a value
// cannot forge another pair.
func Key(p Params) string {
	keys := make([]string, 0, len(p))
	for k, v := range p {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString(Separator)
		}
		b.WriteString(pair(k, p[k]))
	}
	return b.String()
}

// KeyHas reports whether key, as built by Key, contains the pair k:v.
func KeyHas(key, k, v string) bool {
	want := pair(k, v)
	for part := range strings.SplitSeq(key, Separator) {
		if part == want {
			return true
		}
	}
	return false
}

func pair(k, v string) string {
	return url.QueryEscape(k) + ":" + url.QueryEscape(v)
}

// Clone returns a copy of p that is never nil.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// With returns a copy of p with k set to v.
func (p Params) With(k, v string) Params {
	out := p.Clone()
	out[k] = v
	return out
}

// SetInt sets k to n, or removes it when n is zero.
func (p Params) SetInt(k string, n int) Params {
	if n == 0 {
		delete(p, k)
		return p
	}
	p[k] = strconv.Itoa(n)
	return p
}

// Values encodes the non-empty entries as URL query values.
func (p Params) Values() url.Values {
	v := make(url.Values, len(p))
	for k, val := range p {
		if val != "" {
			v.Set(k, val)
		}
	}
	return v
}

// ParseParams turns "k=v" tokens into Params; tokens without '=' are ignored.
func ParseParams(tokens []string) Params {
	p := make(Params, len(tokens))
	for _, t := range tokens {
		k, v, ok := strings.Cut(t, "=")
		if !ok || k == "" {
			continue
		}
		p[k] = v
	}
	return p
}
