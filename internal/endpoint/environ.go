package endpoint

import (
	"os"
	"sort"
	"strconv"
	"strings"
)

// Environ is an immutable snapshot of environment variables. It is captured
// once at startup so resolution never reads process-wide state.
type Environ struct {
	vars map[string]string
}

// NewEnviron copies vars into a new snapshot.
func NewEnviron(vars map[string]string) Environ {
	cp := make(map[string]string, len(vars))
	for k, v := range vars {
		cp[k] = v
	}
	return Environ{vars: cp}
}

// FromPairs builds a snapshot from KEY=VALUE pairs as returned by os.Environ.
func FromPairs(pairs []string) Environ {
	vars := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = v
	}
	return Environ{vars: vars}
}

// FromOS snapshots the current process environment.
func FromOS() Environ {
	return FromPairs(os.Environ())
}

// Lookup returns the value of key and whether it is set.
func (e Environ) Lookup(key string) (string, bool) {
	v, ok := e.vars[key]
	return v, ok
}

// Get returns the trimmed value of key, or "" when unset.
func (e Environ) Get(key string) string {
	return strings.TrimSpace(e.vars[key])
}

// First returns the first non-empty value among keys.
func (e Environ) First(keys ...string) (string, string) {
	for _, k := range keys {
		if v := e.Get(k); v != "" {
			return v, k
		}
	}
	return "", ""
}

// Bool parses key as a boolean flag. Unset or unparsable values are false.
func (e Environ) Bool(key string) bool {
	v := strings.ToLower(e.Get(key))
	switch v {
	case "yes", "on":
		return true
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// Keys returns the variable names in sorted order.
func (e Environ) Keys() []string {
	keys := make([]string, 0, len(e.vars))
	for k := range e.vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len is the number of variables in the snapshot.
func (e Environ) Len() int { return len(e.vars) }
