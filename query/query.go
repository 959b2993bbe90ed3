// Package query remembers resolved video identifiers and suggests them back
// for shell completion and the interactive prompt.
package query

import (
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/vidsel/vidsel/filesystem"
	"github.com/vidsel/vidsel/key"
	"github.com/vidsel/vidsel/where"
	"golang.org/x/exp/slices"
)

// history counts how often each video ID was resolved.
type history map[string]int

var (
	mu       sync.Mutex
	openOnce sync.Once
	file     *gache.Cache[history]
)

// cache is opened on first use so tests can swap the filesystem before it.
func cache() *gache.Cache[history] {
	openOnce.Do(func() {
		file = filesystem.Store[history](where.Queries(), 0)
	})
	return file
}

func load() history {
	h, expired, err := cache().Get()
	if err != nil || expired || h == nil {
		return history{}
	}
	return h
}

// Remember counts one more resolution of id.
func Remember(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	h := load()
	h[id]++
	return cache().Set(h)
}

// SuggestMany returns remembered IDs fuzzily matching partial, most resolved first.
// It returns nothing when resolve.show_suggestions is off.
func SuggestMany(partial string) []string {
	if !viper.GetBool(key.ResolveShowSuggestions) {
		return nil
	}

	mu.Lock()
	h := load()
	mu.Unlock()

	partial = strings.TrimSpace(partial)
	ids := lo.Filter(lo.Keys(h), func(id string, _ int) bool {
		return fuzzy.Match(partial, id)
	})

	slices.SortFunc(ids, func(a, b string) int {
		if h[a] != h[b] {
			return h[b] - h[a]
		}
		return strings.Compare(a, b)
	})
	return ids
}

// Suggest returns the single best match for partial.
func Suggest(partial string) mo.Option[string] {
	return mo.TupleToOption(lo.First(SuggestMany(partial)))
}
