package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hashicorp/golang-lru/v2"

	"github.com/ranok/entro/mask"
)

// Comfortably above the token vocabulary (6 character classes + 8 parts of
// speech + any), so the cache only ever evicts under pathological use.
const resolverCacheSize = 64

// Source is what a class catalog must provide for the engine to resolve
// mask tokens against it. Members returns the ordered member list for a
// token (empty or nil when the token is unknown); Version moves whenever
// the catalog mutates, so stale cached lists can be detected.
type Source interface {
	Members(token string) []string
	Version() uint64
}

// Engine resolves masks against one Source, memoizing member lists. One
// engine instance is single-threaded by contract, matching the catalogs it
// wraps.
type Engine struct {
	src Source

	cache      *lru.Cache[string, []string]
	srcVersion uint64

	rng *rand.Rand
}

// New builds an engine over a class source.
func New(src Source) *Engine {
	cache, err := lru.New[string, []string](resolverCacheSize)
	if err != nil {
		// Only reachable with a non-positive size
		panic(err)
	}

	return &Engine{
		src:   src,
		cache: cache,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Resolve returns the ordered member list for a token, computing it once
// per catalog state and serving it from cache afterwards. A committed
// catalog mutation bumps the source version and drops every cached list, a
// stale list would silently enumerate the wrong candidates.
func (e *Engine) Resolve(token string) ([]string, error) {
	if v := e.src.Version(); v != e.srcVersion {
		e.cache.Purge()
		e.srcVersion = v
	}

	if members, ok := e.cache.Get(token); ok {
		return members, nil
	}

	members := e.src.Members(token)
	if len(members) == 0 {
		return nil, fmt.Errorf("token %q: %w", token, ErrEmptyClass)
	}

	e.cache.Add(token, members)
	return members, nil
}

// resolveMask resolves every token of a mask into its member list,
// position by position.
func (e *Engine) resolveMask(m mask.Mask) ([][]string, error) {
	lists := make([][]string, 0, len(m))
	for _, token := range m {
		members, err := e.Resolve(token)
		if err != nil {
			return nil, err
		}
		lists = append(lists, members)
	}
	return lists, nil
}
