package hashid

import "sync"

// scratch carries the per-call mutable buffers: the working alphabet copy
// that gets permuted before every number, the shuffle seed buffer, and the
// digit expansion buffer. Instances are pooled as a pure optimization; a
// scratch is owned by exactly one call between acquire and release, so no
// state ever aliases across concurrent calls.
type scratch struct {
	alphabet []rune
	seed     []rune
	digits   []rune
}

var scratchPool = sync.Pool{
	New: func() any { return new(scratch) },
}

// acquireScratch returns a scratch with alphabet and seed sized to n.
// Contents are unspecified; callers fully populate both before use.
func acquireScratch(n int) *scratch {
	sc := scratchPool.Get().(*scratch)
	if cap(sc.alphabet) < n {
		sc.alphabet = make([]rune, n)
		sc.seed = make([]rune, n)
	}
	sc.alphabet = sc.alphabet[:n]
	sc.seed = sc.seed[:n]
	sc.digits = sc.digits[:0]
	return sc
}

// releaseScratch returns sc to the pool. sc must not be used afterwards.
func releaseScratch(sc *scratch) {
	scratchPool.Put(sc)
}
