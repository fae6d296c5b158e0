package clang

import (
	"sync"

	libclang "github.com/go-clang/clang-v14/clang"
)

// tuRegistry is the process-wide, concurrency-safe map from a native
// translation-unit handle to the *TranslationUnit wrapper that owns it.
//
// Cursors, types, tokens and locations handed back by a visitor callback
// carry only the native handle of the translation unit they belong to —
// the callback boundary has no room to smuggle our wrapper through. The
// registry resolves that handle back to the live wrapper so the result
// can hold a proper *TranslationUnit reference instead of a raw pointer.
//
// Entries are inserted when a TranslationUnit is constructed and removed
// when it is disposed. The registry never extends a TU's lifetime itself
// — it holds the same *TranslationUnit the caller already owns, and a
// lookup that finds nothing live is a fatal invariant violation (spec §3,
// invariant ii), not a recoverable miss.
type tuRegistry struct {
	mu      sync.RWMutex
	entries map[libclang.TranslationUnit]*TranslationUnit
}

var registry = &tuRegistry{
	entries: make(map[libclang.TranslationUnit]*TranslationUnit),
}

func (r *tuRegistry) insert(native libclang.TranslationUnit, tu *TranslationUnit) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[native]; exists {
		panicInvariant("translation unit %v already registered", native)
	}
	r.entries[native] = tu
}

func (r *tuRegistry) remove(native libclang.TranslationUnit) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, native)
}

// resolve looks up the wrapper for a native handle observed during a
// visitor callback or similar. A miss is fatal: it means a cursor (or
// type, token, location) outlived the translation unit that produced it,
// which sound ownership in this package should make impossible.
func (r *tuRegistry) resolve(native libclang.TranslationUnit) *TranslationUnit {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tu, ok := r.entries[native]
	if !ok {
		panicInvariant("no live translation unit registered for handle %v", native)
	}
	return tu
}
