// Package folder implements the per-folder asset index and the load-cycle
// state tracking that reconciles "folder enumerated" with "every discovered
// asset reached a terminal outcome".
//
// One load cycle covers one (folder, suffix) pair and owns its own Index and
// Tracker. A reload is a fresh cycle with fresh instances; nothing here is
// mutated across cycles, which avoids stale entries when files disappear
// between loads.
package folder

// Entry is one identifier-to-reference pair in an Index snapshot.
type Entry[K comparable, R any] struct {
	ID  K
	Ref R
}

// Index maps asset identifiers to opaque references handed out by the asset
// loader. References are stored and returned, never inspected. Entries are
// only ever added or overwritten, never deleted; a full reload builds a
// new Index instead of mutating this one.
//
// Iteration order is an implementation detail. Callers must not rely on it.
type Index[K comparable, R any] struct {
	refs  map[K]R
	order []K
}

// NewIndex returns an empty index.
func NewIndex[K comparable, R any]() *Index[K, R] {
	return &Index[K, R]{refs: make(map[K]R)}
}

// Get returns the reference for id and true, or the zero reference and false
// when absent.
func (x *Index[K, R]) Get(id K) (R, bool) {
	ref, ok := x.refs[id]
	return ref, ok
}

// Contains reports whether id is present.
func (x *Index[K, R]) Contains(id K) bool {
	_, ok := x.refs[id]
	return ok
}

// Insert adds or overwrites the reference for id. When id is already present
// the prior reference is dropped and the entry count is unchanged: last write
// wins. The external asset system remains the source of truth for the dropped
// reference's validity.
func (x *Index[K, R]) Insert(id K, ref R) {
	if _, ok := x.refs[id]; !ok {
		x.order = append(x.order, id)
	}
	x.refs[id] = ref
}

// Len returns the current entry count.
func (x *Index[K, R]) Len() int {
	return len(x.refs)
}

// Entries returns a snapshot of the current contents. The snapshot is stable
// and restartable for as long as the caller holds it; later inserts do not
// affect it.
func (x *Index[K, R]) Entries() []Entry[K, R] {
	entries := make([]Entry[K, R], 0, len(x.order))
	for _, id := range x.order {
		entries = append(entries, Entry[K, R]{ID: id, Ref: x.refs[id]})
	}
	return entries
}

// IDs returns a snapshot of the current identifiers.
func (x *Index[K, R]) IDs() []K {
	ids := make([]K, len(x.order))
	copy(ids, x.order)
	return ids
}
