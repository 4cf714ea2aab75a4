// Package resolve implements the generic fixed-point parent-reference
// resolver: brush, timestamp, and context parent chains are each
// resolved by the same work-list algorithm. Seed the entries that need
// no further resolution, then repeatedly move entries whose parent has
// become resolved, stopping when a round makes no progress. Whatever
// remains is cyclic or dangling and is reported to the caller to drop.
package resolve

import "sort"

// Entry is one participant in a fixed-point parent-chain resolution
// pass: an envelope exposing its own id, its raw (possibly empty or
// unresolved) parent reference string, and a way to attach the resolved
// parent once found.
type Entry[T any] interface {
	ID() string
	ParentRefOf() string
	SetParent(parent T)
}

// Parents resolves every entry's parent reference against the same
// table, in rounds, until no round makes further progress. seed reports
// whether an entry's parent_ref already counts as resolved with nothing
// further to attach (e.g. an empty parent_ref, or brush's conventional
// "#DefaultBrush"). toLocalID normalizes a raw parent_ref string into the
// bare id used as a table key (see internal/ids).
//
// Parents returns the ids left in the backlog once no further progress
// is possible: entries in a cycle, or whose parent_ref names an id
// absent from the table altogether. The caller is responsible for
// deleting these from its own tables and emitting one consolidated
// warning listing all dropped ids.
func Parents[T Entry[T]](table map[string]T, seed func(entry T) bool, toLocalID func(ref string) string) []string {
	resolved := make(map[string]bool, len(table))
	backlog := make(map[string]bool, len(table))
	for id, entry := range table {
		if seed(entry) {
			resolved[id] = true
		} else {
			backlog[id] = true
		}
	}

	for len(backlog) > 0 {
		var staged []string
		for id := range backlog {
			entry := table[id]
			parentID := toLocalID(entry.ParentRefOf())
			if !resolved[parentID] {
				continue
			}
			entry.SetParent(table[parentID])
			staged = append(staged, id)
		}
		if len(staged) == 0 {
			break
		}
		for _, id := range staged {
			resolved[id] = true
			delete(backlog, id)
		}
	}

	dropped := make([]string, 0, len(backlog))
	for id := range backlog {
		dropped = append(dropped, id)
	}
	sort.Strings(dropped)
	return dropped
}
