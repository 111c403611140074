package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// TrackedQuery is a query that remembers its previous result set so each
// Refresh can report which entities started and stopped matching.
type TrackedQuery struct {
	query *query.Query

	prev    map[donburi.Entity]struct{}
	results []donburi.Entity
	added   []donburi.Entity
	removed []donburi.Entity
	order   []donburi.Entity
}

// NewTrackedQuery tracks entities matching f.
func NewTrackedQuery(f filter.LayoutFilter) *TrackedQuery {
	return &TrackedQuery{
		query: donburi.NewQuery(f),
		prev:  make(map[donburi.Entity]struct{}),
	}
}

// Refresh recomputes the result set and the added/removed diff against the
// previous Refresh. The first Refresh reports every match as added.
func (q *TrackedQuery) Refresh(w donburi.World) {
	q.results = q.results[:0]
	q.added = q.added[:0]
	q.removed = q.removed[:0]

	cur := make(map[donburi.Entity]struct{}, len(q.prev))
	q.query.Each(w, func(e *donburi.Entry) {
		ent := e.Entity()
		cur[ent] = struct{}{}
		q.results = append(q.results, ent)
		if _, ok := q.prev[ent]; !ok {
			q.added = append(q.added, ent)
		}
	})
	for _, ent := range q.order {
		if _, ok := cur[ent]; !ok {
			q.removed = append(q.removed, ent)
		}
	}

	q.prev = cur
	q.order = append(q.order[:0], q.results...)
}

// Results returns every entity matching at the last Refresh.
func (q *TrackedQuery) Results() []donburi.Entity { return q.results }

// Added returns entities that started matching at the last Refresh.
func (q *TrackedQuery) Added() []donburi.Entity { return q.added }

// Removed returns entities that stopped matching at the last Refresh. They
// may no longer be valid.
func (q *TrackedQuery) Removed() []donburi.Entity { return q.removed }

// IsAdded reports whether ent is in Added.
func (q *TrackedQuery) IsAdded(ent donburi.Entity) bool {
	for _, a := range q.added {
		if a == ent {
			return true
		}
	}
	return false
}
