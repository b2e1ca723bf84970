// Package tracking implements course access resolution, completion math,
// the in-memory progress store and certificate issuance. It has no HTTP or
// database dependencies; controllers and the API client both build on it.
package tracking

import "academy/backend/models"

// ResolveAccess returns the subsequence of assigned that resolves to catalog
// entries, in assignment order. Ids with no catalog match are dropped. An
// empty or nil assignment yields an empty result: a student with no explicit
// grant sees nothing.
func ResolveAccess(assigned []uint, catalog []models.Course) []models.Course {
	byID := make(map[uint]models.Course, len(catalog))
	for _, c := range catalog {
		byID[c.ID] = c
	}

	visible := make([]models.Course, 0, len(assigned))
	for _, id := range assigned {
		if c, ok := byID[id]; ok {
			visible = append(visible, c)
		}
	}
	return visible
}
