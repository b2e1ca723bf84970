package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"academy/backend/models"
)

func course(id uint, title string) models.Course {
	return models.Course{Model: gorm.Model{ID: id}, Title: title}
}

func courseIDs(courses []models.Course) []uint {
	ids := make([]uint, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
	}
	return ids
}

func TestResolveAccessEmptyAssignment(t *testing.T) {
	catalog := []models.Course{course(1, "Go"), course(2, "SQL")}

	assert.Empty(t, ResolveAccess(nil, catalog))
	assert.Empty(t, ResolveAccess([]uint{}, catalog))
}

func TestResolveAccessPreservesAssignmentOrder(t *testing.T) {
	catalog := []models.Course{course(1, "Go"), course(2, "SQL"), course(3, "Git")}

	visible := ResolveAccess([]uint{2, 1}, catalog)
	assert.Equal(t, []uint{2, 1}, courseIDs(visible))
}

func TestResolveAccessDropsUnknownIDs(t *testing.T) {
	catalog := []models.Course{course(1, "Go"), course(3, "Git")}

	visible := ResolveAccess([]uint{9, 3, 7, 1}, catalog)
	assert.Equal(t, []uint{3, 1}, courseIDs(visible))
}

func TestResolveAccessEmptyCatalog(t *testing.T) {
	assert.Empty(t, ResolveAccess([]uint{1, 2}, nil))
}
