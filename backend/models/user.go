package models

import "gorm.io/gorm"

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	gorm.Model
	Name         string `json:"name"`
	Email        string `json:"email" gorm:"unique;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
	Role         string `json:"role" gorm:"default:student"` // student, admin

	// AssignedCourseIDs is the ordered grant list for a student, stored as a
	// comma-separated id list. Order is display order, not enrollment time.
	AssignedCourseIDs string `json:"-"`
}

// AssignedIDs returns the assignment list in stored order.
func (u *User) AssignedIDs() []uint {
	return SplitIDs(u.AssignedCourseIDs)
}

// SetAssignedIDs replaces the assignment list, dropping repeated ids so a
// course appears at most once.
func (u *User) SetAssignedIDs(ids []uint) {
	seen := make(map[uint]bool, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	u.AssignedCourseIDs = JoinIDs(unique)
}
