package models

import "gorm.io/gorm"

// CourseProgress holds one student's completed-lesson set for one course,
// serialized as a comma-separated lesson id list. Created on first toggle,
// replaced wholesale on every save.
type CourseProgress struct {
	gorm.Model
	UserID           uint   `json:"user_id" gorm:"uniqueIndex:idx_progress_user_course"`
	CourseID         uint   `json:"course_id" gorm:"uniqueIndex:idx_progress_user_course"`
	CompletedLessons string `json:"-"`
}

func (p *CourseProgress) LessonIDs() []uint {
	return SplitIDs(p.CompletedLessons)
}

func (p *CourseProgress) SetLessonIDs(ids []uint) {
	p.CompletedLessons = JoinIDs(ids)
}
