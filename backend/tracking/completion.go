package tracking

import (
	"math"

	"academy/backend/models"
)

type Status string

const (
	NotStarted Status = "not_started"
	InProgress Status = "in_progress"
	Completed  Status = "completed"
)

// Percent is the rounded completion percentage for a course. A course with no
// lessons is 0% regardless of stored ids. The stored completed count is used
// directly against the lesson total; callers keep the sets clean at the
// toggle boundary.
func Percent(course models.Course, completed LessonSet) int {
	total := course.LessonCount()
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(len(completed)) * 100 / float64(total)))
}

// Classify buckets a course as completed, in progress or not started.
// Completed requires a full 100% on a course that actually has lessons.
func Classify(course models.Course, completed LessonSet) Status {
	total := course.LessonCount()
	if total > 0 && Percent(course, completed) == 100 {
		return Completed
	}
	if len(completed) > 0 {
		return InProgress
	}
	return NotStarted
}

// Summary tallies classification across a resolved course list.
type Summary struct {
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
}

func Summarize(courses []models.Course, progress map[uint]LessonSet) Summary {
	var s Summary
	for _, c := range courses {
		switch Classify(c, progress[c.ID]) {
		case Completed:
			s.Completed++
		case InProgress:
			s.InProgress++
		}
	}
	return s
}
