package models

import "gorm.io/gorm"

// Course is the full projection: everything needed to render and edit a
// course, including its modules and lessons.
type Course struct {
	gorm.Model
	Title       string   `json:"title"`
	ShortDesc   string   `json:"short_desc"`
	Description string   `json:"description"`
	CoverURL    string   `json:"cover_url"`
	AuthorID    uint     `json:"author_id"`
	Modules     []Module `json:"modules"`
}

type Module struct {
	gorm.Model
	CourseID      uint     `json:"course_id"`
	Title         string   `json:"title"`
	SequenceOrder int      `json:"sequence_order"`
	Lessons       []Lesson `json:"lessons"`
}

type Lesson struct {
	gorm.Model
	ModuleID        uint   `json:"module_id"`
	Title           string `json:"title"`
	VideoURL        string `json:"video_url"`
	DurationSeconds int    `json:"duration_seconds"`
	SequenceOrder   int    `json:"sequence_order"`
}

// CourseSummary is the lightweight projection served by the catalog listing.
// The full course is fetched separately by id.
type CourseSummary struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	ShortDesc string `json:"short_desc"`
	CoverURL  string `json:"cover_url"`
	Lessons   int    `json:"lessons"`
}

// Summary strips modules and media down to the listing projection.
func (c *Course) Summary() CourseSummary {
	return CourseSummary{
		ID:        c.ID,
		Title:     c.Title,
		ShortDesc: c.ShortDesc,
		CoverURL:  c.CoverURL,
		Lessons:   c.LessonCount(),
	}
}

// LessonCount sums lesson counts across all modules.
func (c *Course) LessonCount() int {
	total := 0
	for _, m := range c.Modules {
		total += len(m.Lessons)
	}
	return total
}

// LessonIDs returns every lesson id in the course, module order then lesson order.
func (c *Course) LessonIDs() []uint {
	ids := make([]uint, 0, c.LessonCount())
	for _, m := range c.Modules {
		for _, l := range m.Lessons {
			ids = append(ids, l.ID)
		}
	}
	return ids
}
