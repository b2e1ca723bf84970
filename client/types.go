// Package client is the Go client for the Academy REST API. It mirrors the
// behavior the web front end relies on: a bounded-retry catalog load with a
// local cache fallback, a file-backed session store, and typed calls for
// courses, progress, certificates and tickets.
package client

import "time"

type User struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Role              string `json:"role"`
	AssignedCourseIDs []uint `json:"assigned_course_ids"`
}

// Session is the authenticated state persisted between runs.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CourseSummary is the lightweight catalog projection.
type CourseSummary struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	ShortDesc string `json:"short_desc"`
	CoverURL  string `json:"cover_url"`
	Lessons   int    `json:"lessons"`
}

// Course is the full projection fetched by id.
type Course struct {
	ID          uint     `json:"ID"`
	Title       string   `json:"title"`
	ShortDesc   string   `json:"short_desc"`
	Description string   `json:"description"`
	CoverURL    string   `json:"cover_url"`
	Modules     []Module `json:"modules"`
}

type Module struct {
	ID            uint     `json:"ID"`
	Title         string   `json:"title"`
	SequenceOrder int      `json:"sequence_order"`
	Lessons       []Lesson `json:"lessons"`
}

type Lesson struct {
	ID              uint   `json:"ID"`
	Title           string `json:"title"`
	VideoURL        string `json:"video_url"`
	DurationSeconds int    `json:"duration_seconds"`
	SequenceOrder   int    `json:"sequence_order"`
}

type Certificate struct {
	ID           uint      `json:"ID"`
	CourseID     uint      `json:"course_id"`
	CourseTitle  string    `json:"course_title"`
	CourseCover  string    `json:"course_cover"`
	StudentName  string    `json:"student_name"`
	SerialNumber string    `json:"serial_number"`
	IssuedAt     time.Time `json:"issued_at"`
}

type Ticket struct {
	ID      uint   `json:"ID"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// DashboardCourse is one card on the student dashboard.
type DashboardCourse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	CoverURL  string `json:"cover_url"`
	Lessons   int    `json:"lessons"`
	Completed int    `json:"completed"`
	Percent   int    `json:"percent"`
	Status    string `json:"status"`
}

type Dashboard struct {
	Courses []DashboardCourse `json:"courses"`
	Summary struct {
		Completed  int `json:"completed"`
		InProgress int `json:"in_progress"`
	} `json:"summary"`
}
