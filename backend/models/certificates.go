package models

import (
	"time"

	"gorm.io/gorm"
)

// Certificate records issuance of a completion certificate. Course title and
// cover are denormalized so the certificate survives course edits. The
// composite unique index is the authoritative guard against double issuance;
// client-side pre-checks are advisory only.
type Certificate struct {
	gorm.Model
	UserID       uint      `json:"user_id" gorm:"uniqueIndex:idx_cert_user_course"`
	CourseID     uint      `json:"course_id" gorm:"uniqueIndex:idx_cert_user_course"`
	CourseTitle  string    `json:"course_title"`
	CourseCover  string    `json:"course_cover"`
	StudentName  string    `json:"student_name"`
	SerialNumber string    `json:"serial_number" gorm:"unique"`
	IssuedAt     time.Time `json:"issued_at"`
}
