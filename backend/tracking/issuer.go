package tracking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"academy/backend/models"
)

// ErrAlreadyClaimed means a certificate for this (student, course) pair
// already exists. Non-fatal: the caller shows it and changes nothing.
var ErrAlreadyClaimed = errors.New("certificate already claimed for this course")

// ErrDuplicateCertificate is what a CertificateCreator returns when the
// store's uniqueness constraint on (student, course) rejects the insert.
var ErrDuplicateCertificate = errors.New("duplicate certificate")

// CertificateCreator persists a new certificate record.
type CertificateCreator interface {
	CreateCertificate(ctx context.Context, cert models.Certificate) (models.Certificate, error)
}

// Claim issues a certificate for a completed course. The scan over existing
// is advisory; the creator's uniqueness constraint is the real guard, and its
// duplicate error maps to ErrAlreadyClaimed the same way. On any creator
// failure nothing is inserted locally.
func Claim(ctx context.Context, creator CertificateCreator, studentID uint, studentName string, course models.Course, existing []models.Certificate) (models.Certificate, error) {
	for _, cert := range existing {
		if cert.UserID == studentID && cert.CourseID == course.ID {
			return models.Certificate{}, ErrAlreadyClaimed
		}
	}

	cert := models.Certificate{
		UserID:       studentID,
		CourseID:     course.ID,
		CourseTitle:  course.Title,
		CourseCover:  course.CoverURL,
		StudentName:  studentName,
		SerialNumber: uuid.NewString(),
		IssuedAt:     time.Now().UTC(),
	}

	created, err := creator.CreateCertificate(ctx, cert)
	if err != nil {
		if errors.Is(err, ErrDuplicateCertificate) {
			return models.Certificate{}, ErrAlreadyClaimed
		}
		return models.Certificate{}, err
	}
	return created, nil
}
