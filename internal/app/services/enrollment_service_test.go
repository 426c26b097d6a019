package services

import (
	"context"
	"errors"
	"testing"

	"github.com/coursehub/backend/internal/pkg/apperrors"
)

func TestEnrollCreatesEnrollment(t *testing.T) {
	courseRepo := newFakeCourseRepo()
	enrollmentRepo := newFakeEnrollmentRepo(courseRepo)
	svc := NewEnrollmentService(enrollmentRepo, courseRepo)

	course := seedCourse(t, courseRepo, "Go Fundamentals", 1, 10)

	enrollment, err := svc.Enroll(context.Background(), 7, course.ID)
	if err != nil {
		t.Fatalf("Enroll returned error: %v", err)
	}
	if enrollment.UserID != 7 || enrollment.CourseID != course.ID {
		t.Errorf("enrollment = %+v, want user 7 / course %d", enrollment, course.ID)
	}
}

func TestEnrollUnknownCourse(t *testing.T) {
	courseRepo := newFakeCourseRepo()
	svc := NewEnrollmentService(newFakeEnrollmentRepo(courseRepo), courseRepo)

	_, err := svc.Enroll(context.Background(), 7, 999)
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("Enroll in missing course err = %v, want ErrCourseNotFound", err)
	}
}

func TestEnrollTwiceConflicts(t *testing.T) {
	courseRepo := newFakeCourseRepo()
	enrollmentRepo := newFakeEnrollmentRepo(courseRepo)
	svc := NewEnrollmentService(enrollmentRepo, courseRepo)

	course := seedCourse(t, courseRepo, "Go Fundamentals", 1, 10)

	if _, err := svc.Enroll(context.Background(), 7, course.ID); err != nil {
		t.Fatalf("first Enroll returned error: %v", err)
	}

	_, err := svc.Enroll(context.Background(), 7, course.ID)
	if !errors.Is(err, apperrors.ErrAlreadyEnrolled) {
		t.Fatalf("second Enroll err = %v, want ErrAlreadyEnrolled", err)
	}

	if len(enrollmentRepo.enrollments) != 1 {
		t.Errorf("enrollment count = %d, want 1", len(enrollmentRepo.enrollments))
	}
}

func TestGetEnrolledCourses(t *testing.T) {
	courseRepo := newFakeCourseRepo()
	enrollmentRepo := newFakeEnrollmentRepo(courseRepo)
	svc := NewEnrollmentService(enrollmentRepo, courseRepo)

	first := seedCourse(t, courseRepo, "Go Fundamentals", 1, 10)
	second := seedCourse(t, courseRepo, "Go Concurrency", 1, 50)
	seedCourse(t, courseRepo, "Rust Fundamentals", 2, 30)

	for _, courseID := range []int64{first.ID, second.ID} {
		if _, err := svc.Enroll(context.Background(), 7, courseID); err != nil {
			t.Fatalf("Enroll returned error: %v", err)
		}
	}

	courses, err := svc.GetEnrolledCourses(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetEnrolledCourses returned error: %v", err)
	}
	if len(courses) != 2 {
		t.Errorf("got %d courses, want 2", len(courses))
	}

	none, err := svc.GetEnrolledCourses(context.Background(), 8)
	if err != nil {
		t.Fatalf("GetEnrolledCourses for new user returned error: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("got %d courses for user with no enrollments, want 0", len(none))
	}
}
