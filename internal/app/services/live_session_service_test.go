package services

import (
	"context"
	"errors"
	"testing"
	"time"

	appAuth "github.com/coursehub/backend/internal/app/auth"
	"github.com/coursehub/backend/internal/app/models"
	"github.com/coursehub/backend/internal/app/models/dto"
	"github.com/coursehub/backend/internal/pkg/apperrors"
)

func TestScheduleSessionRequiresCourseOwner(t *testing.T) {
	courseRepo := newFakeCourseRepo()
	sessionRepo := newFakeLiveSessionRepo()
	svc := NewLiveSessionService(sessionRepo, appAuth.NewAuthorizationService(courseRepo))

	course := seedCourse(t, courseRepo, "Go Fundamentals", 1, 10)
	req := &dto.CreateLiveSessionRequest{
		CourseID: course.ID,
		Date:     time.Now().Add(24 * time.Hour),
		ZoomLink: "https://zoom.us/j/123",
	}

	_, err := svc.Schedule(context.Background(), 2, models.RoleInstructor, req)
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("non-owner schedule err = %v, want ErrPermissionDenied", err)
	}

	session, err := svc.Schedule(context.Background(), 1, models.RoleInstructor, req)
	if err != nil {
		t.Fatalf("owner schedule returned error: %v", err)
	}
	if session.CourseID != course.ID || session.ZoomLink != req.ZoomLink {
		t.Errorf("session = %+v, want course %d with the given link", session, course.ID)
	}
}

func TestScheduleSessionValidation(t *testing.T) {
	courseRepo := newFakeCourseRepo()
	svc := NewLiveSessionService(newFakeLiveSessionRepo(), appAuth.NewAuthorizationService(courseRepo))

	course := seedCourse(t, courseRepo, "Go Fundamentals", 1, 10)

	_, err := svc.Schedule(context.Background(), 1, models.RoleInstructor, &dto.CreateLiveSessionRequest{
		CourseID: course.ID,
		Date:     time.Now(),
		ZoomLink: "  ",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("blank link err = %v, want ErrValidationFailed", err)
	}

	_, err = svc.Schedule(context.Background(), 1, models.RoleInstructor, &dto.CreateLiveSessionRequest{
		CourseID: 999,
		Date:     time.Now(),
		ZoomLink: "https://zoom.us/j/123",
	})
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("unknown course err = %v, want ErrCourseNotFound", err)
	}
}

func TestGetSessionsByCourse(t *testing.T) {
	courseRepo := newFakeCourseRepo()
	sessionRepo := newFakeLiveSessionRepo()
	svc := NewLiveSessionService(sessionRepo, appAuth.NewAuthorizationService(courseRepo))

	course := seedCourse(t, courseRepo, "Go Fundamentals", 1, 10)
	other := seedCourse(t, courseRepo, "Go Concurrency", 1, 50)

	for i, courseID := range []int64{course.ID, course.ID, other.ID} {
		_, err := svc.Schedule(context.Background(), 1, models.RoleInstructor, &dto.CreateLiveSessionRequest{
			CourseID: courseID,
			Date:     time.Now().Add(time.Duration(i) * time.Hour),
			ZoomLink: "https://zoom.us/j/123",
		})
		if err != nil {
			t.Fatalf("Schedule returned error: %v", err)
		}
	}

	sessions, err := svc.GetByCourseID(context.Background(), course.ID)
	if err != nil {
		t.Fatalf("GetByCourseID returned error: %v", err)
	}
	if len(sessions) != 2 {
		t.Errorf("got %d sessions, want 2", len(sessions))
	}

	all, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("GetAll returned %d sessions, want 3", len(all))
	}
}

func TestGetSessionByID(t *testing.T) {
	courseRepo := newFakeCourseRepo()
	sessionRepo := newFakeLiveSessionRepo()
	svc := NewLiveSessionService(sessionRepo, appAuth.NewAuthorizationService(courseRepo))

	course := seedCourse(t, courseRepo, "Go Fundamentals", 1, 10)
	created, err := svc.Schedule(context.Background(), 1, models.RoleInstructor, &dto.CreateLiveSessionRequest{
		CourseID: course.ID,
		Date:     time.Now().Add(time.Hour),
		ZoomLink: "https://zoom.us/j/123",
	})
	if err != nil {
		t.Fatalf("Schedule returned error: %v", err)
	}

	session, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if session.ID != created.ID || session.CourseID != course.ID {
		t.Errorf("session = %+v, want id %d for course %d", session, created.ID, course.ID)
	}

	_, err = svc.GetByID(context.Background(), 999)
	if !errors.Is(err, apperrors.ErrLiveSessionNotFound) {
		t.Fatalf("unknown session err = %v, want ErrLiveSessionNotFound", err)
	}

	_, err = svc.GetByID(context.Background(), 0)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("zero id err = %v, want ErrValidationFailed", err)
	}
}
