package services

import (
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"

	appAuth "github.com/coursehub/backend/internal/app/auth"
	"github.com/coursehub/backend/internal/app/models"
	"github.com/coursehub/backend/internal/pkg/apperrors"
)

func fileHeader(name, mimeType string) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", mimeType)
	return &multipart.FileHeader{
		Filename: name,
		Header:   header,
	}
}

func TestUploadContentRequiresCourseOwner(t *testing.T) {
	courseRepo := newFakeCourseRepo()
	contentRepo := newFakeContentRepo()
	storage := &fakeFileStorage{}
	svc := NewContentService(contentRepo, appAuth.NewAuthorizationService(courseRepo), storage)

	course := seedCourse(t, courseRepo, "Go Fundamentals", 1, 10)
	file := fileHeader("lecture1.mp4", "video/mp4")

	_, err := svc.Upload(context.Background(), 2, models.RoleInstructor, course.ID, file)
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("non-owner upload err = %v, want ErrPermissionDenied", err)
	}
	if len(storage.saved) != 0 {
		t.Error("file was stored despite the ownership check failing")
	}

	content, err := svc.Upload(context.Background(), 1, models.RoleInstructor, course.ID, file)
	if err != nil {
		t.Fatalf("owner upload returned error: %v", err)
	}
	if content.CourseID != course.ID {
		t.Errorf("content course = %d, want %d", content.CourseID, course.ID)
	}
	if content.URL == "" {
		t.Error("expected a stored file URL")
	}
}

func TestUploadContentDerivesTypeFromMime(t *testing.T) {
	courseRepo := newFakeCourseRepo()
	svc := NewContentService(newFakeContentRepo(), appAuth.NewAuthorizationService(courseRepo), &fakeFileStorage{})

	course := seedCourse(t, courseRepo, "Go Fundamentals", 1, 10)

	tests := []struct {
		mime string
		want string
	}{
		{"video/mp4", "video"},
		{"application/pdf", "application"},
		{"image/png", "image"},
		{"", "file"},
	}

	for _, tt := range tests {
		content, err := svc.Upload(context.Background(), 1, models.RoleInstructor, course.ID, fileHeader("f", tt.mime))
		if err != nil {
			t.Fatalf("Upload with mime %q returned error: %v", tt.mime, err)
		}
		if content.Type != tt.want {
			t.Errorf("mime %q: type = %q, want %q", tt.mime, content.Type, tt.want)
		}
	}
}

func TestUploadContentRejectsMissingFile(t *testing.T) {
	courseRepo := newFakeCourseRepo()
	svc := NewContentService(newFakeContentRepo(), appAuth.NewAuthorizationService(courseRepo), &fakeFileStorage{})

	course := seedCourse(t, courseRepo, "Go Fundamentals", 1, 10)

	_, err := svc.Upload(context.Background(), 1, models.RoleInstructor, course.ID, nil)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("nil file err = %v, want ErrValidationFailed", err)
	}
}

func TestGetContentByCourse(t *testing.T) {
	courseRepo := newFakeCourseRepo()
	contentRepo := newFakeContentRepo()
	svc := NewContentService(contentRepo, appAuth.NewAuthorizationService(courseRepo), &fakeFileStorage{})

	course := seedCourse(t, courseRepo, "Go Fundamentals", 1, 10)
	other := seedCourse(t, courseRepo, "Go Concurrency", 1, 50)

	for _, courseID := range []int64{course.ID, course.ID, other.ID} {
		if _, err := svc.Upload(context.Background(), 1, models.RoleInstructor, courseID, fileHeader("f.pdf", "application/pdf")); err != nil {
			t.Fatalf("Upload returned error: %v", err)
		}
	}

	contents, err := svc.GetByCourseID(context.Background(), course.ID)
	if err != nil {
		t.Fatalf("GetByCourseID returned error: %v", err)
	}
	if len(contents) != 2 {
		t.Errorf("got %d content records, want 2", len(contents))
	}
}
