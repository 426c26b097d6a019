package services

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/coursehub/backend/internal/app/models"
	"github.com/coursehub/backend/internal/app/repositories"
	"github.com/coursehub/backend/internal/pkg/apperrors"
)

// In-memory repository fakes. They enforce the same uniqueness rules as
// the real schema so conflict paths behave identically.

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) (int64, error) {
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	id := r.nextID
	r.nextID++
	saved := *user
	saved.ID = id
	r.users[id] = &saved
	return id, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetAll(_ context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	existing, ok := r.users[user.ID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	for id, other := range r.users {
		if id != user.ID && strings.EqualFold(other.Email, user.Email) {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	existing.Email = user.Email
	existing.Role = user.Role
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeCourseRepo struct {
	courses map[int64]*models.Course
	nextID  int64
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[int64]*models.Course), nextID: 1}
}

func (r *fakeCourseRepo) Create(_ context.Context, course *models.Course) (int64, error) {
	id := r.nextID
	r.nextID++
	saved := *course
	saved.ID = id
	r.courses[id] = &saved
	return id, nil
}

func (r *fakeCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := r.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *course
	return &copied, nil
}

func (r *fakeCourseRepo) Search(_ context.Context, filters repositories.CourseFilters) ([]*models.Course, error) {
	var result []*models.Course
	for _, course := range r.courses {
		if filters.Title != nil && !strings.Contains(strings.ToLower(course.Title), strings.ToLower(*filters.Title)) {
			continue
		}
		if filters.MinPrice != nil && course.Price < *filters.MinPrice {
			continue
		}
		if filters.MaxPrice != nil && course.Price > *filters.MaxPrice {
			continue
		}
		if filters.InstructorID != nil && course.InstructorID != *filters.InstructorID {
			continue
		}
		copied := *course
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeCourseRepo) Update(_ context.Context, course *models.Course) error {
	if _, ok := r.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	saved := *course
	r.courses[course.ID] = &saved
	return nil
}

func (r *fakeCourseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(r.courses, id)
	return nil
}

type fakeEnrollmentRepo struct {
	enrollments map[int64]*models.Enrollment
	courseRepo  *fakeCourseRepo
	nextID      int64
}

func newFakeEnrollmentRepo(courseRepo *fakeCourseRepo) *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{
		enrollments: make(map[int64]*models.Enrollment),
		courseRepo:  courseRepo,
		nextID:      1,
	}
}

func (r *fakeEnrollmentRepo) Create(_ context.Context, enrollment *models.Enrollment) (int64, error) {
	for _, existing := range r.enrollments {
		if existing.UserID == enrollment.UserID && existing.CourseID == enrollment.CourseID {
			return 0, apperrors.ErrAlreadyEnrolled
		}
	}
	if _, ok := r.courseRepo.courses[enrollment.CourseID]; !ok {
		return 0, apperrors.ErrCourseNotFound
	}
	id := r.nextID
	r.nextID++
	saved := *enrollment
	saved.ID = id
	r.enrollments[id] = &saved
	return id, nil
}

func (r *fakeEnrollmentRepo) GetByID(_ context.Context, id int64) (*models.Enrollment, error) {
	enrollment, ok := r.enrollments[id]
	if !ok {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	copied := *enrollment
	return &copied, nil
}

func (r *fakeEnrollmentRepo) GetByUserAndCourse(_ context.Context, userID, courseID int64) (*models.Enrollment, error) {
	for _, enrollment := range r.enrollments {
		if enrollment.UserID == userID && enrollment.CourseID == courseID {
			copied := *enrollment
			return &copied, nil
		}
	}
	return nil, apperrors.ErrEnrollmentNotFound
}

func (r *fakeEnrollmentRepo) GetEnrolledCourses(_ context.Context, userID int64) ([]*models.Course, error) {
	var courses []*models.Course
	for _, enrollment := range r.enrollments {
		if enrollment.UserID != userID {
			continue
		}
		if course, ok := r.courseRepo.courses[enrollment.CourseID]; ok {
			copied := *course
			courses = append(courses, &copied)
		}
	}
	return courses, nil
}

type fakeLiveSessionRepo struct {
	sessions map[int64]*models.LiveSession
	nextID   int64
}

func newFakeLiveSessionRepo() *fakeLiveSessionRepo {
	return &fakeLiveSessionRepo{sessions: make(map[int64]*models.LiveSession), nextID: 1}
}

func (r *fakeLiveSessionRepo) Create(_ context.Context, session *models.LiveSession) (int64, error) {
	id := r.nextID
	r.nextID++
	saved := *session
	saved.ID = id
	r.sessions[id] = &saved
	return id, nil
}

func (r *fakeLiveSessionRepo) GetByID(_ context.Context, id int64) (*models.LiveSession, error) {
	session, ok := r.sessions[id]
	if !ok {
		return nil, apperrors.ErrLiveSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (r *fakeLiveSessionRepo) GetAll(_ context.Context) ([]*models.LiveSession, error) {
	sessions := []*models.LiveSession{}
	for id := int64(1); id < r.nextID; id++ {
		if session, ok := r.sessions[id]; ok {
			copied := *session
			sessions = append(sessions, &copied)
		}
	}
	return sessions, nil
}

func (r *fakeLiveSessionRepo) GetByCourseID(_ context.Context, courseID int64) ([]*models.LiveSession, error) {
	var sessions []*models.LiveSession
	for _, session := range r.sessions {
		if session.CourseID == courseID {
			copied := *session
			sessions = append(sessions, &copied)
		}
	}
	return sessions, nil
}

type fakeContentRepo struct {
	contents map[int64]*models.Content
	nextID   int64
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{contents: make(map[int64]*models.Content), nextID: 1}
}

func (r *fakeContentRepo) Create(_ context.Context, content *models.Content) (int64, error) {
	id := r.nextID
	r.nextID++
	saved := *content
	saved.ID = id
	r.contents[id] = &saved
	return id, nil
}

func (r *fakeContentRepo) GetByID(_ context.Context, id int64) (*models.Content, error) {
	content, ok := r.contents[id]
	if !ok {
		return nil, apperrors.ErrContentNotFound
	}
	copied := *content
	return &copied, nil
}

func (r *fakeContentRepo) GetByCourseID(_ context.Context, courseID int64) ([]*models.Content, error) {
	var contents []*models.Content
	for _, content := range r.contents {
		if content.CourseID == courseID {
			copied := *content
			contents = append(contents, &copied)
		}
	}
	return contents, nil
}

type fakeFileStorage struct {
	saved   []string
	deleted []string
}

func (s *fakeFileStorage) SaveFile(file *multipart.FileHeader, subPath string) (string, error) {
	url := "/uploads/" + subPath + "/" + file.Filename
	s.saved = append(s.saved, url)
	return url, nil
}

func (s *fakeFileStorage) DeleteFile(fileURL string) error {
	s.deleted = append(s.deleted, fileURL)
	return nil
}
