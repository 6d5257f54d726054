package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"recordsapi/internal/apperrors"
	"recordsapi/internal/model"
	"recordsapi/internal/repository"
)

// CreateStudentInput carries the fields of a new student account.
type CreateStudentInput struct {
	FirstName     string
	MiddleName    string
	LastName      string
	StudentNumber string
	Email         string
	Password      string
	Course        string
	Year          string
	Term          string
}

// StudentView is the outward projection of a student account with the
// resolved display photo URL.
type StudentView struct {
	FirstName        string                 `json:"first_name"`
	MiddleName       string                 `json:"middle_name,omitempty"`
	LastName         string                 `json:"last_name"`
	StudentNumber    string                 `json:"student_number"`
	Email            string                 `json:"email"`
	Course           string                 `json:"course"`
	Year             string                 `json:"year"`
	Term             string                 `json:"term"`
	EnrollmentStatus model.EnrollmentStatus `json:"enrollment_status"`
	Slug             string                 `json:"slug"`
	DisplayPhotoURL  string                 `json:"display_photo_url,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

// StudentService manages student accounts. Mutations are admin-only except
// where a student updates their own credentials.
type StudentService interface {
	Create(ctx context.Context, actor *model.Actor, in CreateStudentInput) (*StudentView, error)
	List(ctx context.Context, actor *model.Actor) ([]StudentView, error)
	Get(ctx context.Context, actor *model.Actor, slug string) (*StudentView, error)

	UpdateEnrollmentStatus(ctx context.Context, actor *model.Actor, slug string, status model.EnrollmentStatus) error
	UpdateName(ctx context.Context, actor *model.Actor, slug, first, middle, last string) error
	UpdateCourse(ctx context.Context, actor *model.Actor, slug, course string) error
	UpdateYearTerm(ctx context.Context, actor *model.Actor, slug, year, term string) error
	UpdateEmail(ctx context.Context, actor *model.Actor, slug, email string) error
	UpdatePassword(ctx context.Context, actor *model.Actor, slug, password string) error

	// UpdateDisplayPhoto replaces the student's display photo, superseding the
	// previous version when one exists.
	UpdateDisplayPhoto(ctx context.Context, actor *model.Actor, slug string, up FileUpload) (*FileView, error)
}

type studentService struct {
	students repository.StudentRepository
	photos   *singletonFileService
	slugs    *SlugGenerator
	logs     repository.UserLogRepository
}

func NewStudentService(tx TxRunner, versions *FileVersionManager, students repository.StudentRepository, logs repository.UserLogRepository) StudentService {
	return &studentService{
		students: students,
		photos:   newDisplayPhotoSlot(tx, versions, students, logs),
		slugs:    NewSlugGenerator(versions.records),
		logs:     logs,
	}
}

func (s *studentService) Create(ctx context.Context, actor *model.Actor, in CreateStudentInput) (*StudentView, error) {
	if err := Authorize(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	switch {
	case strings.TrimSpace(in.FirstName) == "":
		return nil, apperrors.Validation("first_name")
	case strings.TrimSpace(in.LastName) == "":
		return nil, apperrors.Validation("last_name")
	case strings.TrimSpace(in.StudentNumber) == "":
		return nil, apperrors.Validation("student_number")
	case !strings.Contains(in.Email, "@"):
		return nil, apperrors.Validation("email")
	case len(in.Password) < 8:
		return nil, apperrors.Validation("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	slug, err := s.slugs.Generate(ctx, repository.ClassStudent)
	if err != nil {
		return nil, err
	}

	stored, err := s.students.Insert(ctx, &model.Student{
		FirstName:        in.FirstName,
		MiddleName:       in.MiddleName,
		LastName:         in.LastName,
		StudentNumber:    in.StudentNumber,
		Email:            in.Email,
		PasswordHash:     string(hash),
		Course:           in.Course,
		Year:             in.Year,
		Term:             in.Term,
		EnrollmentStatus: model.StatusEnrolled,
		Slug:             slug,
	})
	if err != nil {
		return nil, fmt.Errorf("insert student: %w", err)
	}
	appendAudit(ctx, s.logs, actor, fmt.Sprintf("created student %s", stored.Slug), "students")

	v := s.view(ctx, stored)
	return &v, nil
}

func (s *studentService) List(ctx context.Context, actor *model.Actor) ([]StudentView, error) {
	if err := Authorize(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	if len(students) == 0 {
		return nil, apperrors.ErrEmpty
	}

	views := make([]StudentView, 0, len(students))
	for i := range students {
		views = append(views, s.view(ctx, &students[i]))
	}
	return views, nil
}

func (s *studentService) Get(ctx context.Context, actor *model.Actor, slug string) (*StudentView, error) {
	if err := authorizeRead(actor, slug, model.RoleAdmin); err != nil {
		return nil, err
	}
	student, err := findStudentBySlug(ctx, s.students, slug)
	if err != nil {
		return nil, err
	}
	v := s.view(ctx, student)
	return &v, nil
}

func (s *studentService) UpdateEnrollmentStatus(ctx context.Context, actor *model.Actor, slug string, status model.EnrollmentStatus) error {
	if err := Authorize(actor, model.RoleAdmin); err != nil {
		return err
	}
	if !status.Valid() {
		return apperrors.Validation("enrollment_status")
	}
	student, err := findStudentBySlug(ctx, s.students, slug)
	if err != nil {
		return err
	}
	if err := s.students.UpdateEnrollmentStatus(ctx, student.ID, status); err != nil {
		return fmt.Errorf("update enrollment status: %w", err)
	}
	appendAudit(ctx, s.logs, actor, fmt.Sprintf("set student %s enrollment status to %s", student.Slug, status), "students")
	return nil
}

func (s *studentService) UpdateName(ctx context.Context, actor *model.Actor, slug, first, middle, last string) error {
	if err := Authorize(actor, model.RoleAdmin); err != nil {
		return err
	}
	if strings.TrimSpace(first) == "" || strings.TrimSpace(last) == "" {
		return apperrors.Validation("name")
	}
	student, err := findStudentBySlug(ctx, s.students, slug)
	if err != nil {
		return err
	}
	if err := s.students.UpdateName(ctx, student.ID, first, middle, last); err != nil {
		return fmt.Errorf("update student name: %w", err)
	}
	appendAudit(ctx, s.logs, actor, fmt.Sprintf("updated name of student %s", student.Slug), "students")
	return nil
}

func (s *studentService) UpdateCourse(ctx context.Context, actor *model.Actor, slug, course string) error {
	if err := Authorize(actor, model.RoleAdmin); err != nil {
		return err
	}
	if strings.TrimSpace(course) == "" {
		return apperrors.Validation("course")
	}
	student, err := findStudentBySlug(ctx, s.students, slug)
	if err != nil {
		return err
	}
	if err := s.students.UpdateCourse(ctx, student.ID, course); err != nil {
		return fmt.Errorf("update student course: %w", err)
	}
	appendAudit(ctx, s.logs, actor, fmt.Sprintf("updated course of student %s", student.Slug), "students")
	return nil
}

func (s *studentService) UpdateYearTerm(ctx context.Context, actor *model.Actor, slug, year, term string) error {
	if err := Authorize(actor, model.RoleAdmin); err != nil {
		return err
	}
	if strings.TrimSpace(year) == "" || strings.TrimSpace(term) == "" {
		return apperrors.Validation("year/term")
	}
	student, err := findStudentBySlug(ctx, s.students, slug)
	if err != nil {
		return err
	}
	if err := s.students.UpdateYearTerm(ctx, student.ID, year, term); err != nil {
		return fmt.Errorf("update student year/term: %w", err)
	}
	appendAudit(ctx, s.logs, actor, fmt.Sprintf("updated year/term of student %s", student.Slug), "students")
	return nil
}

func (s *studentService) UpdateEmail(ctx context.Context, actor *model.Actor, slug, email string) error {
	if err := s.authorizeAccountUpdate(actor, slug); err != nil {
		return err
	}
	if !strings.Contains(email, "@") {
		return apperrors.Validation("email")
	}
	student, err := findStudentBySlug(ctx, s.students, slug)
	if err != nil {
		return err
	}
	if err := s.students.UpdateEmail(ctx, student.ID, email); err != nil {
		return fmt.Errorf("update student email: %w", err)
	}
	appendAudit(ctx, s.logs, actor, fmt.Sprintf("updated email of student %s", student.Slug), "students")
	return nil
}

func (s *studentService) UpdatePassword(ctx context.Context, actor *model.Actor, slug, password string) error {
	if err := s.authorizeAccountUpdate(actor, slug); err != nil {
		return err
	}
	if len(password) < 8 {
		return apperrors.Validation("password")
	}
	student, err := findStudentBySlug(ctx, s.students, slug)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.students.UpdatePassword(ctx, student.ID, string(hash)); err != nil {
		return fmt.Errorf("update student password: %w", err)
	}
	appendAudit(ctx, s.logs, actor, fmt.Sprintf("updated password of student %s", student.Slug), "students")
	return nil
}

func (s *studentService) UpdateDisplayPhoto(ctx context.Context, actor *model.Actor, slug string, up FileUpload) (*FileView, error) {
	if err := Authorize(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	student, err := findStudentBySlug(ctx, s.students, slug)
	if err != nil {
		return nil, err
	}
	attrs := SlotAttrs{Course: student.Course, Year: student.Year, Term: student.Term}

	existing, err := s.photos.active(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		return s.photos.Store(ctx, actor, slug, up, attrs)
	}
	return s.photos.Update(ctx, actor, slug, up, attrs)
}

// authorizeAccountUpdate admits admins, or the enrolled student updating
// their own credentials.
func (s *studentService) authorizeAccountUpdate(actor *model.Actor, slug string) error {
	if actor != nil && actor.Kind == model.ActorStudent {
		return AuthorizeSelf(actor, slug)
	}
	return Authorize(actor, model.RoleAdmin)
}

func (s *studentService) view(ctx context.Context, student *model.Student) StudentView {
	v := StudentView{
		FirstName:        student.FirstName,
		MiddleName:       student.MiddleName,
		LastName:         student.LastName,
		StudentNumber:    student.StudentNumber,
		Email:            student.Email,
		Course:           student.Course,
		Year:             student.Year,
		Term:             student.Term,
		EnrollmentStatus: student.EnrollmentStatus,
		Slug:             student.Slug,
		CreatedAt:        student.CreatedAt,
		UpdatedAt:        student.UpdatedAt,
	}
	// A missing or unresolvable photo leaves the URL empty rather than
	// failing the account read.
	if photos, err := s.photos.active(ctx, student.ID); err == nil && len(photos) > 0 {
		if url, err := s.photos.versions.store.URL(ctx, photos[0].Path); err == nil {
			v.DisplayPhotoURL = url
		}
	}
	return v
}
