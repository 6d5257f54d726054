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

// CreateAdministratorInput carries the fields of a new staff account.
type CreateAdministratorInput struct {
	FirstName  string
	MiddleName string
	LastName   string
	Email      string
	Password   string
	Role       model.Role
}

// AdministratorView is the outward projection of a staff account.
type AdministratorView struct {
	FirstName  string     `json:"first_name"`
	MiddleName string     `json:"middle_name,omitempty"`
	LastName   string     `json:"last_name"`
	Email      string     `json:"email"`
	Role       model.Role `json:"role"`
	Slug       string     `json:"slug"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// AdministratorService manages staff accounts. Creating accounts and changing
// roles require a super admin; listings never include super admins.
type AdministratorService interface {
	Create(ctx context.Context, actor *model.Actor, in CreateAdministratorInput) (*AdministratorView, error)
	List(ctx context.Context, actor *model.Actor) ([]AdministratorView, error)

	UpdateName(ctx context.Context, actor *model.Actor, slug, first, middle, last string) error
	UpdateEmail(ctx context.Context, actor *model.Actor, slug, email string) error
	UpdatePassword(ctx context.Context, actor *model.Actor, slug, password string) error

	// ToggleStatus flips the account between active and deactivated and
	// returns whether it is active afterwards.
	ToggleStatus(ctx context.Context, actor *model.Actor, slug string) (bool, error)
}

type administratorService struct {
	admins repository.AdministratorRepository
	slugs  *SlugGenerator
	logs   repository.UserLogRepository
}

func NewAdministratorService(admins repository.AdministratorRepository, records repository.RecordRepository, logs repository.UserLogRepository) AdministratorService {
	return &administratorService{
		admins: admins,
		slugs:  NewSlugGenerator(records),
		logs:   logs,
	}
}

func (s *administratorService) Create(ctx context.Context, actor *model.Actor, in CreateAdministratorInput) (*AdministratorView, error) {
	if err := Authorize(actor, model.RoleSuperAdmin); err != nil {
		return nil, err
	}
	switch {
	case strings.TrimSpace(in.FirstName) == "":
		return nil, apperrors.Validation("first_name")
	case strings.TrimSpace(in.LastName) == "":
		return nil, apperrors.Validation("last_name")
	case !strings.Contains(in.Email, "@"):
		return nil, apperrors.Validation("email")
	case len(in.Password) < 8:
		return nil, apperrors.Validation("password")
	case in.Role != model.RoleAdmin && in.Role != model.RoleSuperAdmin:
		return nil, apperrors.Validation("role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	slug, err := s.slugs.Generate(ctx, repository.ClassAdministrator)
	if err != nil {
		return nil, err
	}

	stored, err := s.admins.Insert(ctx, &model.Administrator{
		FirstName:    in.FirstName,
		MiddleName:   in.MiddleName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Slug:         slug,
	})
	if err != nil {
		return nil, fmt.Errorf("insert administrator: %w", err)
	}
	appendAudit(ctx, s.logs, actor, fmt.Sprintf("created administrator %s", stored.Slug), "administrators")

	v := adminView(stored)
	return &v, nil
}

func (s *administratorService) List(ctx context.Context, actor *model.Actor) ([]AdministratorView, error) {
	if err := Authorize(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	admins, err := s.admins.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list administrators: %w", err)
	}
	if len(admins) == 0 {
		return nil, apperrors.ErrEmpty
	}

	views := make([]AdministratorView, 0, len(admins))
	for i := range admins {
		views = append(views, adminView(&admins[i]))
	}
	return views, nil
}

func (s *administratorService) UpdateName(ctx context.Context, actor *model.Actor, slug, first, middle, last string) error {
	admin, err := s.authorizeAndFind(ctx, actor, slug)
	if err != nil {
		return err
	}
	if strings.TrimSpace(first) == "" || strings.TrimSpace(last) == "" {
		return apperrors.Validation("name")
	}
	if err := s.admins.UpdateName(ctx, admin.ID, first, middle, last); err != nil {
		return fmt.Errorf("update administrator name: %w", err)
	}
	appendAudit(ctx, s.logs, actor, fmt.Sprintf("updated name of administrator %s", admin.Slug), "administrators")
	return nil
}

func (s *administratorService) UpdateEmail(ctx context.Context, actor *model.Actor, slug, email string) error {
	admin, err := s.authorizeAndFind(ctx, actor, slug)
	if err != nil {
		return err
	}
	if !strings.Contains(email, "@") {
		return apperrors.Validation("email")
	}
	if err := s.admins.UpdateEmail(ctx, admin.ID, email); err != nil {
		return fmt.Errorf("update administrator email: %w", err)
	}
	appendAudit(ctx, s.logs, actor, fmt.Sprintf("updated email of administrator %s", admin.Slug), "administrators")
	return nil
}

func (s *administratorService) UpdatePassword(ctx context.Context, actor *model.Actor, slug, password string) error {
	admin, err := s.authorizeAndFind(ctx, actor, slug)
	if err != nil {
		return err
	}
	if len(password) < 8 {
		return apperrors.Validation("password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.admins.UpdatePassword(ctx, admin.ID, string(hash)); err != nil {
		return fmt.Errorf("update administrator password: %w", err)
	}
	appendAudit(ctx, s.logs, actor, fmt.Sprintf("updated password of administrator %s", admin.Slug), "administrators")
	return nil
}

func (s *administratorService) ToggleStatus(ctx context.Context, actor *model.Actor, slug string) (bool, error) {
	if err := Authorize(actor, model.RoleSuperAdmin); err != nil {
		return false, err
	}
	admin, err := s.admins.FindBySlug(ctx, slug, true)
	if err != nil {
		if isNoRows(err) {
			return false, apperrors.NotFound("administrator")
		}
		return false, fmt.Errorf("find administrator: %w", err)
	}
	if admin.Role == model.RoleSuperAdmin {
		return false, apperrors.Validation("role")
	}

	deactivate := admin.DeletedAt == nil
	if err := s.admins.SetDeleted(ctx, admin.ID, deactivate); err != nil {
		return false, fmt.Errorf("toggle administrator status: %w", err)
	}
	if deactivate {
		appendAudit(ctx, s.logs, actor, fmt.Sprintf("deactivated administrator %s", admin.Slug), "administrators")
	} else {
		appendAudit(ctx, s.logs, actor, fmt.Sprintf("reactivated administrator %s", admin.Slug), "administrators")
	}
	return !deactivate, nil
}

// authorizeAndFind admits a super admin acting on anyone, or an admin acting
// on their own account.
func (s *administratorService) authorizeAndFind(ctx context.Context, actor *model.Actor, slug string) (*model.Administrator, error) {
	if err := Authorize(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	if !actor.Role.AtLeast(model.RoleSuperAdmin) && actor.Slug() != slug {
		return nil, apperrors.ErrUnauthorized
	}
	admin, err := s.admins.FindBySlug(ctx, slug, false)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.NotFound("administrator")
		}
		return nil, fmt.Errorf("find administrator: %w", err)
	}
	return admin, nil
}

func adminView(a *model.Administrator) AdministratorView {
	return AdministratorView{
		FirstName:  a.FirstName,
		MiddleName: a.MiddleName,
		LastName:   a.LastName,
		Email:      a.Email,
		Role:       a.Role,
		Slug:       a.Slug,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}
