package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"recordsapi/internal/apperrors"
	"recordsapi/internal/model"
	"recordsapi/internal/repository"
)

// PaymentAttrs are the header attributes of a payment aggregate.
type PaymentAttrs struct {
	IsFull        bool
	IsInstallment bool
	ModeOfPayment model.ModeOfPayment
	DatePaid      time.Time
	AmountPaid    float64
	Balance       *float64
	Course        string
	Year          string
	Term          string
}

// PaymentView is the outward projection of a payment aggregate: the header
// plus its active file children with resolved URLs.
type PaymentView struct {
	Slug          string              `json:"slug"`
	IsFull        bool                `json:"is_full"`
	IsInstallment bool                `json:"is_installment"`
	ModeOfPayment model.ModeOfPayment `json:"mode_of_payment"`
	DatePaid      time.Time           `json:"date_paid"`
	AmountPaid    float64             `json:"amount_paid"`
	Balance       *float64            `json:"balance,omitempty"`
	Course        string              `json:"course"`
	Year          string              `json:"year"`
	Term          string              `json:"term"`
	Status        model.RecordStatus  `json:"status"`
	Files         []FileView          `json:"files"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// PaymentService manages payment aggregates: a header row owning 1..N file
// children. An aggregate is observable only as complete or absent; creation
// and destruction run inside one retrying transaction.
type PaymentService interface {
	// Create inserts the header and stores every upload as a child, aborting
	// everything on the first failure.
	Create(ctx context.Context, actor *model.Actor, studentSlug string, attrs PaymentAttrs, uploads []FileUpload) (*PaymentView, error)

	// Update writes the verification status; when uploads are present, every
	// active child is superseded and the uploads stored in their place.
	Update(ctx context.Context, actor *model.Actor, paymentSlug string, status model.RecordStatus, uploads []FileUpload) (*PaymentView, error)

	// Destroy supersedes every child then soft-deletes the header. Super-admin
	// only; a destroyed aggregate yields NotFound on any further operation.
	Destroy(ctx context.Context, actor *model.Actor, paymentSlug string) error

	// ListFor returns the student's payment aggregates, or ErrEmpty when there
	// are none. Students may list their own while enrolled.
	ListFor(ctx context.Context, actor *model.Actor, studentSlug string) ([]PaymentView, error)
}

type paymentService struct {
	tx       TxRunner
	versions *FileVersionManager
	payments repository.PaymentRepository
	students repository.StudentRepository
	slugs    *SlugGenerator
	logs     repository.UserLogRepository
}

func NewPaymentService(tx TxRunner, versions *FileVersionManager, payments repository.PaymentRepository, students repository.StudentRepository, logs repository.UserLogRepository) PaymentService {
	return &paymentService{
		tx:       tx,
		versions: versions,
		payments: payments,
		students: students,
		slugs:    NewSlugGenerator(versions.records),
		logs:     logs,
	}
}

func validatePaymentAttrs(attrs PaymentAttrs) error {
	if !attrs.ModeOfPayment.Valid() {
		return apperrors.Validation("mode_of_payment")
	}
	if attrs.AmountPaid <= 0 {
		return apperrors.Validation("amount_paid")
	}
	if attrs.IsFull == attrs.IsInstallment {
		return apperrors.Validation("is_full/is_installment")
	}
	if attrs.DatePaid.IsZero() {
		return apperrors.Validation("date_paid")
	}
	return nil
}

func (s *paymentService) Create(ctx context.Context, actor *model.Actor, studentSlug string, attrs PaymentAttrs, uploads []FileUpload) (*PaymentView, error) {
	if err := Authorize(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	if err := validatePaymentAttrs(attrs); err != nil {
		return nil, err
	}
	if len(uploads) == 0 {
		return nil, apperrors.Validation("files")
	}
	student, err := findStudentBySlug(ctx, s.students, studentSlug)
	if err != nil {
		return nil, err
	}

	var header *model.StudentPayment
	var children []model.StudentFile
	err = s.tx.RunInTx(ctx, func(tx repository.DBTX) error {
		slug, err := s.slugs.WithTx(tx).Generate(ctx, repository.ClassPayment)
		if err != nil {
			return err
		}
		header, err = s.payments.WithTx(tx).Insert(ctx, &model.StudentPayment{
			AdministratorID: actor.ID(),
			StudentID:       student.ID,
			IsFull:          attrs.IsFull,
			IsInstallment:   attrs.IsInstallment,
			ModeOfPayment:   attrs.ModeOfPayment,
			DatePaid:        attrs.DatePaid,
			AmountPaid:      attrs.AmountPaid,
			Balance:         attrs.Balance,
			Course:          attrs.Course,
			Year:            attrs.Year,
			Term:            attrs.Term,
			Status:          model.RecordPending,
			Slug:            slug,
		})
		if err != nil {
			return fmt.Errorf("insert payment header: %w", err)
		}

		children, err = s.versions.WithTx(tx).StoreBatch(ctx, uploads, NewFileParams{
			AdministratorID: actor.ID(),
			StudentID:       student.ID,
			PaymentID:       &header.ID,
			Type:            model.FileTypePayment,
			Course:          attrs.Course,
			Year:            attrs.Year,
			Term:            attrs.Term,
		}, "payments")
		return err
	})
	if err != nil {
		return nil, err
	}
	appendAudit(ctx, s.logs, actor, fmt.Sprintf("created payment %s for student %s", header.Slug, student.Slug), "payments")

	return s.view(ctx, header, children)
}

func (s *paymentService) Update(ctx context.Context, actor *model.Actor, paymentSlug string, status model.RecordStatus, uploads []FileUpload) (*PaymentView, error) {
	if err := Authorize(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, apperrors.Validation("status")
	}
	header, err := s.findHeader(ctx, paymentSlug)
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(tx repository.DBTX) error {
		payments := s.payments.WithTx(tx)
		if err := payments.UpdateStatus(ctx, header.ID, status); err != nil {
			return fmt.Errorf("update payment status: %w", err)
		}
		if len(uploads) == 0 {
			return nil
		}

		versions := s.versions.WithTx(tx)
		children, err := versions.files.ActiveByPaymentID(ctx, header.ID)
		if err != nil {
			return fmt.Errorf("lookup payment files: %w", err)
		}
		if err := versions.SupersedeAll(ctx, children); err != nil {
			return err
		}
		_, err = versions.StoreBatch(ctx, uploads, NewFileParams{
			AdministratorID: actor.ID(),
			StudentID:       header.StudentID,
			PaymentID:       &header.ID,
			Type:            model.FileTypePayment,
			Course:          header.Course,
			Year:            header.Year,
			Term:            header.Term,
		}, "payments")
		return err
	})
	if err != nil {
		return nil, err
	}
	appendAudit(ctx, s.logs, actor, fmt.Sprintf("updated payment %s", header.Slug), "payments")

	header, err = s.findHeader(ctx, paymentSlug)
	if err != nil {
		return nil, err
	}
	children, err := s.versions.files.ActiveByPaymentID(ctx, header.ID)
	if err != nil {
		return nil, fmt.Errorf("lookup payment files: %w", err)
	}
	return s.view(ctx, header, children)
}

func (s *paymentService) Destroy(ctx context.Context, actor *model.Actor, paymentSlug string) error {
	if err := Authorize(actor, model.RoleSuperAdmin); err != nil {
		return err
	}
	header, err := s.findHeader(ctx, paymentSlug)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(tx repository.DBTX) error {
		versions := s.versions.WithTx(tx)
		children, err := versions.files.ActiveByPaymentID(ctx, header.ID)
		if err != nil {
			return fmt.Errorf("lookup payment files: %w", err)
		}
		if err := versions.SupersedeAll(ctx, children); err != nil {
			return err
		}

		payments := s.payments.WithTx(tx)
		n, err := payments.SoftDelete(ctx, header.ID)
		if err != nil {
			return fmt.Errorf("soft delete payment header: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("payment %s was already deleted: %w", header.Slug, apperrors.ErrFileIntegrity)
		}
		if _, err := payments.FindByID(ctx, header.ID, false); err == nil {
			return fmt.Errorf("payment %s still active after delete: %w", header.Slug, apperrors.ErrFileIntegrity)
		} else if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("re-check deleted payment: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	appendAudit(ctx, s.logs, actor, fmt.Sprintf("destroyed payment %s", header.Slug), "payments")
	return nil
}

func (s *paymentService) ListFor(ctx context.Context, actor *model.Actor, studentSlug string) ([]PaymentView, error) {
	if err := authorizeRead(actor, studentSlug, model.RoleAdmin); err != nil {
		return nil, err
	}
	student, err := findStudentBySlug(ctx, s.students, studentSlug)
	if err != nil {
		return nil, err
	}
	headers, err := s.payments.ListByStudent(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	if len(headers) == 0 {
		return nil, apperrors.ErrEmpty
	}

	views := make([]PaymentView, 0, len(headers))
	for i := range headers {
		children, err := s.versions.files.ActiveByPaymentID(ctx, headers[i].ID)
		if err != nil {
			return nil, fmt.Errorf("lookup payment files: %w", err)
		}
		v, err := s.view(ctx, &headers[i], children)
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

func (s *paymentService) findHeader(ctx context.Context, slug string) (*model.StudentPayment, error) {
	header, err := s.payments.FindBySlug(ctx, slug, false)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("payment")
		}
		return nil, fmt.Errorf("find payment: %w", err)
	}
	return header, nil
}

func (s *paymentService) view(ctx context.Context, header *model.StudentPayment, children []model.StudentFile) (*PaymentView, error) {
	files := make([]FileView, 0, len(children))
	for i := range children {
		v, err := fileView(ctx, s.versions.store, &children[i])
		if err != nil {
			return nil, err
		}
		files = append(files, v)
	}
	return &PaymentView{
		Slug:          header.Slug,
		IsFull:        header.IsFull,
		IsInstallment: header.IsInstallment,
		ModeOfPayment: header.ModeOfPayment,
		DatePaid:      header.DatePaid,
		AmountPaid:    header.AmountPaid,
		Balance:       header.Balance,
		Course:        header.Course,
		Year:          header.Year,
		Term:          header.Term,
		Status:        header.Status,
		Files:         files,
		CreatedAt:     header.CreatedAt,
		UpdatedAt:     header.UpdatedAt,
	}, nil
}
