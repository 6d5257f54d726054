package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"recordsapi/internal/apperrors"
	"recordsapi/internal/http/middleware"
	"recordsapi/internal/model"
	"recordsapi/internal/service"
	serviceMocks "recordsapi/internal/service/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// withActor injects an authenticated actor the way the auth middleware would.
func withActor(actor *model.Actor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(middleware.ActorLocalKey, actor)
		return c.Next()
	}
}

func testAdmin() *model.Actor {
	return &model.Actor{
		Kind: model.ActorAdministrator,
		Role: model.RoleAdmin,
		Administrator: &model.Administrator{
			ID:   7,
			Slug: "admin-slug",
			Role: model.RoleAdmin,
		},
	}
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdministratorLogin(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthService)
	app := fiber.New()
	app.Post("/auth/admin/login", AdministratorLogin(mockSvc))

	t.Run("success", func(t *testing.T) {
		admin := &model.Administrator{Slug: "admin-slug", Email: "reg@school.edu", Role: model.RoleAdmin}
		mockSvc.On("LoginAdministrator", mock.Anything, "reg@school.edu", "secret-pass").
			Return("tok-123", admin, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/auth/admin/login",
			strings.NewReader(`{"email":"reg@school.edu","password":"secret-pass"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Token string              `json:"token"`
			User  model.Administrator `json:"user"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "tok-123", body.Token)
		assert.Equal(t, "admin-slug", body.User.Slug)
		mockSvc.AssertExpectations(t)
	})

	t.Run("bad credentials", func(t *testing.T) {
		mockSvc.On("LoginAdministrator", mock.Anything, "reg@school.edu", "wrong").
			Return("", nil, apperrors.ErrUnauthorized).Once()

		req := httptest.NewRequest(http.MethodPost, "/auth/admin/login",
			strings.NewReader(`{"email":"reg@school.edu","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/admin/login", strings.NewReader("not json"))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestLogout(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthService)
	app := fiber.New()
	app.Post("/auth/logout", Logout(mockSvc))

	mockSvc.On("Logout", mock.Anything, "tok-123").Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer tok-123")
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestCreateStudent(t *testing.T) {
	mockSvc := new(serviceMocks.MockStudentService)
	actor := testAdmin()
	app := fiber.New()
	app.Post("/students", withActor(actor), CreateStudent(mockSvc))

	t.Run("success", func(t *testing.T) {
		view := &service.StudentView{Slug: "new-student", FirstName: "Ana"}
		mockSvc.On("Create", mock.Anything, actor, mock.MatchedBy(func(in service.CreateStudentInput) bool {
			return in.Email == "ana@example.com" && in.StudentNumber == "2021-00042"
		})).Return(view, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/students", strings.NewReader(
			`{"first_name":"Ana","last_name":"Reyes","student_number":"2021-00042","email":"ana@example.com","password":"longenough","course":"BSIT","year":"3","term":"1"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result service.StudentView
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "new-student", result.Slug)
		mockSvc.AssertExpectations(t)
	})

	t.Run("validation error", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, actor, mock.Anything).
			Return(nil, apperrors.Validation("password")).Once()

		req := httptest.NewRequest(http.MethodPost, "/students",
			strings.NewReader(`{"first_name":"Ana","password":"short"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestListPayments(t *testing.T) {
	mockSvc := new(serviceMocks.MockPaymentService)
	actor := testAdmin()
	app := fiber.New()
	app.Get("/students/:slug/payments", withActor(actor), ListPayments(mockSvc))

	t.Run("success", func(t *testing.T) {
		views := []service.PaymentView{{Slug: "pay-1", Status: model.RecordVerified}}
		mockSvc.On("ListFor", mock.Anything, actor, "student-slug").Return(views, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/students/student-slug/payments", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Data []service.PaymentView `json:"data"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Len(t, body.Data, 1)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no payments", func(t *testing.T) {
		mockSvc.On("ListFor", mock.Anything, actor, "student-slug").
			Return(nil, apperrors.ErrEmpty).Once()

		req := httptest.NewRequest(http.MethodGet, "/students/student-slug/payments", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown student", func(t *testing.T) {
		mockSvc.On("ListFor", mock.Anything, actor, "ghost").
			Return(nil, apperrors.NotFound("student")).Once()

		req := httptest.NewRequest(http.MethodGet, "/students/ghost/payments", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestCreatePayment(t *testing.T) {
	mockSvc := new(serviceMocks.MockPaymentService)
	actor := testAdmin()
	app := fiber.New()
	app.Post("/students/:slug/payments", withActor(actor), CreatePayment(mockSvc))

	t.Run("success", func(t *testing.T) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		writer.WriteField("is_full", "true")
		writer.WriteField("mode_of_payment", "cash")
		writer.WriteField("amount_paid", "1500.50")
		writer.WriteField("date_paid", "2025-06-01")
		part, _ := writer.CreateFormFile("files", "receipt.pdf")
		part.Write([]byte("%PDF-1.4"))
		writer.Close()

		view := &service.PaymentView{Slug: "pay-1"}
		mockSvc.On("Create", mock.Anything, actor, "student-slug",
			mock.MatchedBy(func(attrs service.PaymentAttrs) bool {
				return attrs.IsFull && attrs.AmountPaid == 1500.50 && attrs.ModeOfPayment == model.ModeCash
			}),
			mock.MatchedBy(func(uploads []service.FileUpload) bool {
				return len(uploads) == 1 && uploads[0].Extension == "pdf"
			})).Return(view, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/students/student-slug/payments", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no files rejected by service", func(t *testing.T) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		writer.WriteField("is_full", "true")
		writer.WriteField("mode_of_payment", "cash")
		writer.WriteField("amount_paid", "100")
		writer.Close()

		mockSvc.On("Create", mock.Anything, actor, "student-slug", mock.Anything, mock.Anything).
			Return(nil, apperrors.Validation("files")).Once()

		req := httptest.NewRequest(http.MethodPost, "/students/student-slug/payments", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestDestroyPayment(t *testing.T) {
	mockSvc := new(serviceMocks.MockPaymentService)
	actor := testAdmin()
	app := fiber.New()
	app.Delete("/payments/:slug", withActor(actor), DestroyPayment(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Destroy", mock.Anything, actor, "pay-1").Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/payments/pay-1", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("forbidden for plain admin", func(t *testing.T) {
		mockSvc.On("Destroy", mock.Anything, actor, "pay-1").
			Return(apperrors.ErrUnauthorized).Once()

		req := httptest.NewRequest(http.MethodDelete, "/payments/pay-1", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("already destroyed", func(t *testing.T) {
		mockSvc.On("Destroy", mock.Anything, actor, "pay-1").
			Return(apperrors.NotFound("payment")).Once()

		req := httptest.NewRequest(http.MethodDelete, "/payments/pay-1", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestSingletonFileHandlers(t *testing.T) {
	actor := testAdmin()

	t.Run("store", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockSingletonFileService)
		app := fiber.New()
		app.Post("/students/:slug/cor", withActor(actor), StoreSingletonFile(mockSvc))

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		writer.WriteField("course", "BSIT")
		writer.WriteField("year", "3")
		writer.WriteField("term", "1")
		part, _ := writer.CreateFormFile("file", "cor.pdf")
		part.Write([]byte("%PDF-1.4"))
		writer.Close()

		view := &service.FileView{Slug: "file-1", Type: model.FileTypeCor}
		mockSvc.On("Store", mock.Anything, actor, "student-slug",
			mock.MatchedBy(func(up service.FileUpload) bool { return up.Extension == "pdf" }),
			service.SlotAttrs{Course: "BSIT", Year: "3", Term: "1"}).Return(view, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/students/student-slug/cor", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("store without file", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockSingletonFileService)
		app := fiber.New()
		app.Post("/students/:slug/cor", withActor(actor), StoreSingletonFile(mockSvc))

		req := httptest.NewRequest(http.MethodPost, "/students/student-slug/cor", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "FILE_REQUIRED", res.Error.Code)
		mockSvc.AssertNotCalled(t, "Store")
	})

	t.Run("empty slot read", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockSingletonFileService)
		app := fiber.New()
		app.Get("/students/:slug/cor", withActor(actor), GetSingletonFile(mockSvc))

		mockSvc.On("ListFor", mock.Anything, actor, "student-slug").
			Return(nil, apperrors.ErrEmpty).Once()

		req := httptest.NewRequest(http.MethodGet, "/students/student-slug/cor", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("destroy", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockSingletonFileService)
		app := fiber.New()
		app.Delete("/students/:slug/cor", withActor(actor), DestroySingletonFile(mockSvc))

		mockSvc.On("Destroy", mock.Anything, actor, "student-slug").Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/students/student-slug/cor", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestUpdateDisplayPhoto(t *testing.T) {
	mockSvc := new(serviceMocks.MockStudentService)
	actor := testAdmin()
	app := fiber.New()
	app.Put("/students/:slug/display-photo", withActor(actor), UpdateDisplayPhoto(mockSvc))

	t.Run("success", func(t *testing.T) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, _ := writer.CreateFormFile("file", "face.png")
		part.Write([]byte{0x89, 0x50, 0x4e, 0x47})
		writer.Close()

		view := &service.FileView{Slug: "photo-1", Type: model.FileTypeDisplayPhoto}
		mockSvc.On("UpdateDisplayPhoto", mock.Anything, actor, "student-slug",
			mock.MatchedBy(func(up service.FileUpload) bool { return up.Extension == "png" })).
			Return(view, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/students/student-slug/display-photo", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no file", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/students/student-slug/display-photo", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "FILE_REQUIRED", res.Error.Code)
	})
}

func TestStudentDownload(t *testing.T) {
	mockSvc := new(serviceMocks.MockDownloadService)
	student := &model.Actor{
		Kind:    model.ActorStudent,
		Role:    model.RoleStudent,
		Student: &model.Student{ID: 42, Slug: "student-slug", LastName: "Reyes", StudentNumber: "2021-00042"},
	}
	app := fiber.New()
	app.Get("/students/:slug/files/:fileSlug/download", withActor(student), StudentDownload(mockSvc))

	t.Run("success", func(t *testing.T) {
		dl := &service.Download{
			Reader:      http.NoBody,
			ContentType: "application/pdf",
			Filename:    "Reyes_2021-00042_cor.pdf",
		}
		mockSvc.On("ForStudent", mock.Anything, student, "student-slug", "file-1").Return(dl, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/students/student-slug/files/file-1/download", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
		assert.Contains(t, resp.Header.Get("Content-Disposition"), "Reyes_2021-00042_cor.pdf")
		mockSvc.AssertExpectations(t)
	})

	t.Run("someone else's file", func(t *testing.T) {
		mockSvc.On("ForStudent", mock.Anything, student, "other-slug", "file-2").
			Return(nil, apperrors.ErrUnauthorized).Once()

		req := httptest.NewRequest(http.MethodGet, "/students/other-slug/files/file-2/download", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})

	mockAuth := new(serviceMocks.MockAuthService)
	RegisterRoutes(app, nil, Services{
		Auth:           mockAuth,
		Students:       new(serviceMocks.MockStudentService),
		Administrators: new(serviceMocks.MockAdministratorService),
		Payments:       new(serviceMocks.MockPaymentService),
		RegistrarFiles: new(serviceMocks.MockRegistrarFileService),
		Cors:           new(serviceMocks.MockSingletonFileService),
		Permits:        new(serviceMocks.MockSingletonFileService),
		Downloads:      new(serviceMocks.MockDownloadService),
		UserLogs:       new(serviceMocks.MockUserLogService),
		Dashboard:      new(serviceMocks.MockDashboardService),
	})

	t.Run("not found route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "METHOD_NOT_ALLOWED", res.Error.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/students", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "UNAUTHORIZED", res.Error.Code)
	})
}

func TestDashboardHandlers(t *testing.T) {
	mockSvc := new(serviceMocks.MockDashboardService)
	actor := &model.Actor{
		Kind: model.ActorAdministrator,
		Role: model.RoleSuperAdmin,
		Administrator: &model.Administrator{
			ID:   1,
			Slug: "super-slug",
			Role: model.RoleSuperAdmin,
		},
	}
	app := fiber.New()
	app.Get("/dashboard/users-count", withActor(actor), DashboardUserCounts(mockSvc))
	app.Get("/dashboard/payments-count", withActor(actor), DashboardPaymentCounts(mockSvc))
	app.Get("/dashboard/recent-activities", withActor(actor), DashboardRecentActivities(mockSvc))

	t.Run("users count", func(t *testing.T) {
		mockSvc.On("UserCounts", mock.Anything, actor).Return(&model.UserTally{
			Administrators: 3,
			Students: model.StudentTally{
				Total:    12,
				ByStatus: map[string]int64{"enrolled": 10},
			},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/dashboard/users-count", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body model.UserTally
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, int64(3), body.Administrators)
		assert.Equal(t, int64(10), body.Students.ByStatus["enrolled"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("payments count", func(t *testing.T) {
		mockSvc.On("PaymentCounts", mock.Anything, actor).Return(&model.PaymentTally{
			Total:  5,
			ByMode: map[string]int64{"cash": 3},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/dashboard/payments-count", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body model.PaymentTally
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, int64(5), body.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("recent activities", func(t *testing.T) {
		mockSvc.On("RecentActivities", mock.Anything, actor).Return([]service.ActivityEntry{
			{Description: "verified payment"},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/dashboard/recent-activities", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Data []service.ActivityEntry `json:"data"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Len(t, body.Data, 1)
		assert.Equal(t, "verified payment", body.Data[0].Description)
		mockSvc.AssertExpectations(t)
	})

	t.Run("plain admin rejected", func(t *testing.T) {
		mockSvc.On("UserCounts", mock.Anything, actor).Return(nil, apperrors.ErrUnauthorized).Once()

		req := httptest.NewRequest(http.MethodGet, "/dashboard/users-count", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestServiceErrorMessages(t *testing.T) {
	app := fiber.New()
	app.Get("/missing", func(c *fiber.Ctx) error {
		return serviceError(c, apperrors.NotFound("student"))
	})
	app.Get("/invalid", func(c *fiber.Ctx) error {
		return serviceError(c, apperrors.Validation("mode_of_payment"))
	})
	app.Get("/broken", func(c *fiber.Ctx) error {
		return serviceError(c, errors.New("pq: connection reset"))
	})

	t.Run("not found names the entity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "student does not exist or might be deleted", res.Error.Message)
	})

	t.Run("validation names the field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/invalid", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "invalid mode_of_payment", res.Error.Message)
	})

	t.Run("internal detail never leaks", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/broken", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "internal server error", res.Error.Message)
	})
}
