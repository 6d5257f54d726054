package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"recordsapi/internal/http/middleware"
	"recordsapi/internal/service"
)

// Services bundles everything the route table depends on.
type Services struct {
	Auth           service.AuthService
	Students       service.StudentService
	Administrators service.AdministratorService
	Payments       service.PaymentService
	RegistrarFiles service.RegistrarFileService
	Cors           service.SingletonFileService
	Permits        service.SingletonFileService
	Downloads      service.DownloadService
	UserLogs       service.UserLogService
	Dashboard      service.DashboardService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Everything
// outside health, docs and login requires a bearer token.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc Services) {
	app.Get("/openapi.yaml", OpenAPISpec())
	app.Get("/docs", SwaggerUI())
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/auth/admin/login", AdministratorLogin(svc.Auth))
	app.Post("/auth/student/login", StudentLogin(svc.Auth))

	api := app.Group("", middleware.Authenticate(svc.Auth))
	api.Post("/auth/logout", Logout(svc.Auth))

	students := api.Group("/students")
	students.Post("", CreateStudent(svc.Students))
	students.Get("", ListStudents(svc.Students))
	students.Get("/:slug", GetStudent(svc.Students))
	students.Patch("/:slug/enrollment-status", UpdateEnrollmentStatus(svc.Students))
	students.Patch("/:slug/name", UpdateStudentName(svc.Students))
	students.Patch("/:slug/course", UpdateStudentCourse(svc.Students))
	students.Patch("/:slug/year-term", UpdateStudentYearTerm(svc.Students))
	students.Patch("/:slug/email", UpdateStudentEmail(svc.Students))
	students.Patch("/:slug/password", UpdateStudentPassword(svc.Students))
	students.Put("/:slug/display-photo", UpdateDisplayPhoto(svc.Students))

	students.Get("/:slug/cor", GetSingletonFile(svc.Cors))
	students.Post("/:slug/cor", StoreSingletonFile(svc.Cors))
	students.Put("/:slug/cor", UpdateSingletonFile(svc.Cors))
	students.Delete("/:slug/cor", DestroySingletonFile(svc.Cors))

	students.Get("/:slug/permit", GetSingletonFile(svc.Permits))
	students.Post("/:slug/permit", StoreSingletonFile(svc.Permits))
	students.Put("/:slug/permit", UpdateSingletonFile(svc.Permits))
	students.Delete("/:slug/permit", DestroySingletonFile(svc.Permits))

	students.Get("/:slug/payments", ListPayments(svc.Payments))
	students.Post("/:slug/payments", CreatePayment(svc.Payments))

	students.Get("/:slug/registrar-files", ListRegistrarFiles(svc.RegistrarFiles))
	students.Post("/:slug/registrar-files", CreateRegistrarFile(svc.RegistrarFiles))

	students.Get("/:slug/files/:fileSlug/download", StudentDownload(svc.Downloads))

	api.Patch("/payments/:slug", UpdatePayment(svc.Payments))
	api.Delete("/payments/:slug", DestroyPayment(svc.Payments))

	api.Patch("/registrar-files/:slug", UpdateRegistrarFile(svc.RegistrarFiles))
	api.Delete("/registrar-files/:slug", DestroyRegistrarFile(svc.RegistrarFiles))

	api.Get("/files/:fileSlug/download", AdministratorDownload(svc.Downloads))

	admins := api.Group("/administrators")
	admins.Post("", CreateAdministrator(svc.Administrators))
	admins.Get("", ListAdministrators(svc.Administrators))
	admins.Patch("/:slug/name", UpdateAdministratorName(svc.Administrators))
	admins.Patch("/:slug/email", UpdateAdministratorEmail(svc.Administrators))
	admins.Patch("/:slug/password", UpdateAdministratorPassword(svc.Administrators))
	admins.Patch("/:slug/status", ToggleAdministratorStatus(svc.Administrators))

	api.Post("/logs", AppendUserLog(svc.UserLogs))
	api.Get("/logs", ListUserLogs(svc.UserLogs))

	dashboard := api.Group("/dashboard")
	dashboard.Get("/users-count", DashboardUserCounts(svc.Dashboard))
	dashboard.Get("/payments-count", DashboardPaymentCounts(svc.Dashboard))
	dashboard.Get("/recent-activities", DashboardRecentActivities(svc.Dashboard))
}
