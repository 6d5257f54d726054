package handler

import (
	"github.com/gofiber/fiber/v2"

	"recordsapi/internal/model"
	"recordsapi/internal/service"
)

type createStudentRequest struct {
	FirstName     string `json:"first_name"`
	MiddleName    string `json:"middle_name"`
	LastName      string `json:"last_name"`
	StudentNumber string `json:"student_number"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Course        string `json:"course"`
	Year          string `json:"year"`
	Term          string `json:"term"`
}

// CreateStudent registers a new student account.
func CreateStudent(students service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createStudentRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}

		view, err := students.Create(c.UserContext(), actorFromCtx(c), service.CreateStudentInput{
			FirstName:     req.FirstName,
			MiddleName:    req.MiddleName,
			LastName:      req.LastName,
			StudentNumber: req.StudentNumber,
			Email:         req.Email,
			Password:      req.Password,
			Course:        req.Course,
			Year:          req.Year,
			Term:          req.Term,
		})
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(view)
	}
}

// ListStudents returns every active student account.
func ListStudents(students service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		views, err := students.List(c.UserContext(), actorFromCtx(c))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"data": views})
	}
}

// GetStudent returns one student account by slug.
func GetStudent(students service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := students.Get(c.UserContext(), actorFromCtx(c), c.Params("slug"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(view)
	}
}

// UpdateEnrollmentStatus writes the student's enrollment status.
func UpdateEnrollmentStatus(students service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			EnrollmentStatus model.EnrollmentStatus `json:"enrollment_status"`
		}
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}
		if err := students.UpdateEnrollmentStatus(c.UserContext(), actorFromCtx(c), c.Params("slug"), req.EnrollmentStatus); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// UpdateStudentName writes the student's name fields.
func UpdateStudentName(students service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			FirstName  string `json:"first_name"`
			MiddleName string `json:"middle_name"`
			LastName   string `json:"last_name"`
		}
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}
		if err := students.UpdateName(c.UserContext(), actorFromCtx(c), c.Params("slug"), req.FirstName, req.MiddleName, req.LastName); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// UpdateStudentCourse writes the student's course.
func UpdateStudentCourse(students service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			Course string `json:"course"`
		}
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}
		if err := students.UpdateCourse(c.UserContext(), actorFromCtx(c), c.Params("slug"), req.Course); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// UpdateStudentYearTerm writes the student's year and term.
func UpdateStudentYearTerm(students service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			Year string `json:"year"`
			Term string `json:"term"`
		}
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}
		if err := students.UpdateYearTerm(c.UserContext(), actorFromCtx(c), c.Params("slug"), req.Year, req.Term); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// UpdateStudentEmail writes the student's email.
func UpdateStudentEmail(students service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			Email string `json:"email"`
		}
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}
		if err := students.UpdateEmail(c.UserContext(), actorFromCtx(c), c.Params("slug"), req.Email); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// UpdateStudentPassword writes the student's password.
func UpdateStudentPassword(students service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			Password string `json:"password"`
		}
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}
		if err := students.UpdatePassword(c.UserContext(), actorFromCtx(c), c.Params("slug"), req.Password); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// UpdateDisplayPhoto replaces the student's display photo (multipart field:
// file).
func UpdateDisplayPhoto(students service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		up, close, err := uploadFromHeader(fh)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer close()

		view, err := students.UpdateDisplayPhoto(c.UserContext(), actorFromCtx(c), c.Params("slug"), up)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(view)
	}
}
