package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"recordsapi/internal/model"
	"recordsapi/internal/service"
)

// paymentAttrsFromForm parses the multipart form fields of a payment header.
func paymentAttrsFromForm(c *fiber.Ctx) (service.PaymentAttrs, error) {
	isFull, _ := strconv.ParseBool(c.FormValue("is_full", "false"))
	isInstallment, _ := strconv.ParseBool(c.FormValue("is_installment", "false"))
	amountPaid, err := strconv.ParseFloat(c.FormValue("amount_paid", "0"), 64)
	if err != nil {
		return service.PaymentAttrs{}, err
	}

	attrs := service.PaymentAttrs{
		IsFull:        isFull,
		IsInstallment: isInstallment,
		ModeOfPayment: model.ModeOfPayment(c.FormValue("mode_of_payment")),
		AmountPaid:    amountPaid,
		Course:        c.FormValue("course"),
		Year:          c.FormValue("year"),
		Term:          c.FormValue("term"),
	}
	if v := c.FormValue("date_paid"); v != "" {
		datePaid, err := time.Parse("2006-01-02", v)
		if err != nil {
			return service.PaymentAttrs{}, err
		}
		attrs.DatePaid = datePaid
	}
	if v := c.FormValue("balance"); v != "" {
		balance, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return service.PaymentAttrs{}, err
		}
		attrs.Balance = &balance
	}
	return attrs, nil
}

// CreatePayment creates a payment aggregate for a student (multipart fields +
// files under "files").
func CreatePayment(payments service.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		attrs, err := paymentAttrsFromForm(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed form field")
		}
		uploads, cleanup, err := formUploads(c, "files")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded files")
		}
		defer cleanup()

		view, err := payments.Create(c.UserContext(), actorFromCtx(c), c.Params("slug"), attrs, uploads)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(view)
	}
}

// ListPayments returns a student's payment aggregates, or 204 when none.
func ListPayments(payments service.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		views, err := payments.ListFor(c.UserContext(), actorFromCtx(c), c.Params("slug"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"data": views})
	}
}

// UpdatePayment writes the verification status and optionally replaces the
// attached files.
func UpdatePayment(payments service.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := model.RecordStatus(c.FormValue("status"))
		uploads, cleanup, err := formUploads(c, "files")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded files")
		}
		defer cleanup()

		view, err := payments.Update(c.UserContext(), actorFromCtx(c), c.Params("slug"), status, uploads)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(view)
	}
}

// DestroyPayment destroys a payment aggregate. Super-admin only.
func DestroyPayment(payments service.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := payments.Destroy(c.UserContext(), actorFromCtx(c), c.Params("slug")); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
