package payment

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	paymentsvc "github.com/KasunInd27/CampQuest-sub000/service/payment"
)

type Controller struct {
	Svc paymentsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

type VerifyReq struct {
	Approved *bool `json:"approved" validate:"required"`
}

// POST /v1/orders/:id/payment-slip
func (h *Controller) SubmitSlip(c echo.Context) error {
	uid, _ := c.Get("user_id").(int64)

	fh, err := c.FormFile("slip")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "slip file is required"})
	}
	f, err := fh.Open()
	if err != nil {
		h.Log.Error("slip open", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	defer f.Close()

	slip, err := h.Svc.SubmitSlip(c.Request().Context(), uid, c.Param("id"), paymentsvc.SlipUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Content:     f,
	})
	if err != nil {
		return h.mapErr(c, "slip submit", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":        "slip received, pending verification",
		"payment_status": "VERIFICATION_PENDING",
		"slip":           slip,
	})
}

// POST /v1/staff/orders/:id/payment/verify
func (h *Controller) Verify(c echo.Context) error {
	var req VerifyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	if err := h.Svc.Verify(c.Request().Context(), c.Param("id"), *req.Approved); err != nil {
		return h.mapErr(c, "payment verify", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "payment verification recorded"})
}

// POST /v1/staff/orders/:id/payment/refund
func (h *Controller) Refund(c echo.Context) error {
	if err := h.Svc.Refund(c.Request().Context(), c.Param("id")); err != nil {
		return h.mapErr(c, "payment refund", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "payment refunded"})
}

func (h *Controller) mapErr(c echo.Context, op string, err error) error {
	switch {
	case errors.Is(err, paymentsvc.ErrUploadRejected):
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	case errors.Is(err, paymentsvc.ErrIllegalTransition), errors.Is(err, paymentsvc.ErrSlipNotExpected):
		return c.JSON(http.StatusConflict, echo.Map{"message": err.Error()})
	case errors.Is(err, paymentsvc.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"message": "order not found"})
	case errors.Is(err, paymentsvc.ErrNotOwner):
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	default:
		h.Log.Error(op, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}
