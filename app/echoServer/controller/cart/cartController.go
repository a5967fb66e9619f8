package cart

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/KasunInd27/CampQuest-sub000/model"
	cartsvc "github.com/KasunInd27/CampQuest-sub000/service/cart"
)

type Controller struct {
	Svc cartsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// cartKey derives the explicit storage key for the authenticated user.
func cartKey(c echo.Context) string {
	uid, _ := c.Get("user_id").(int64)
	return fmt.Sprintf("user:%d", uid)
}

// GET /v1/cart
func (h *Controller) Get(c echo.Context) error {
	view, err := h.Svc.Get(c.Request().Context(), cartKey(c))
	if err != nil {
		h.Log.Error("cart get", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, view)
}

// POST /v1/cart/lines
func (h *Controller) AddLine(c echo.Context) error {
	var req AddLineReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	view, err := h.Svc.AddLine(c.Request().Context(), cartKey(c), req.ProductID, model.LineType(req.LineType), req.Quantity, req.RentalDays)
	if err != nil {
		return h.mapErr(c, "cart add line", err)
	}
	return c.JSON(http.StatusOK, view)
}

// PUT /v1/cart/lines/:productId
func (h *Controller) UpdateQuantity(c echo.Context) error {
	pid, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil || pid <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid product id"})
	}
	var req UpdateQuantityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	view, err := h.Svc.UpdateQuantity(c.Request().Context(), cartKey(c), pid, model.LineType(req.LineType), req.Quantity)
	if err != nil {
		return h.mapErr(c, "cart update quantity", err)
	}
	return c.JSON(http.StatusOK, view)
}

// PUT /v1/cart/lines/:productId/days
func (h *Controller) UpdateRentalDays(c echo.Context) error {
	pid, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil || pid <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid product id"})
	}
	var req UpdateDaysReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	view, err := h.Svc.UpdateRentalDays(c.Request().Context(), cartKey(c), pid, req.RentalDays)
	if err != nil {
		return h.mapErr(c, "cart update days", err)
	}
	return c.JSON(http.StatusOK, view)
}

// DELETE /v1/cart/lines/:productId?line_type=SALE
func (h *Controller) RemoveLine(c echo.Context) error {
	pid, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil || pid <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid product id"})
	}
	lt := model.LineType(c.QueryParam("line_type"))
	if lt != model.LineSale && lt != model.LineRental {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid line_type"})
	}

	view, err := h.Svc.RemoveLine(c.Request().Context(), cartKey(c), pid, lt)
	if err != nil {
		return h.mapErr(c, "cart remove line", err)
	}
	return c.JSON(http.StatusOK, view)
}

// DELETE /v1/cart
func (h *Controller) Clear(c echo.Context) error {
	if err := h.Svc.Clear(c.Request().Context(), cartKey(c)); err != nil {
		h.Log.Error("cart clear", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "cart cleared"})
}

func (h *Controller) mapErr(c echo.Context, op string, err error) error {
	switch {
	case errors.Is(err, cartsvc.ErrProductNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"message": "product not found"})
	case errors.Is(err, cartsvc.ErrLineNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"message": "cart line not found"})
	case errors.Is(err, cartsvc.ErrInvalidQuantity), errors.Is(err, cartsvc.ErrInvalidDays):
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	default:
		h.Log.Error(op, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}
