package order

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/KasunInd27/CampQuest-sub000/model"
	ordersvc "github.com/KasunInd27/CampQuest-sub000/service/order"
	paymentsvc "github.com/KasunInd27/CampQuest-sub000/service/payment"
)

type Controller struct {
	Svc ordersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/orders/checkout
func (h *Controller) Checkout(c echo.Context) error {
	var req CheckoutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	uid, _ := c.Get("user_id").(int64)

	in := ordersvc.CheckoutInput{
		CartKey:  cartKey(uid),
		Method:   model.PaymentMethod(req.PaymentMethod),
		Customer: model.Customer{UserID: uid, Name: req.Name, Email: req.Email, Phone: req.Phone},
		Delivery: toDelivery(req.Delivery),
		Period:   toPeriod(req.Period),
	}
	o, err := h.Svc.Checkout(c.Request().Context(), in)
	if err != nil {
		return h.mapErr(c, "checkout", err)
	}
	return c.JSON(http.StatusCreated, o)
}

// POST /v1/orders/packages
func (h *Controller) PackageCheckout(c echo.Context) error {
	var req PackageCheckoutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	uid, _ := c.Get("user_id").(int64)

	in := ordersvc.PackageInput{
		PackageID: req.PackageID,
		Quantity:  req.Quantity,
		Method:    model.PaymentMethod(req.PaymentMethod),
		Customer:  model.Customer{UserID: uid, Name: req.Name, Email: req.Email, Phone: req.Phone},
		Delivery:  toDelivery(req.Delivery),
	}
	o, err := h.Svc.PackageCheckout(c.Request().Context(), in)
	if err != nil {
		return h.mapErr(c, "package checkout", err)
	}
	return c.JSON(http.StatusCreated, o)
}

// GET /v1/orders/my
func (h *Controller) MyOrders(c echo.Context) error {
	uid, _ := c.Get("user_id").(int64)
	rows, err := h.Svc.MyOrders(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("my orders", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/orders/:id
func (h *Controller) Detail(c echo.Context) error {
	uid, _ := c.Get("user_id").(int64)
	o, err := h.Svc.GetForUser(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return h.mapErr(c, "order detail", err)
	}
	return c.JSON(http.StatusOK, o)
}

// POST /v1/orders/:id/cancel
func (h *Controller) Cancel(c echo.Context) error {
	var req CancelReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	uid, _ := c.Get("user_id").(int64)

	if err := h.Svc.CustomerCancel(c.Request().Context(), uid, c.Param("id"), req.Reason); err != nil {
		return h.mapErr(c, "order cancel", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "order cancelled"})
}

// PUT /v1/orders/:id/contact
func (h *Controller) EditContact(c echo.Context) error {
	var req EditContactReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	uid, _ := c.Get("user_id").(int64)

	in := ordersvc.EditInput{Name: req.Name, Email: req.Email, Phone: req.Phone, Delivery: toDelivery(req.Delivery)}
	if err := h.Svc.CustomerEdit(c.Request().Context(), uid, c.Param("id"), in); err != nil {
		return h.mapErr(c, "order edit", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "order updated"})
}

// ----- staff -----

// GET /v1/staff/orders
func (h *Controller) List(c echo.Context) error {
	var status *model.OrderStatus
	if s := c.QueryParam("status"); s != "" {
		if !model.ValidOrderStatus(s) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "unknown status"})
		}
		st := model.OrderStatus(s)
		status = &st
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	rows, err := h.Svc.List(c.Request().Context(), status, limit, offset)
	if err != nil {
		h.Log.Error("order list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/staff/orders/:id
func (h *Controller) StaffDetail(c echo.Context) error {
	o, err := h.Svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapErr(c, "staff order detail", err)
	}
	return c.JSON(http.StatusOK, o)
}

// POST /v1/staff/orders/:id/status
func (h *Controller) UpdateStatus(c echo.Context) error {
	var req UpdateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	if !model.ValidOrderStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "unknown status"})
	}

	if err := h.Svc.StaffUpdateStatus(c.Request().Context(), c.Param("id"), model.OrderStatus(req.Status)); err != nil {
		return h.mapErr(c, "status update", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "status updated"})
}

// POST /v1/staff/orders/:id/priority
func (h *Controller) UpdatePriority(c echo.Context) error {
	var req UpdatePriorityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	if err := h.Svc.SetPriority(c.Request().Context(), c.Param("id"), model.Priority(req.Priority)); err != nil {
		return h.mapErr(c, "priority update", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "priority updated"})
}

// POST /v1/staff/orders/bulk/status
func (h *Controller) BulkStatus(c echo.Context) error {
	var req BulkStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	if !model.ValidOrderStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "unknown status"})
	}

	res := h.Svc.BulkUpdateStatus(c.Request().Context(), req.OrderIDs, model.OrderStatus(req.Status))
	return c.JSON(http.StatusOK, res)
}

// POST /v1/staff/orders/bulk/priority
func (h *Controller) BulkPriority(c echo.Context) error {
	var req BulkPriorityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	res := h.Svc.BulkUpdatePriority(c.Request().Context(), req.OrderIDs, model.Priority(req.Priority))
	return c.JSON(http.StatusOK, res)
}

// ----- helpers -----

func cartKey(uid int64) string { return "user:" + strconv.FormatInt(uid, 10) }

func toDelivery(d *DeliveryReq) *model.DeliveryAddress {
	if d == nil {
		return nil
	}
	return &model.DeliveryAddress{Street: d.Street, City: d.City, Province: d.Province, PostalCode: d.PostalCode}
}

func toPeriod(p *PeriodReq) *model.RentalPeriod {
	if p == nil {
		return nil
	}
	return &model.RentalPeriod{StartDate: p.StartDate, EndDate: p.EndDate}
}

func (h *Controller) mapErr(c echo.Context, op string, err error) error {
	if errors.Is(err, paymentsvc.ErrCardUnavailable) {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"message": "card payments are temporarily unavailable"})
	}
	switch ordersvc.Code(err) {
	case ordersvc.ErrValidation:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	case ordersvc.ErrNoStock:
		return c.JSON(http.StatusConflict, echo.Map{"message": "item unavailable"})
	case ordersvc.ErrIllegalTransition:
		return c.JSON(http.StatusConflict, echo.Map{"message": err.Error()})
	case ordersvc.ErrNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "order not found"})
	case ordersvc.ErrNotOwner:
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	default:
		h.Log.Error(op, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}
