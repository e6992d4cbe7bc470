package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"wheelmart/internal/logging"
	"wheelmart/internal/mykafka"
	"wheelmart/internal/service"
	"wheelmart/internal/transport"
)

type OrderHTTP struct {
	Svc      *service.OrderService
	Producer *mykafka.Producer
}

func (h *OrderHTTP) callerID(c echo.Context) (uuid.UUID, error) {
	v, ok := c.Get("user_id").(string)
	if !ok || v == "" {
		return uuid.Nil, errors.New("unauthorized")
	}
	userID, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, errors.New("unauthorized")
	}
	return userID, nil
}

func (h *OrderHTTP) publish(c echo.Context, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, mykafka.TopicOrderEvents, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka_publish_error", "topic", mykafka.TopicOrderEvents, "error", err)
	}
}

func (h *OrderHTTP) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.place")

	userID, err := h.callerID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Token is not valid")
	}

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("order_place_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.PlaceOrder(ctx, req, userID)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("order_place_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		if errors.Is(err, service.ErrConflict) {
			l.Warn("order_place_error", "status", 409, "reason", "duplicate orderId")
			return echo.NewHTTPError(http.StatusConflict, "Order already exists")
		}
		l.Error("order_place_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
	}

	h.publish(c, order.OrderID, map[string]any{
		"type":    "order_placed",
		"orderId": order.OrderID,
		"userId":  order.UserID,
		"total":   order.GrandTotal,
	})

	l.Info("order_place_success", "order_id", order.OrderID)
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Order placed successfully",
		"order":   order,
	})
}

func (h *OrderHTTP) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list")

	orders, err := h.Svc.ListOrders(ctx)
	if err != nil {
		l.Error("order_list_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) GetUserOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list_user")

	userID, err := h.callerID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Token is not valid")
	}

	orders, err := h.Svc.ListUserOrders(ctx, userID)
	if err != nil {
		l.Error("order_list_user_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
	}
	return c.JSON(http.StatusOK, orders)
}

// CancelOrder is deliberately public: cancellation by anyone who knows the
// business orderId mirrors the rest of the order read surface.
func (h *OrderHTTP) CancelOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.cancel")

	orderID := c.Param("orderId")
	if err := h.Svc.CancelOrder(ctx, orderID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("order_cancel_error", "status", 404, "reason", "order not found")
			return echo.NewHTTPError(http.StatusNotFound, "Order not found")
		}
		l.Error("order_cancel_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
	}

	h.publish(c, orderID, map[string]any{
		"type":    "order_canceled",
		"orderId": orderID,
	})

	l.Info("order_cancel_success", "order_id", orderID)
	return c.JSON(http.StatusOK, echo.Map{"message": "Order canceled successfully"})
}
