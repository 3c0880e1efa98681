package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lokesh-18a/artiflex/internal/dto"
	"github.com/lokesh-18a/artiflex/internal/logging"
	"github.com/lokesh-18a/artiflex/internal/middleware"
	"github.com/lokesh-18a/artiflex/internal/service"
)

type CustomerHandler struct {
	cartService     service.CartService
	checkoutService service.CheckoutService
	orderService    service.OrderService
	paymentService  service.PaymentService
}

func NewCustomerHandler(
	cartService service.CartService,
	checkoutService service.CheckoutService,
	orderService service.OrderService,
	paymentService service.PaymentService,
) *CustomerHandler {
	return &CustomerHandler{
		cartService:     cartService,
		checkoutService: checkoutService,
		orderService:    orderService,
		paymentService:  paymentService,
	}
}

func (h *CustomerHandler) ViewCart(c echo.Context) error {
	ctx := c.Request().Context()
	identity, _ := middleware.IdentityFrom(c)

	items, total, err := h.cartService.Items(ctx, identity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.CartResponse{
		Items:      items,
		TotalCents: total,
	})
}

func (h *CustomerHandler) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	identity, _ := middleware.IdentityFrom(c)

	productID, err := parseID(c.Param("productId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	if err := h.cartService.AddItem(ctx, identity, productID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "added"})
}

func (h *CustomerHandler) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	identity, _ := middleware.IdentityFrom(c)

	cartItemID, err := parseID(c.Param("cartItemId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid cart item id")
	}

	if err := h.cartService.RemoveItem(ctx, identity, cartItemID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "cart item not found")
		case errors.Is(err, service.ErrNotOwner):
			return echo.NewHTTPError(http.StatusForbidden, "not your cart item")
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "removed"})
}

// PaymentCheckout returns the hosted payment page URL for the current cart.
// Provider failures come back as a message, not a 5xx.
func (h *CustomerHandler) PaymentCheckout(c echo.Context) error {
	ctx := c.Request().Context()
	identity, _ := middleware.IdentityFrom(c)

	url, err := h.paymentService.CheckoutURL(ctx, identity)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			return echo.NewHTTPError(http.StatusBadRequest, "your cart is empty")
		}
		logging.From(c).Warn("payment checkout failed", "error", err)
		return c.JSON(http.StatusBadGateway, map[string]string{
			"message": "could not initiate payment, please try again later",
		})
	}

	return c.JSON(http.StatusOK, dto.CheckoutURLResponse{CheckoutURL: url})
}

func (h *CustomerHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	identity, _ := middleware.IdentityFrom(c)

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	order, err := h.checkoutService.Checkout(ctx, identity, &req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			return echo.NewHTTPError(http.StatusBadRequest, "your cart is empty")
		}
		return err
	}

	return c.JSON(http.StatusCreated, order)
}

// PaymentSuccess is the return leg of the hosted payment page. The provider
// redirects here after the customer pays; the cart is finalized into an
// order at that point, not before.
func (h *CustomerHandler) PaymentSuccess(c echo.Context) error {
	ctx := c.Request().Context()
	identity, _ := middleware.IdentityFrom(c)

	order, err := h.checkoutService.Checkout(ctx, identity, &dto.CheckoutRequest{
		PaymentMethod: "Online",
	})
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			return echo.NewHTTPError(http.StatusBadRequest, "no items in cart to process")
		}
		return err
	}

	return c.JSON(http.StatusCreated, order)
}

func (h *CustomerHandler) ViewOrders(c echo.Context) error {
	ctx := c.Request().Context()
	identity, _ := middleware.IdentityFrom(c)

	orders, err := h.orderService.OrdersByCustomer(ctx, identity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *CustomerHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	identity, _ := middleware.IdentityFrom(c)

	orderID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	order, err := h.orderService.GetOrder(ctx, identity, orderID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		case errors.Is(err, service.ErrNotOwner):
			return echo.NewHTTPError(http.StatusForbidden, "not your order")
		}
		return err
	}

	return c.JSON(http.StatusOK, order)
}
