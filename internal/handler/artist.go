package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lokesh-18a/artiflex/internal/dto"
	"github.com/lokesh-18a/artiflex/internal/middleware"
	"github.com/lokesh-18a/artiflex/internal/service"
)

type ArtistHandler struct {
	artistService service.ArtistService
	orderService  service.OrderService
}

func NewArtistHandler(artistService service.ArtistService, orderService service.OrderService) *ArtistHandler {
	return &ArtistHandler{
		artistService: artistService,
		orderService:  orderService,
	}
}

func (h *ArtistHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	identity, _ := middleware.IdentityFrom(c)

	dashboard, err := h.artistService.Dashboard(ctx, identity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboard)
}

func (h *ArtistHandler) DraftProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ProductDraftRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, h.artistService.DraftProduct(ctx, &req))
}

func (h *ArtistHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	identity, _ := middleware.IdentityFrom(c)

	var req dto.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	product, err := h.artistService.CreateProduct(ctx, identity, &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, product)
}

func (h *ArtistHandler) UpdateOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()
	identity, _ := middleware.IdentityFrom(c)

	orderID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	order, err := h.orderService.UpdateStatus(ctx, identity, orderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		case errors.Is(err, service.ErrNotOwner):
			return echo.NewHTTPError(http.StatusForbidden, "none of your products are in this order")
		case errors.Is(err, service.ErrInvalidTransition):
			return echo.NewHTTPError(http.StatusBadRequest, "status change not allowed")
		}
		return err
	}

	return c.JSON(http.StatusOK, order)
}

func (h *ArtistHandler) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()
	identity, _ := middleware.IdentityFrom(c)

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	if err := h.artistService.UpdateProfile(ctx, identity, &req); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}
