package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lokesh-18a/artiflex/internal/service"
)

type PublicHandler struct {
	catalogService  service.CatalogService
	currencyService service.CurrencyService
}

func NewPublicHandler(catalogService service.CatalogService, currencyService service.CurrencyService) *PublicHandler {
	return &PublicHandler{
		catalogService:  catalogService,
		currencyService: currencyService,
	}
}

// Home is the storefront landing payload: trending products, categories,
// featured artists, and the day's conversion rates.
func (h *PublicHandler) Home(c echo.Context) error {
	ctx := c.Request().Context()

	trending, err := h.catalogService.TrendingProducts(ctx, 8)
	if err != nil {
		return err
	}
	categories, err := h.catalogService.Categories(ctx)
	if err != nil {
		return err
	}
	artists, err := h.catalogService.ListArtists(ctx, 8)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"trending_products": trending,
		"categories":        categories,
		"top_artists":       artists,
		"currency_rates":    h.currencyService.Rates(ctx),
	})
}

func (h *PublicHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	products, err := h.catalogService.ListProducts(ctx, offset, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, products)
}

func (h *PublicHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	product, err := h.catalogService.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, product)
}

func (h *PublicHandler) ProductsByCategory(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.catalogService.ProductsByCategory(ctx, c.Param("name"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, products)
}

func (h *PublicHandler) GetArtist(c echo.Context) error {
	ctx := c.Request().Context()

	artistID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid artist id")
	}

	artist, products, err := h.catalogService.GetArtist(ctx, artistID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "artist not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"artist":   artist,
		"products": products,
	})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}
