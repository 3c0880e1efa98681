package server

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/lokesh-18a/artiflex/internal/handler"
	"github.com/lokesh-18a/artiflex/internal/logging"
	"github.com/lokesh-18a/artiflex/internal/middleware"
	"github.com/lokesh-18a/artiflex/internal/model"
	"github.com/lokesh-18a/artiflex/internal/service"
)

type Server struct {
	echo            *echo.Echo
	authHandler     *handler.AuthHandler
	publicHandler   *handler.PublicHandler
	customerHandler *handler.CustomerHandler
	artistHandler   *handler.ArtistHandler
}

func NewServer(
	authService service.AuthService,
	catalogService service.CatalogService,
	currencyService service.CurrencyService,
	cartService service.CartService,
	checkoutService service.CheckoutService,
	orderService service.OrderService,
	paymentService service.PaymentService,
	artistService service.ArtistService,
	sessionTTL time.Duration,
) *Server {
	e := echo.New()
	e.HideBanner = true

	log := logging.New("http")
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.Authenticate(authService))

	s := &Server{
		echo:            e,
		authHandler:     handler.NewAuthHandler(authService, sessionTTL),
		publicHandler:   handler.NewPublicHandler(catalogService, currencyService),
		customerHandler: handler.NewCustomerHandler(cartService, checkoutService, orderService, paymentService),
		artistHandler:   handler.NewArtistHandler(artistService, orderService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- auth --------
	api.POST("/register", s.authHandler.Register)
	api.POST("/login", s.authHandler.Login)
	api.POST("/logout", s.authHandler.Logout)

	// -------- public storefront --------
	api.GET("/home", s.publicHandler.Home)
	api.GET("/products", s.publicHandler.ListProducts)
	api.GET("/products/:id", s.publicHandler.GetProduct)
	api.GET("/categories/:name", s.publicHandler.ProductsByCategory)
	api.GET("/artists/:id", s.publicHandler.GetArtist)

	// -------- customer --------
	customer := api.Group("/customer", middleware.RequireRole(model.RoleCustomer))
	customer.GET("/cart", s.customerHandler.ViewCart)
	customer.POST("/cart/add/:productId", s.customerHandler.AddToCart)
	customer.POST("/cart/remove/:cartItemId", s.customerHandler.RemoveFromCart)
	customer.POST("/checkout", s.customerHandler.Checkout)
	customer.POST("/payment/checkout-url", s.customerHandler.PaymentCheckout)
	customer.GET("/payment/success", s.customerHandler.PaymentSuccess)
	customer.GET("/orders", s.customerHandler.ViewOrders)
	customer.GET("/orders/:id", s.customerHandler.GetOrder)

	// -------- artist back office --------
	artist := api.Group("/artist/manage", middleware.RequireRole(model.RoleArtist))
	artist.GET("/dashboard", s.artistHandler.Dashboard)
	artist.POST("/products/draft", s.artistHandler.DraftProduct)
	artist.POST("/products", s.artistHandler.CreateProduct)
	artist.POST("/orders/:id/status", s.artistHandler.UpdateOrderStatus)
	artist.POST("/profile", s.artistHandler.UpdateProfile)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
