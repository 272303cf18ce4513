package server

import (
	"errors"
	"fmt"
	"net/http"

	"shopping-backend/internal/apperr"
	"shopping-backend/internal/auth"
	"shopping-backend/internal/handler"
	mw "shopping-backend/internal/middleware"
	"shopping-backend/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Server struct {
	echo           *echo.Echo
	userHandler    *handler.UserHandler
	productHandler *handler.ProductHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
}

func NewServer(
	log *zap.Logger,
	tokens auth.TokenProvider,
	userService service.UserService,
	productService service.ProductService,
	cartService service.CartService,
	orderService service.OrderService,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpErrorHandler(log)

	e.Use(requestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:           e,
		userHandler:    handler.NewUserHandler(userService),
		productHandler: handler.NewProductHandler(productService),
		cartHandler:    handler.NewCartHandler(cartService),
		orderHandler:   handler.NewOrderHandler(orderService),
	}

	s.setupRoutes(tokens)
	return s
}

func (s *Server) setupRoutes(tokens auth.TokenProvider) {
	s.echo.GET("/api/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	s.echo.POST("/login/token", s.userHandler.Login)
	s.echo.GET("/products", s.productHandler.GetProducts)

	authRequired := mw.AuthMiddleware(tokens)

	cart := s.echo.Group("/cart", authRequired)
	cart.POST("/items", s.cartHandler.AddItem)
	cart.GET("/items", s.cartHandler.GetItems)
	cart.PATCH("/items/:id", s.cartHandler.UpdateQuantity)
	cart.DELETE("/items/:id", s.cartHandler.RemoveItem)

	order := s.echo.Group("/order", authRequired)
	order.POST("", s.orderHandler.PlaceOrder)
	order.GET("/history", s.orderHandler.GetOrderHistory)
	order.GET("/:id", s.orderHandler.GetOrderDetail)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}

// httpErrorHandler maps application errors to their status with a
// {code, message} body; anything unrecognized becomes a plain 500.
func httpErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			if appErr.Status >= http.StatusInternalServerError {
				log.Error("request failed", zap.String("code", appErr.Code), zap.Error(err))
			}
			_ = c.JSON(appErr.Status, appErr)
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			_ = c.JSON(httpErr.Code, map[string]string{
				"code":    http.StatusText(httpErr.Code),
				"message": fmt.Sprint(httpErr.Message),
			})
			return
		}

		log.Error("unhandled error", zap.Error(err))
		_ = c.JSON(http.StatusInternalServerError, map[string]string{
			"code":    "INTERNAL",
			"message": "internal server error",
		})
	}
}

func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
			)
			return nil
		},
	})
}
