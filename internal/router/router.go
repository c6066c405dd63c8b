package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"anylist/internal/auth"
	"anylist/internal/config"
	apperrors "anylist/internal/errors"
	"anylist/internal/handler"
	"anylist/internal/model"
	"anylist/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	itemHandler *handler.ItemHandler,
	listHandler *handler.ListHandler,
	listItemHandler *handler.ListItemHandler,
	userHandler *handler.UserHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/seed", seedHandler.Run)

	// Secured routes: echo-jwt checks signature and expiry, LoadUser resolves
	// the subject to an active account and attaches it to the context.
	secured := api.Group("",
		echojwt.WithConfig(jwtConfig(cfg.JWTSecret)),
		auth.LoadUser(authService),
	)

	secured.GET("/auth/revalidate", authHandler.Revalidate, auth.RequireRoles(model.RoleAdmin))

	// Item routes
	secured.POST("/items", itemHandler.Create)
	secured.GET("/items", itemHandler.List)
	secured.GET("/items/:id", itemHandler.Get)
	secured.PUT("/items/:id", itemHandler.Update)
	secured.DELETE("/items/:id", itemHandler.Remove)

	// List routes
	secured.POST("/lists", listHandler.Create)
	secured.GET("/lists", listHandler.List)
	secured.GET("/lists/:id", listHandler.Get)
	secured.PUT("/lists/:id", listHandler.Update)
	secured.DELETE("/lists/:id", listHandler.Remove)
	secured.GET("/lists/:id/items", listHandler.Items)

	// List entry routes
	secured.POST("/list-items", listItemHandler.Create)
	secured.GET("/list-items/:id", listItemHandler.Get)
	secured.PUT("/list-items/:id", listItemHandler.Update)

	// Administrative user routes
	admins := secured.Group("/users", auth.RequireRoles(model.RoleAdmin, model.RoleSuperUser))
	admins.GET("", userHandler.List)
	admins.GET("/:id", userHandler.Get)
	admins.PUT("/:id", userHandler.Update)
	admins.POST("/:id/block", userHandler.Block)
	admins.GET("/:id/items", userHandler.Items)
	admins.GET("/:id/lists", userHandler.Lists)
}

// jwtConfig builds the echo-jwt middleware configuration. Token failures
// (missing, malformed, expired) are rewritten into the shared error envelope
// so every 401 looks the same to the caller.
func jwtConfig(secret string) echojwt.Config {
	return echojwt.Config{
		SigningKey: []byte(secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		TokenLookup: "header:" + echo.HeaderAuthorization,
		ErrorHandler: func(c echo.Context, err error) error {
			he := apperrors.MapErrorToHTTP(apperrors.ErrUnauthenticated)
			return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
		},
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
