package transport

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Rogue-Bear-Innovations/starwars-back/internal/apierror"
	"github.com/Rogue-Bear-Innovations/starwars-back/internal/config"
	"github.com/Rogue-Bear-Innovations/starwars-back/internal/service"
)

type (
	CustomValidator struct {
		validator *validator.Validate
	}

	HTTPServer struct {
		e      *echo.Echo
		svc    *service.General
		logger *zap.SugaredLogger
	}
)

func NewHTTPServer(lc fx.Lifecycle, cfg *config.Config, svc *service.General, logger *zap.SugaredLogger) *HTTPServer {
	instance := New(svc, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				listen := cfg.ListenAddr()
				logger.Infow("Starting HTTP server.", "addr", listen)
				if err := instance.e.Start(listen); err != nil && err != http.ErrServerClosed {
					logger.Fatalw("shutting down the server", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server.")
			return instance.e.Shutdown(ctx)
		},
	})

	return instance
}

// New builds the router without binding a listener.
func New(svc *service.General, logger *zap.SugaredLogger) *HTTPServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.WARN)

	instance := HTTPServer{
		e:      e,
		svc:    svc,
		logger: logger,
	}

	e.Pre(middleware.RemoveTrailingSlash())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	}))
	e.Use(instance.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(instance.BodyLogger())
	e.Use(middleware.CORS())

	e.Validator = NewCustomValidator()
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.GET("/", instance.Sitemap)
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	personG := e.Group("/person")
	personG.GET("", instance.PersonList)
	personG.POST("", instance.PersonCreate)
	personG.GET("/:id", instance.PersonGet)
	personG.PUT("/:id", instance.PersonUpdate)
	personG.DELETE("/:id", instance.PersonDelete)

	planetG := e.Group("/planet")
	planetG.GET("", instance.PlanetList)
	planetG.POST("", instance.PlanetCreate)
	planetG.GET("/:id", instance.PlanetGet)
	planetG.PUT("/:id", instance.PlanetUpdate)
	planetG.DELETE("/:id", instance.PlanetDelete)

	favoriteG := e.Group("/favorites")
	favoriteG.POST("", instance.FavoriteCreate)
	favoriteG.DELETE("/:id", instance.FavoriteDelete)

	userG := e.Group("/users")
	userG.GET("", instance.UserList)
	userG.POST("", instance.UserCreate)
	userG.GET("/:id", instance.UserGet)
	userG.GET("/:id/favorites", instance.UserFavorites)

	return &instance
}

func (s *HTTPServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.e.ServeHTTP(w, r)
}

func (s *HTTPServer) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []interface{}{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				s.logger.Warnw("request failed", append(fields, "error", v.Error)...)
				return nil
			}
			s.logger.Infow("request", fields...)
			return nil
		},
	})
}

// BodyLogger dumps request bodies at debug level with passwords censored.
func (s *HTTPServer) BodyLogger() echo.MiddlewareFunc {
	return middleware.BodyDumpWithConfig(middleware.BodyDumpConfig{
		Skipper: func(c echo.Context) bool {
			return !s.logger.Desugar().Core().Enabled(zapcore.DebugLevel)
		},
		Handler: func(c echo.Context, reqBody, resBody []byte) {
			if len(reqBody) == 0 {
				return
			}
			s.logger.Debugw("request body",
				"method", c.Request().Method,
				"path", c.Path(),
				"body", string(censorBody(reqBody)),
			)
		},
	})
}

////////

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func BindAndValidate(c echo.Context, v interface{}) error {
	if err := c.Bind(v); err != nil {
		return apierror.BadRequest("invalid request body")
	}
	if err := c.Validate(v); err != nil {
		return apierror.BadRequest(validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return err.Error()
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func GetParam(c echo.Context, name string) (string, error) {
	value := c.Param(name)
	if value == "" {
		return "", apierror.BadRequest(fmt.Sprintf("invalid path param '%s'", name))
	}
	return value, nil
}

// GetAndParseParam parses a numeric id param. Ids beyond the range of the
// storage integer columns cannot name a row, so they yield notFound.
func GetAndParseParam(c echo.Context, name, notFound string) (uint64, error) {
	v, e := GetParam(c, name)
	if e != nil {
		return 0, e
	}
	vv, e := strconv.ParseUint(v, 10, 63)
	if e != nil {
		if errors.Is(e, strconv.ErrRange) {
			return 0, apierror.NotFound(notFound)
		}
		return 0, apierror.BadRequest(fmt.Sprintf("invalid path param '%s'", name))
	}
	return vv, nil
}
