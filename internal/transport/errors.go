package transport

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Rogue-Bear-Innovations/starwars-back/internal/apierror"
)

// ErrorHandler renders every error returned by handlers as
// {"message": ..., "status_code": ...}.
func ErrorHandler(logger *zap.SugaredLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		resp := apierror.New(http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		var he *echo.HTTPError
		if apiErr, ok := apierror.From(err); ok {
			resp = apiErr
		} else if errors.As(err, &he) {
			resp = apierror.New(fmt.Sprint(he.Message), he.Code)
		} else {
			logger.Errorw("unhandled error", "error", err, "method", c.Request().Method, "path", c.Path())
		}

		var sendErr error
		if c.Request().Method == http.MethodHead {
			sendErr = c.NoContent(resp.StatusCode)
		} else {
			sendErr = c.JSON(resp.StatusCode, resp)
		}
		if sendErr != nil {
			logger.Errorw("write error response", "error", sendErr)
		}
	}
}
