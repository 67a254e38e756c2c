package http

import (
	"context"
	"errors"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/phoneshop-web/internal/client"
	"github.com/spec-kit/phoneshop-web/internal/notice"
	"github.com/spec-kit/phoneshop-web/internal/observability"
	"github.com/spec-kit/phoneshop-web/internal/session"
	apperrors "github.com/spec-kit/phoneshop-web/pkg/util"
)

// MiddlewareConfig bundles what the global middlewares need.
type MiddlewareConfig struct {
	Logger   *zap.Logger
	Metrics  *observability.Metrics
	Notices  notice.Builder
	Timeout  time.Duration
	Sessions *session.Manager
	Cookies  session.CookieOptions
}

// RegisterMiddlewares attaches global middlewares such as error handling, logging and session loading.
func RegisterMiddlewares(app *fiber.App, cfg MiddlewareConfig) {
	if cfg.Timeout > 0 {
		app.Use(requestTimeoutMiddleware(cfg.Timeout))
	}
	app.Use(observability.RequestLogger(cfg.Logger, cfg.Metrics))
	app.Use(errorHandlingMiddleware(cfg.Logger, cfg.Metrics, cfg.Notices))
	app.Use(session.Middleware(cfg.Sessions, cfg.Cookies))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics, notices notice.Builder) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				domainErr := toDomainError(err)
				metrics.RecordError(c.Path(), c.Method(), domainErr.Code)
				response := fiber.Map{"error": fiber.Map{
					"code":    domainErr.Code,
					"message": domainErr.Message,
				}}
				if len(domainErr.Details) > 0 {
					response["error"].(fiber.Map)["details"] = domainErr.Details
				}
				response["notice"] = notices.FromError(noticeSource(err, domainErr))
				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
				}
				c.Status(domainErr.HTTPStatus)
				_ = c.JSON(response)
				err = nil
			}
		}()
		return c.Next()
	}
}

// toDomainError folds upstream and framework errors into the taxonomy.
// Upstream 5xx surfaces as 502; upstream 4xx keeps its status.
func toDomainError(err error) *apperrors.DomainError {
	var httpErr *client.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.StatusCode >= 500 {
			return apperrors.NewDomainError("UPSTREAM_UNAVAILABLE", httpErr.Message, http.StatusBadGateway, nil)
		}
		return apperrors.NewDomainError("UPSTREAM_REJECTED", httpErr.Message, httpErr.StatusCode, nil)
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return apperrors.NewDomainError(codeForStatus(fiberErr.Code), fiberErr.Message, fiberErr.Code, nil)
	}
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) && errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewDomainError("UPSTREAM_TIMEOUT", "upstream request timed out", http.StatusGatewayTimeout, nil)
	}
	return apperrors.ToDomainError(err)
}

// noticeSource picks what the banner is built from: framework errors carry
// their message only once folded into a DomainError.
func noticeSource(err error, domainErr *apperrors.DomainError) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return domainErr
	}
	return err
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "VALIDATION_FAILED"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	default:
		if status >= 500 {
			return "INTERNAL_ERROR"
		}
		return "REQUEST_FAILED"
	}
}
