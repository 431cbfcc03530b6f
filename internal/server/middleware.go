package server

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lgbarn/fenboard-go/internal/config"
)

// RequestIDHeader carries the request id on requests and responses.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "requestID"

// RequestID tags every request with an id. A well-formed id supplied by the
// client is kept, otherwise a new UUID is generated.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}

		c.Locals(requestIDKey, id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID, or "".
func GetRequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(requestIDKey).(string)
	return id
}

// RequestLogger writes one line per request to cfg.LogFile.
func RequestLogger(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		if cfg.Verbosity > 0 {
			status := c.Response().StatusCode()
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else if err != nil {
				status = fiber.StatusInternalServerError
			}
			fmt.Fprintf(cfg.LogFile, "%s %s %s %d %s\n",
				GetRequestID(c), c.Method(), c.Path(), status, time.Since(start))
		}
		return err
	}
}
