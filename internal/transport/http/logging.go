package http

import (
	"encoding/json"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/travia-app/travia-backend/internal/domain"
)

func registerLogging(e *echo.Echo) {
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			userID := "anonymous"
			if user, ok := c.Get(contextUserKey).(*domain.User); ok && user != nil {
				userID = user.ID.String()
			}

			payload := struct {
				Time      string `json:"time"`
				UserID    string `json:"user_id"`
				Method    string `json:"method"`
				URI       string `json:"uri"`
				Status    int    `json:"status"`
				LatencyMS int64  `json:"latency_ms"`
				Error     string `json:"error,omitempty"`
			}{
				Time:      v.StartTime.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
				UserID:    userID,
				Method:    v.Method,
				URI:       v.URI,
				Status:    v.Status,
				LatencyMS: v.Latency.Milliseconds(),
			}
			if v.Error != nil {
				payload.Error = v.Error.Error()
			}

			line, err := json.Marshal(payload)
			if err != nil {
				return nil
			}
			log.Println(string(line))
			return nil
		},
	}))
}
