package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const problem500 = `{"title":"Internal Server Error","status":500,"detail":"internal server error"}`

func TestRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		method    string
		path      string
		requestID string
		handler   echo.HandlerFunc
		wantCode  int
		wantJSON  string
		wantLog   []string
	}{
		{
			name:   "no panic passes the response through",
			method: http.MethodGet,
			path:   "/api/v1/products",
			handler: func(c echo.Context) error {
				return c.JSON(http.StatusOK, map[string]int{"total": 3})
			},
			wantCode: http.StatusOK,
			wantJSON: `{"total":3}`,
		},
		{
			name:   "string panic becomes problem details",
			method: http.MethodGet,
			path:   "/api/v1/products",
			handler: func(echo.Context) error {
				panic("fixture corrupted")
			},
			wantCode: http.StatusInternalServerError,
			wantJSON: problem500,
			wantLog:  []string{"panic recovered", "fixture corrupted", "path=/api/v1/products", "method=GET"},
		},
		{
			name:   "non-string panic becomes problem details",
			method: http.MethodPost,
			path:   "/api/v1/products/brands",
			handler: func(echo.Context) error {
				panic(42)
			},
			wantCode: http.StatusInternalServerError,
			wantJSON: problem500,
			wantLog:  []string{"panic recovered", "error=42", "method=POST", "path=/api/v1/products/brands"},
		},
		{
			name:      "request id is logged with the panic",
			method:    http.MethodGet,
			path:      "/api/v1/products/categories",
			requestID: "req-42",
			handler: func(echo.Context) error {
				panic("catalog unavailable")
			},
			wantCode: http.StatusInternalServerError,
			wantJSON: problem500,
			wantLog:  []string{"panic recovered", "request_id=req-42", "status=500"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			e := echo.New()
			e.Use(RequestLog(logger), Recovery(logger))
			e.Add(tt.method, tt.path, tt.handler)

			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			if tt.requestID != "" {
				req.Header.Set(requestIDHeader, tt.requestID)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
			assert.JSONEq(t, tt.wantJSON, rec.Body.String())

			logs := buf.String()
			if len(tt.wantLog) == 0 {
				assert.NotContains(t, logs, "panic recovered")
			}
			for _, want := range tt.wantLog {
				assert.Contains(t, logs, want)
			}
		})
	}
}
