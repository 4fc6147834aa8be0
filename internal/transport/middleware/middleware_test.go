package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/KunjShah95/gearguard/internal/transport/middleware"
)

func TestMiddleware(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Transport Middleware Suite")
}

var _ = Describe("RequestID", func() {
	var handler http.Handler

	BeforeEach(func() {
		handler = middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
	})

	It("should generate a trace id when the request carries none", func() {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		Expect(rec.Header().Get("X-Trace-ID")).ToNot(BeEmpty())
	})

	It("should echo a trace id supplied by the caller", func() {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Trace-ID", "trace-abc-123")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		Expect(rec.Header().Get("X-Trace-ID")).To(Equal("trace-abc-123"))
	})
})

var _ = Describe("LoggingMiddleware", func() {
	var (
		logOutput *bytes.Buffer
		handler   http.Handler
	)

	BeforeEach(func() {
		logOutput = &bytes.Buffer{}
		logger := slog.New(slog.NewJSONHandler(logOutput, nil))

		handler = middleware.LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"req-1"}`))
		}))
	})

	It("should filter sensitive fields out of the logged request body", func() {
		body := strings.NewReader(`{"email":"admin@gearguard.local","password":"hunter2"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
		req.Header.Set("Authorization", "Bearer secret-token")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		logged := logOutput.String()
		Expect(logged).To(ContainSubstring("[FILTERED]"))
		Expect(logged).ToNot(ContainSubstring("hunter2"))
		Expect(logged).ToNot(ContainSubstring("secret-token"))
		Expect(logged).To(ContainSubstring("admin@gearguard.local"))
	})

	It("should leave the request body readable for the next handler", func() {
		var seenBody string
		inner := middleware.LoggingMiddleware(slog.New(slog.NewJSONHandler(logOutput, nil)))(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				buf := &bytes.Buffer{}
				buf.ReadFrom(r.Body)
				seenBody = buf.String()
			}))

		req := httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(`{"subject":"leak"}`))
		inner.ServeHTTP(httptest.NewRecorder(), req)

		Expect(seenBody).To(Equal(`{"subject":"leak"}`))
	})

	It("should log the response status", func() {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		Expect(rec.Code).To(Equal(http.StatusCreated))
		Expect(logOutput.String()).To(ContainSubstring(`"status_code":201`))
	})
})
