package routers

import (
	"carehome-service/internal/app/config"
	"carehome-service/internal/app/delivery/http/controllers"
	"carehome-service/internal/app/delivery/http/middlewares"
	"carehome-service/internal/app/services/core/inventory"
	"carehome-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func authorized(req *http.Request) *http.Request {
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+"staff-token")
	return req
}

func TestSetupRoutes(t *testing.T) {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:                    "1.2.3",
			FrontendDomain:             "http://dashboard.local",
			EndpointPrefix:             "/api/v1",
			MaxRequests:                100,
			MaxTimeRequestsPerSeconds:  60,
			RequestBodyLimitInMegabyte: 1,
		},
	}

	router := chi.NewRouter()
	SetupRoutes(router, internalConfig,
		middlewares.NewMiddlewares(logger, new(MockAuthenticator), internalConfig),
		controllers.NewAuthController(logger, nil),
		controllers.NewPatientController(logger, nil),
		controllers.NewInventoryController(logger, inventory.NewInventoryUsecase(nil, nil, nil, logger)),
		controllers.NewDiagnosisController(logger, nil),
		controllers.NewReserveController(logger, nil),
		controllers.NewSpecificationController(logger, new(MockSpecificationUsecase)),
		controllers.NewCombinationController(logger, nil),
		controllers.NewNotificationController(logger, nil),
	)

	t.Run("Health check answers with the version", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rr.Code, "Expected status OK")
		assert.Contains(t, rr.Body.String(), "1.2.3")
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Metrics are exposed", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rr.Code, "Expected status OK")
	})

	t.Run("Patient routes require a token", func(t *testing.T) {
		for _, path := range []string{"/api/v1/patients", "/api/v1/patients/p1/specifications/active", "/api/v1/notifications"} {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusUnauthorized, rr.Code, "Expected status Unauthorized for %s", path)
		}
	})

	t.Run("Unknown inventory kind is rejected before the usecase", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/patients/p1/inventory/syringes", nil)))

		assert.Equal(t, http.StatusBadRequest, rr.Code, "Expected status Bad Request")
	})

	t.Run("Panicking handler is answered with 500", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)))

		assert.Equal(t, http.StatusInternalServerError, rr.Code, "Expected status Internal Server Error")
	})
}
