package exceptions

import (
	"carehome-service/internal/pkg/constvars"
	"errors"
	"fmt"
)

var (
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}

	// Session
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrRefreshFailed = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthRefreshFailed)
	}
	ErrInvalidUsernameOrPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidUsernameOrPassword, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrSessionState = func(state, operation string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, fmt.Sprintf(constvars.ErrDevSessionState, state, operation))
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientBackendUnavailable, constvars.ErrDevSendHTTPRequest)
	}

	// Care backend
	ErrCareResourceNotFound = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, fmt.Sprintf(constvars.ErrClientResourceNotFound, resource), fmt.Sprintf(constvars.ErrDevCareResourceNotFound, resource))
	}
	ErrCareForbidden = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientForbidden, fmt.Sprintf(constvars.ErrDevCareForbidden, resource))
	}
	ErrCareValidation = func(err error, resource string) *CustomError {
		clientMessage := constvars.ErrClientCannotProcessRequest
		if err != nil && err.Error() != "" {
			clientMessage = err.Error()
		}
		return BuildNewCustomError(err, constvars.StatusBadRequest, clientMessage, fmt.Sprintf(constvars.ErrDevCareValidation, resource))
	}
	ErrCareUnexpectedStatus = func(err error, statusCode int, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevCareUnexpectedStatus, statusCode, resource))
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevCareDecodeResponse, resource))
	}
	ErrCompensationFailed = func(err error, resource, resourceID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevCompensationFailed, resource, resourceID))
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}
	ErrRedisAddToSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSAdd)
	}
	ErrRedisGetSetMembers = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSMembers)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublish, queueName))
	}

	// Minio
	ErrMinioPutObject = func(err error, objectName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientFailedToExport, fmt.Sprintf(constvars.ErrDevMinioPutObject, objectName))
	}
	ErrMinioPresignObject = func(err error, objectName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientFailedToExport, fmt.Sprintf(constvars.ErrDevMinioPresignObject, objectName))
	}

	// Specification
	ErrBuildExport = func(err error, format string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientFailedToExport, fmt.Sprintf(constvars.ErrDevBuildExport, format))
	}
	ErrUnsupportedExportFormat = func(format string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientUnsupportedExportFormat, fmt.Sprintf(constvars.ErrDevUnsupportedExportFormat, format))
	}
)

// ErrLoadSpecification keeps the status code of the underlying failure so a
// missing specification still reads as 404 and an expired session as 401.
func ErrLoadSpecification(err error) *CustomError {
	statusCode := constvars.StatusBadGateway
	var customErr *CustomError
	if errors.As(err, &customErr) {
		statusCode = customErr.StatusCode
	}
	return BuildNewCustomError(err, statusCode, constvars.ErrClientFailedToLoadSpecification, constvars.ErrDevLoadSpecification)
}

// StatusCodeOf returns the HTTP status carried by err, or 0 when err is not a CustomError.
func StatusCodeOf(err error) int {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode
	}
	return 0
}
