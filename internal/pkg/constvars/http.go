package constvars

const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodPatch  = "PATCH"
	MethodDelete = "DELETE"
)

const (
	MIMEApplicationJSON = "application/json"
	MIMEApplicationXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MIMEApplicationPDF  = "application/pdf"
	MIMETextPlain       = "text/plain; charset=utf-8"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusNoContent           = 204
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusUnprocessableEntity = 422
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAuthorization      = "Authorization"
	HeaderContentType        = "Content-Type"
	HeaderContentDisposition = "Content-Disposition"
	HeaderAccept             = "Accept"
	HeaderXRequestID         = "X-Request-ID"
	HeaderXAccessToken       = "X-Access-Token"
)

const (
	BearerPrefix       = "Bearer "
	CookieRefreshToken = "refreshToken"
)
