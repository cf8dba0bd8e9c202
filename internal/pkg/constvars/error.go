package constvars

// Client messages
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientBackendUnavailable            = "care backend is unavailable, please try again"
	ErrClientResourceNotFound              = "%s not found"
	ErrClientForbidden                     = "you are not allowed to perform this action"
	ErrClientFailedToLoadSpecification     = "failed to load specification"
	ErrClientFailedToExport                = "failed to export specification periods"
	ErrClientUnsupportedExportFormat       = "export format must be one of [xlsx, pdf]"
)

// Dev messages
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevCreateHTTPRequest          = "failed to create HTTP request"
	ErrDevSendHTTPRequest            = "failed to send HTTP request"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevURLParamIDValidationFailed = "url param %s validation failed"
	ErrDevAuthTokenMissing           = "authorization token missing"
	ErrDevAuthTokenInvalidOrExpired  = "authorization token invalid or expired"
	ErrDevAuthRefreshFailed          = "token refresh against care backend failed"
	ErrDevSessionState               = "session in state %s cannot perform %s"
	ErrDevCareResourceNotFound       = "%s not found on care backend"
	ErrDevCareForbidden              = "care backend denied access to %s"
	ErrDevCareValidation             = "care backend rejected %s payload"
	ErrDevCareUnexpectedStatus       = "care backend returned unexpected status %d for %s"
	ErrDevCareDecodeResponse         = "failed to decode %s response from care backend"
	ErrDevLoadSpecification          = "failed to load specification"
	ErrDevCompensationFailed         = "compensating delete of %s %s failed"
	ErrDevRedisSetData               = "failed to set data in redis"
	ErrDevRedisGetData               = "failed to get data from redis"
	ErrDevRedisDelete                = "failed to delete data in redis"
	ErrDevRedisSAdd                  = "failed to add members to redis set"
	ErrDevRedisSMembers              = "failed to get redis set members"
	ErrDevRabbitMQPublish            = "failed to publish message to queue %s"
	ErrDevMinioPutObject             = "failed to upload object %s to minio"
	ErrDevMinioPresignObject         = "failed to presign object %s"
	ErrDevBuildExport                = "failed to build %s export"
	ErrDevUnsupportedExportFormat    = "unsupported export format %s"
)
