package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingPatientIDKey       = "patient_id"
	LoggingSpecificationIDKey = "specification_id"
	LoggingResourceKey        = "resource"
	LoggingResourceIDKey      = "resource_id"
	LoggingGroupIDKey         = "group_id"
	LoggingURLKey             = "url"
	LoggingMethodKey          = "method"
	LoggingEndpointKey        = "endpoint"
	LoggingRemoteAddrKey      = "remote_addr"
	LoggingUserAgentKey       = "user_agent"
	LoggingQueryKey           = "query"
	LoggingStatusCodeKey      = "status_code"
	LoggingDurationKey        = "duration"
	LoggingSuccessKey         = "success"
	LoggingCountKey           = "count"
	LoggingCacheKey           = "cache_key"
	LoggingCacheTagKey        = "cache_tag"
	LoggingSessionStateKey    = "session_state"
	LoggingQueueKey           = "queue"
	LoggingObjectNameKey      = "object_name"
	LoggingExportFormatKey    = "export_format"
	LoggingOperationKey       = "operation"
	LoggingErrorTypeKey       = "error_type"
)
