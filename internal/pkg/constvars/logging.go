package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingUserIDKey       = "user_id"
	LoggingPatientIDKey    = "patient_id"
	LoggingPatientCountKey = "patient_count"
	LoggingVisitIDKey      = "visit_id"
	LoggingPlannerIDKey    = "planner_id"
	LoggingSessionIDKey    = "session_id"
	LoggingQueueKey        = "queue"
	LoggingBucketKey       = "bucket"
	LoggingObjectKey       = "object_name"
)
