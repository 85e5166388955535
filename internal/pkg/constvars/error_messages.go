package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"datetime": "must match the date format %s",
	"password": "must be at least 8 characters long",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"gt":       true,
	"gte":      true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already registered"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientBiodataNotFound               = "patient biodata not found"
	ErrClientBiodataAlreadyExists          = "biodata already exists for this patient"
	ErrClientVisitNotFound                 = "visit not found"
	ErrClientPlannerNotFound               = "record planner not found"
	ErrClientPictureNotFound               = "intraoral picture not found"
	ErrClientXRayNotFound                  = "x-ray not found"
	ErrClientUserNotFound                  = "user not found"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"
)

// Error messages for developers
const (
	ErrDevValidationFailed         = "request validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseTime          = "cannot parse time into the given format"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevInvalidURLParam          = "invalid value for URL param %s"
	ErrDevServerProcess            = "server cannot process the request"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded while processing"

	ErrDevFailedToHashPassword      = "failed to hash the given password"
	ErrDevInvalidCredentials        = "credentials do not match any user"
	ErrDevEmailAlreadyExists        = "user with the given email already exists"
	ErrDevUserNotExists             = "user with the given identifier does not exist"
	ErrDevAuthTokenMissing          = "no session cookie or bearer token attached to request"
	ErrDevAuthTokenInvalid          = "token cannot be parsed or verified"
	ErrDevAuthTokenInvalidOrExpired = "token is invalid or already expired"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthSigningMethod         = "unexpected token signing method"
	ErrDevAuthInvalidSession        = "session id does not resolve to an active session"

	ErrDevDBFailedToFindData    = "postgres failed to find data"
	ErrDevDBFailedToInsertData  = "postgres failed to insert data"
	ErrDevDBFailedToUpdateData  = "postgres failed to update data"
	ErrDevDBFailedToDeleteData  = "postgres failed to delete data"
	ErrDevDBFailedToIterateRows = "postgres failed to iterate result rows"

	ErrDevRedisGetNoData = "redis failed to get data with key: %s"
	ErrDevRedisGetData   = "redis failed to get data"
	ErrDevRedisSetData   = "redis failed to set data"
	ErrDevRedisDelete    = "redis failed to delete data"

	ErrDevRabbitMQPublish = "rabbitmq failed to publish message to queue %s"
	ErrDevRabbitMQConsume = "rabbitmq failed to consume from queue %s"

	ErrDevMinioFailedToCreateObject = "minio failed to create object in bucket %s"
	ErrDevMinioFailedToPresignURL   = "minio failed to presign object URL in bucket %s"
	ErrDevMinioFailedToRemoveObject = "minio failed to remove object in bucket %s"

	ErrDevSMTPSendEmail = "smtp failed to send email via host %s"

	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"
	ErrDevDecodeResponse    = "failed to decode %s response body"

	ErrDevPatientNotFound        = "patient with the given id does not exist"
	ErrDevBiodataNotFound        = "biodata for the given patient does not exist"
	ErrDevBiodataAlreadyExists   = "biodata for the given patient already exists"
	ErrDevVisitNotFound          = "visit with the given id does not exist"
	ErrDevPlannerNotFound        = "record planner with the given id does not exist"
	ErrDevPictureNotFound        = "intraoral picture with the given id does not exist"
	ErrDevXRayNotFound           = "x-ray with the given id does not exist"
	ErrDevImageValidationFailed  = "image did not pass validation"
	ErrDevSessionNotFound        = "session not found or already expired"
	ErrDevSessionCookieMissing   = "session cookie not found on request"
	ErrDevPatientOwnerMismatch   = "patient does not belong to the session user"
	ErrDevReminderWindowNegative = "reminder lookahead window must be positive"
)
