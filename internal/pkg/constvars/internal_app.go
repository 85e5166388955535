package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
	CONTEXT_SESSION_ID_KEY ContextKey = "session_id"
	CONTEXT_USER_ID_KEY    ContextKey = "user_id"
)

const (
	SessionCookieName    = "session_id"
	SessionRedisPrefix   = "session:"
	SessionTTLInSeconds  = 86400
	BearerSchema         = "Bearer "
)

// Resource path segments served by the API
const (
	ResourceAuth     = "auth"
	ResourcePatients = "patients"
	ResourceReminder = "reminder"
)

// User roles
const (
	RoleUser         = "user"
	RoleAdmin        = "admin"
	RoleDentist      = "dentist"
	RoleReceptionist = "receptionist"
)

// Record planner statuses
const (
	PlannerStatusPlanned    = "planned"
	PlannerStatusInProgress = "in_progress"
	PlannerStatusCompleted  = "completed"
	PlannerStatusCancelled  = "cancelled"
)

const (
	DateOnlyFormat = "2006-01-02"
)
