package constants

// Context keys shared between middleware and handlers
const (
	ContextKeyUserID = "user_id"
	ContextKeyUser   = "current_user"
)

// TokenHeader is the request header carrying the access token.
const TokenHeader = "x-access-token"

// Schema limits
const (
	MaxTitleLength = 20
	MaxBodyLength  = 100
)

// DefaultTokenTTLMinutes is the token lifetime used when TOKEN_TTL_MINUTES is unset.
const DefaultTokenTTLMinutes = 30
