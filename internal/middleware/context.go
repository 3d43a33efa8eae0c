package middleware

// Context keys used to store per-request metadata.
const (
	ContextKeyRequestID = "request_id"
	ContextKeyClientID  = "client_id"
)

const (
	headerRequestID = "X-Request-ID"
	headerClientID  = "X-Client-ID"
)
