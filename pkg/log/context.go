package log

type contextKey string

// RequestIDKey is the context key under which middleware stores the
// per-request id; the logger attaches it to every line when present.
const RequestIDKey contextKey = "request_id"
