package common

// APIKeyHeaderName is the HTTP header used to carry the fixed identification
// key on every outbound request to the directory service.
const APIKeyHeaderName = "x-api-key"

// RequestIDHeaderName carries a per-request correlation id, useful when
// matching client logs against service logs.
const RequestIDHeaderName = "X-Request-Id"
