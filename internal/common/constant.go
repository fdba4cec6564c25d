package common

// AuthorizationHeaderName is the HTTP header used to carry the bearer token
// on outbound requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName carries the client-generated correlation id so backend
// logs can be matched with console logs.
const RequestIDHeaderName = "X-Request-ID"
