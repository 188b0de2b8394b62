package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// RequestIDHeaderName is the gRPC metadata key an upstream caller may use
// to propagate its own request id.
const RequestIDHeaderName = "x-request-id"
