package common

// AuthorizationHeaderName is the HTTP header used to carry the bearer
// credential on requests to protected endpoints.
const AuthorizationHeaderName = "Authorization"

// BearerSchemePrefix precedes the token value in the Authorization header.
const BearerSchemePrefix = "Bearer "

// BearerChallenge is the value of the WWW-Authenticate header returned with
// every 401 response, as required by the bearer token scheme.
const BearerChallenge = "Bearer"
