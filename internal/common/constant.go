package common

// AuthorizationHeaderName is the HTTP header used to carry the session
// token id on authorized requests. The token id is sent raw, with no
// "Bearer " prefix.
const AuthorizationHeaderName = "Authorization"
