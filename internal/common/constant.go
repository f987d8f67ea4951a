package common

// SessionCookieName is the cookie that carries the signed session token
// between the browser and the server. The name is part of the public
// contract with existing clients and must not change.
const SessionCookieName = "jwt"

// EnvProduction is the environment mode in which the session cookie is
// marked Secure. Any other mode is treated as development.
const EnvProduction = "production"
