// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis session cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for session cache entries.
const AuthCacheTTL = 10 * time.Minute

// OAuthStatePrefix is the prefix for pending OAuth state keys.
const OAuthStatePrefix = "oauthState:"

// OAuthStateTTL bounds how long an OAuth login attempt stays valid.
const OAuthStateTTL = 5 * time.Minute
