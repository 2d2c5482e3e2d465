// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// AuthRevokedPrefix marks tokens signed out before their natural expiry.
const AuthRevokedPrefix = "auth:revoked:"

// TokenTTL is the lifetime of issued access tokens; revocation marks
// live at least this long so a signed-out token can never resurface.
const TokenTTL = 72 * time.Hour

// VenueCachePrefix is the prefix for cached venue catalog listings.
const VenueCachePrefix = "venues:"

// VenueCacheTTL is the time-to-live for cached venue listings.
const VenueCacheTTL = 5 * time.Minute
