package utils

import "time"

// AdminCookieName is the session-marker cookie checked by the route guard.
// Its value is the literal string "true" for an authenticated admin session;
// anything else denies protected access. The cookie is a shallow marker only,
// real authorization is re-validated against the admin record on every request.
const AdminCookieName = "adminData"

// SessionFlagPrefix is the Redis key prefix for persisted session flags
// (isAuthenticated / adminRole / adminUid).
const SessionFlagPrefix = "sessionFlags:"

// SessionTokenPrefix is the Redis key prefix for live session-token hashes.
const SessionTokenPrefix = "sessionToken:"

// SessionFlagTTL bounds how long persisted flags outlive their last refresh.
const SessionFlagTTL = 24 * time.Hour
