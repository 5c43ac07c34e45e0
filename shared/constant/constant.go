package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamPage   = "page"
	RequestParamLimit  = "limit"
	RequestParamSearch = "q"
)

const (
	RequestParamID     = "id"
	RequestParamUserID = "userId"
)

const (
	FieldUpdatedAt = "updated_at"
)

const (
	DateFormat = time.RFC3339
)

const (
	// TextSearchConfig must match the expression of the artworks search index.
	TextSearchConfig = "simple"
)

const (
	CacheKeyArtworkGet     = "artwork:get"
	CacheKeyArtworkGetAll  = "artwork:get_all"
	CacheKeyFavoriteGetAll = "favorite:get_all"

	// Generation counters; cache keys embed their current values.
	CacheKeyArtworkGeneration  = "artwork:gen"
	CacheKeyFavoriteGeneration = "favorite:gen"
)

const (
	EventArtworkCreated = "artwork.created"
	EventArtworkUpdated = "artwork.updated"
	EventArtworkDeleted = "artwork.deleted"
	EventCommentCreated = "comment.created"
	EventFavoriteAdded  = "favorite.added"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
	OtelKafkaScopeName    = "kafka"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderContentLength      = "Content-Length"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON        = "application/json"
	ContentTypeOctetStream = "application/octet-stream"
)

const (
	StaticPathPrefix = "/artwork"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorArtworkNotFound      = "Artwork not found"
	ResponseMessageOK                 = "OK"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)
