package shared

import (
	"context"
	"fmt"
	"hash/fnv"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"galerij/shared/cache"
	"galerij/shared/constant"
	"galerij/shared/dto"
	"galerij/shared/failure"
	"galerij/shared/timezone"

	"github.com/rs/zerolog/log"
)

// TransformFields converts every db-tagged field of a struct into an update map. Zero and nil
// values are kept so the update overwrites the whole row; nil pointers are written as NULL.
func TransformFields(data any) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		updatedFields[fieldName] = val.Field(index).Interface()
	}

	updatedFields[constant.FieldUpdatedAt] = timezone.Now()

	return updatedFields
}

// ParseID parses a path id. Anything but a positive integer is rejected with a 400.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, failure.InvalidIDParam
	}

	return id, nil
}

func FilterByID(id int64, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins the prefix and parts with colons, e.g. "artwork:get:12".
func BuildCacheKey(prefix string, parts ...any) string {
	key := strings.Builder{}
	key.WriteString(prefix)

	for _, part := range parts {
		key.WriteString(":")
		key.WriteString(fmt.Sprint(part))
	}

	return key.String()
}

// BuildCacheKeyWithQuery derives a stable key from paging and filter values. Filter
// arguments are hashed in sorted order so equal filters share a key.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}

	slices.Sort(names)

	hash := fnv.New64a()
	_, _ = hash.Write([]byte(where))

	for _, name := range names {
		_, _ = fmt.Fprintf(hash, "|%s=%v", name, args[name])
	}

	return BuildCacheKey(prefix, params.Page, params.Limit, fmt.Sprintf("%x", hash.Sum64()))
}

// CacheGeneration reads the generation counters a cached value depends on and folds them into
// a key part. ok is false when a counter cannot be read; callers then bypass the cache.
func CacheGeneration(ctx context.Context, redisCache cache.RedisCache, keys ...string) (string, bool) {
	tag := strings.Builder{}
	tag.WriteString("g")

	for i, key := range keys {
		gen, err := redisCache.Counter(ctx, key)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache generation unavailable, bypassing cache")

			return "", false
		}

		if i > 0 {
			tag.WriteString(".")
		}

		tag.WriteString(strconv.FormatInt(gen, 10))
	}

	return tag.String(), true
}

// BumpGenerations advances generation counters so values cached under an earlier generation are
// never read again, including values saved by reads that raced the write. Failures are logged
// only; such values live until their TTL.
func BumpGenerations(ctx context.Context, redisCache cache.RedisCache, keys ...string) {
	for _, key := range keys {
		if _, err := redisCache.Incr(ctx, key, 0); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to bump cache generation")
		}
	}
}
