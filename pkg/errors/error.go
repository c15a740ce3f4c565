package errors

import (
	"bytes"
	"reflect"
	"strings"
)

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a generic bad input error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"

	// OrderInvalidFieldError is raised when a wire field of an order cannot be parsed.
	OrderInvalidFieldError ErrorCode = "order_invalid_field_error"
	// OrderRangeError is raised when a parsed order carries an out of range value
	// (non-positive size, missing price on a limit order).
	OrderRangeError ErrorCode = "order_range_error"

	// StreamIDParseError is raised when a stream entry id is not of the form <ms>-<seq>.
	StreamIDParseError ErrorCode = "stream_id_parse_error"

	// SnapshotDecodeError is raised when a stored snapshot is not a valid row array.
	SnapshotDecodeError ErrorCode = "snapshot_decode_error"

	// RedisConfigError represents an error when the Redis configuration is invalid or nil.
	RedisConfigError ErrorCode = "redis_config_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"
	// RedisDisconnectionError represents an error when disconnecting from Redis.
	RedisDisconnectionError ErrorCode = "redis_disconnection_error"
	// RedisPingError represents an error when pinging Redis.
	RedisPingError ErrorCode = "redis_pinging_error"
	// RedisHGetError represents an error when getting a field from a hash in Redis.
	RedisHGetError ErrorCode = "redis_hget_error"
	// RedisHSetError represents an error when setting fields in a hash in Redis.
	RedisHSetError ErrorCode = "redis_hset_error"
	// RedisSMembersError represents an error when reading the members of a set.
	RedisSMembersError ErrorCode = "redis_smembers_error"
	// RedisSubscribeError represents an error when subscribing to channels in Redis.
	RedisSubscribeError ErrorCode = "redis_subscribe_error"
	// RedisPublishError represents an error when publishing messages to channels in Redis.
	RedisPublishError ErrorCode = "redis_publish_error"
	// RedisXReadError represents an error when reading from a stream in Redis.
	RedisXReadError ErrorCode = "redis_xread_error"
	// RedisXAddError represents an error when appending to a stream in Redis.
	RedisXAddError ErrorCode = "redis_xadd_error"
	// RedisSAddError represents an error when adding members to a set in Redis.
	RedisSAddError ErrorCode = "redis_sadd_error"
)

// BaseError is an `error` type containing an array of ErrorDetails.
// Parsers collect one detail per offending field and return the whole set at once.
type BaseError struct {
	details []*ErrorDetails
}

// NewBaseError create BaseError with ErrorDetails
func NewBaseError(details ...*ErrorDetails) *BaseError {
	return &BaseError{details: details}
}

// AddErrorDetails add more ErrorDetails to BaseError
func (b *BaseError) AddErrorDetails(errors ...*ErrorDetails) {
	b.details = append(b.details, errors...)
}

// GetDetails get array ErrorDetails on BaseError
func (b *BaseError) GetDetails() []*ErrorDetails {
	return b.details
}

// HasDetails reports whether at least one detail was collected.
func (b *BaseError) HasDetails() bool {
	return b != nil && len(b.details) > 0
}

// OrNil returns the BaseError as an error when it carries details and nil otherwise,
// so a collector can be returned unconditionally at the end of a parse.
func (b *BaseError) OrNil() error {
	if !b.HasDetails() {
		return nil
	}
	return b
}

// Error implement error interface
func (b *BaseError) Error() string {
	buff := bytes.NewBufferString("")

	buff.WriteString("Error on\n")
	for _, err := range b.details {
		buff.WriteString("code: ")
		buff.WriteString(err.Code)
		buff.WriteString("; error: ")
		buff.WriteString(err.Error())
		buff.WriteString("; field: ")
		buff.WriteString(err.Field)
		buff.WriteString("; object: ")
		if err.Object != nil {
			buff.WriteString(reflect.TypeOf(err.Object).String())
		}
		buff.WriteString("\n")
	}

	return strings.TrimSpace(buff.String())
}

// Fields returns the field names of all details, in the order they were added.
func (b *BaseError) Fields() []string {
	fields := make([]string, 0, len(b.details))
	for _, d := range b.details {
		fields = append(fields, d.Field)
	}
	return fields
}

// ReplaceAllObjects set all object on ErrorDetails with given object
func (b *BaseError) ReplaceAllObjects(object interface{}) {
	for _, d := range b.GetDetails() {
		d.Object = object
	}
}

// IsAllCodeEqual check if all ErrorDetails code is equal with given code
func (b *BaseError) IsAllCodeEqual(code string) bool {
	if len(b.details) == 0 {
		return false
	}

	for _, d := range b.GetDetails() {
		if d.Code != code {
			return false
		}
	}
	return true
}

// IsAnyCodeEqual check if any ErrorDetails code is equal with given code
func (b *BaseError) IsAnyCodeEqual(code string) bool {
	for _, d := range b.GetDetails() {
		if d.Code == code {
			return true
		}
	}
	return false
}
