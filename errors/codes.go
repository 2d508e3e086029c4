package errors

// ErrorCode is a stable machine-readable error identifier.
type ErrorCode string

const (
	ErrorCode_HTTP_OK              ErrorCode = "OK"
	ErrorCode_INTERNAL             ErrorCode = "INTERNAL"
	ErrorCode_INVALID_ARGUMENT     ErrorCode = "INVALID_ARGUMENT"
	ErrorCode_NOT_FOUND            ErrorCode = "NOT_FOUND"
	ErrorCode_PERMISSION_DENIED    ErrorCode = "PERMISSION_DENIED"
	ErrorCode_RATE_LIMITED         ErrorCode = "RATE_LIMITED"
	ErrorCode_INVITE_INVALID_TOKEN ErrorCode = "INVITE_INVALID_TOKEN"
	ErrorCode_INVITE_EXPIRED       ErrorCode = "INVITE_EXPIRED"
	ErrorCode_MEETING_NOT_FOUND    ErrorCode = "MEETING_NOT_FOUND"
	ErrorCode_MEETING_FINALIZED    ErrorCode = "MEETING_FINALIZED"
	ErrorCode_DB_QUERY_FAILED      ErrorCode = "DB_QUERY_FAILED"
)

// String returns the code as a string.
func (c ErrorCode) String() string {
	return string(c)
}
