package errors

// ErrorCode identifies an application error category.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS   ErrorCode = 1003
	ErrorCode_VALIDATION       ErrorCode = 1004

	// Language-understanding gateway
	ErrorCode_AI_EXTRACTION_FAILED   ErrorCode = 2000
	ErrorCode_AI_EMBEDDING_FAILED    ErrorCode = 2001
	ErrorCode_AI_SUMMARY_FAILED      ErrorCode = 2002
	ErrorCode_AI_SERVICE_UNAVAILABLE ErrorCode = 2003

	// Database
	ErrorCode_DB_QUERY_FAILED         ErrorCode = 3000
	ErrorCode_DB_CONSTRAINT_VIOLATION ErrorCode = 3001

	// Pipeline
	ErrorCode_PROCESSING_FAILED ErrorCode = 4000
	ErrorCode_MISSING_QUERY     ErrorCode = 4001
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                 "OK",
	ErrorCode_INTERNAL:                "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:        "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:               "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:          "ALREADY_EXISTS",
	ErrorCode_VALIDATION:              "VALIDATION",
	ErrorCode_AI_EXTRACTION_FAILED:    "AI_EXTRACTION_FAILED",
	ErrorCode_AI_EMBEDDING_FAILED:     "AI_EMBEDDING_FAILED",
	ErrorCode_AI_SUMMARY_FAILED:       "AI_SUMMARY_FAILED",
	ErrorCode_AI_SERVICE_UNAVAILABLE:  "AI_SERVICE_UNAVAILABLE",
	ErrorCode_DB_QUERY_FAILED:         "DB_QUERY_FAILED",
	ErrorCode_DB_CONSTRAINT_VIOLATION: "DB_CONSTRAINT_VIOLATION",
	ErrorCode_PROCESSING_FAILED:       "PROCESSING_FAILED",
	ErrorCode_MISSING_QUERY:           "MISSING_QUERY",
}

// String returns the symbolic name of the error code.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
