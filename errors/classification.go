package errors

// ErrorClassification indicates whether an error may succeed if retried.
// pathfs never retries; the classification is advice for callers that
// implement their own retry policy.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	// Examples: interrupted system calls, host timeouts.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	// Examples: missing paths, permission denials, invalid content.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeInterrupted: ClassificationRetryable,
	CodeTimeout:     ClassificationRetryable,

	CodeNotFound:          ClassificationPermanent,
	CodeAlreadyExists:     ClassificationPermanent,
	CodeNotADirectory:     ClassificationPermanent,
	CodeIsADirectory:      ClassificationPermanent,
	CodeDirectoryNotEmpty: ClassificationPermanent,
	CodePermissionDenied:  ClassificationPermanent,
	CodeReadOnly:          ClassificationPermanent,
	CodeInvalidInput:      ClassificationPermanent,
	CodeBadHandle:         ClassificationPermanent,
	CodeDecodeFailed:      ClassificationPermanent,
	CodeStorageFull:       ClassificationPermanent,
	CodeUnsupported:       ClassificationPermanent,
	CodeInternal:          ClassificationPermanent,
	CodeUnknown:           ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Returns ClassificationPermanent if the code is not in the map (safe default).
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
