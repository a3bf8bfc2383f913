package errors

import (
	"encoding/json"
)

// ErrorResponse represents the JSON structure for reporting errors, for
// example from the pathfs CLI with --json.
//
// The wrapped host error chain is excluded; the path, op and tag are
// available through Context.
type ErrorResponse struct {
	// Code is the error code identifying the type of error.
	Code string `json:"code"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Classification indicates whether the error is retryable or permanent.
	Classification string `json:"classification"`

	// Context contains optional metadata about the error.
	// Omitted from JSON if empty.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// For PlatformError instances, extracts code, message, classification, and context.
// For standard errors, uses CodeUnknown, ClassificationPermanent, and the error message.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	code := GetCode(err)
	classification := GetClassification(err)

	message := err.Error()
	var context map[string]interface{}

	var platformErr PlatformError
	if As(err, &platformErr) {
		message = platformErr.Message()
		context = platformErr.Context()
	}

	return &ErrorResponse{
		Code:           string(code),
		Message:        message,
		Classification: string(classification),
		Context:        context,
	}
}

// MarshalJSON implements json.Marshaler for the taxonomy errors.
//
// Example:
//
//	_, err := fsys.ReadBytes(fspath.FromText("missing.txt"))
//	data, _ := json.Marshal(err)
//	// {"code":"NOT_FOUND","message":"read missing.txt: not found","classification":"PERMANENT","context":{...}}
func (e *fsError) MarshalJSON() ([]byte, error) {
	return marshalResponse(e.code, e.Message(), e.Classification(), e.Context())
}

// MarshalJSON implements json.Marshaler for DecodeError.
func (e *DecodeError) MarshalJSON() ([]byte, error) {
	return marshalResponse(e.Code(), e.Message(), e.Classification(), e.Context())
}

func marshalResponse(code ErrorCode, message string, class ErrorClassification, ctx map[string]interface{}) ([]byte, error) {
	data, err := json.Marshal(&ErrorResponse{
		Code:           string(code),
		Message:        message,
		Classification: string(class),
		Context:        ctx,
	})
	if err != nil {
		return nil, &fsError{
			code:    CodeInternal,
			op:      "marshal",
			message: "failed to marshal error response",
			cause:   err,
		}
	}
	return data, nil
}
