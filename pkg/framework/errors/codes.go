// Package errors provides coded errors for the parameter framework.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Declaration errors
	CodeDeclarationInvalid Code = "DECLARATION_INVALID"
	CodeParamTypeUnknown   Code = "PARAM_TYPE_UNKNOWN"
	CodeParamIDIllegal     Code = "PARAM_ID_ILLEGAL"

	// Runtime errors
	CodeParamUnknown      Code = "PARAM_UNKNOWN"
	CodeParamValueInvalid Code = "PARAM_VALUE_INVALID"
	CodeAdapterFailed     Code = "ADAPTER_FAILED"
	CodeIllegalState      Code = "STATE_ILLEGAL_TRANSITION"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// Fatal reports whether errors with this code abort parameter declaration.
func (c Code) Fatal() bool {
	switch c {
	case CodeDeclarationInvalid, CodeParamTypeUnknown, CodeParamIDIllegal, CodeAdapterFailed:
		return true
	default:
		return false
	}
}
