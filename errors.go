// Package matprod structured error types for better error handling
package matprod

import (
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Dimension mismatch between operands
	ErrTypeDimension ErrorType = iota
	// Requested kernel variant is not usable
	ErrTypeUnsupportedVariant
	// Invalid argument errors
	ErrTypeInvalidArg
)

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeDimension:
		return "Dimension"
	case ErrTypeUnsupportedVariant:
		return "UnsupportedVariant"
	case ErrTypeInvalidArg:
		return "InvalidArgument"
	default:
		return "Unknown"
	}
}

// EngineError represents a structured error with context
type EngineError struct {
	Type    ErrorType
	Op      string      // Operation that failed
	Message string      // Human-readable message
	Err     error       // Underlying error if any
	Context interface{} // Additional context
}

// Error implements the error interface
func (e *EngineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("matprod %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("matprod %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *EngineError) Unwrap() error {
	return e.Err
}

// OperandShapes carries both operand shapes of a failed multiplication.
type OperandShapes struct {
	ARows, ACols int
	BRows, BCols int
}

// NewDimensionError creates a dimension mismatch error for C = A·B.
// It records both operand shapes in the error context.
func NewDimensionError(op string, aRows, aCols, bRows, bCols int) error {
	return &EngineError{
		Type: ErrTypeDimension,
		Op:   op,
		Message: fmt.Sprintf("incompatible dimensions: A is %dx%d, B is %dx%d",
			aRows, aCols, bRows, bCols),
		Context: OperandShapes{ARows: aRows, ACols: aCols, BRows: bRows, BCols: bCols},
	}
}

// NewUnsupportedVariantError creates an error for a kernel variant request
// the engine cannot satisfy.
func NewUnsupportedVariantError(op string, v KernelVariant) error {
	return &EngineError{
		Type:    ErrTypeUnsupportedVariant,
		Op:      op,
		Message: fmt.Sprintf("unsupported kernel variant %s", v),
		Context: v,
	}
}

// NewInvalidArgError creates an invalid argument error
func NewInvalidArgError(op string, message string) error {
	return &EngineError{
		Type:    ErrTypeInvalidArg,
		Op:      op,
		Message: message,
	}
}

// IsDimensionError checks if an error is a dimension mismatch error
func IsDimensionError(err error) bool {
	if e, ok := err.(*EngineError); ok {
		return e.Type == ErrTypeDimension
	}
	return false
}

// IsUnsupportedVariantError checks if an error reports an unusable variant
func IsUnsupportedVariantError(err error) bool {
	if e, ok := err.(*EngineError); ok {
		return e.Type == ErrTypeUnsupportedVariant
	}
	return false
}

// IsInvalidArgError checks if an error is an invalid argument error
func IsInvalidArgError(err error) bool {
	if e, ok := err.(*EngineError); ok {
		return e.Type == ErrTypeInvalidArg
	}
	return false
}
