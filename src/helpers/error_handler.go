package helpers

import (
	"fmt"
	"strings"
	"time"

	"stock-dashboard/src/logger"
)

// -----------------------------------------------------------------------------
// Custom Error Types
// -----------------------------------------------------------------------------

type DashboardError struct {
	Message string
	Cause   error
}

func (e *DashboardError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DashboardError) Unwrap() error {
	return e.Cause
}

// Distinct error types for type assertions if needed
type ConfigurationError struct{ DashboardError }
type DatabaseError struct{ DashboardError }
type ValidationError struct{ DashboardError }

// -----------------------------------------------------------------------------
// Error Handler
// -----------------------------------------------------------------------------

type ErrorHandler struct {
	Logger                 *logger.Logger
	ErrorCount             int
	MaxErrorsBeforeRestart int
}

func NewErrorHandler(logLevel string) *ErrorHandler {
	return &ErrorHandler{
		Logger:                 logger.NewLogger(logLevel, "ErrorHandler"),
		ErrorCount:             0,
		MaxErrorsBeforeRestart: 10,
	}
}

// -----------------------------------------------------------------------------

func (e *ErrorHandler) ResetErrorCount() {
	e.ErrorCount = 0
}

// -----------------------------------------------------------------------------

// ExecuteWithRetry runs fn with exponential backoff, categorizing the final
// error by operation name.
func (e *ErrorHandler) ExecuteWithRetry(operation string, fn func() error, maxRetries int) error {
	for attempt := 0; attempt < maxRetries; attempt++ {
		err := fn()
		if err == nil {
			// Success: recover stats
			if e.ErrorCount > 0 {
				e.ErrorCount--
			}
			return nil
		}

		if attempt == maxRetries-1 {
			e.ErrorCount++
			e.Logger.Error("%s failed (attempt %d/%d): %v", operation, attempt+1, maxRetries, err)

			lowerOp := strings.ToLower(operation)
			if strings.Contains(lowerOp, "database") || strings.Contains(lowerOp, "save") {
				return &DatabaseError{DashboardError{Message: fmt.Sprintf("%s failed", operation), Cause: err}}
			}
			return &DashboardError{Message: fmt.Sprintf("%s failed", operation), Cause: err}
		}

		e.Logger.Warning("%s failed (attempt %d/%d): %v", operation, attempt+1, maxRetries, err)
		delay := time.Duration(1<<attempt) * time.Second
		time.Sleep(delay)
	}

	return &DashboardError{Message: fmt.Sprintf("%s failed after %d attempts", operation, maxRetries)}
}

// -----------------------------------------------------------------------------

func (e *ErrorHandler) Handle(err error, context string) {
	if err != nil {
		e.Logger.Error("Error in %s: %v", context, err)
	}
}
