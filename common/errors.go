package common

import (
	"fmt"
	"go-atm-ledger/logger"
	"io"

	"github.com/sirupsen/logrus"
)

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Report logs the internal error with its context and writes the
// user-facing message to the given destination.
func (e *AppError) Report(w io.Writer) {
	if e.Err != nil {
		logger.Log.WithFields(logrus.Fields{
			"code":           e.Code,
			"internal_error": e.Err.Error(),
		}).Error(e.Message)
	}

	fmt.Fprintf(w, "Error: %s\n", e.Message)
}
