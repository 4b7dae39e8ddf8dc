package export

import (
	"errors"
	"fmt"
)

var (
	// ErrRendererMissing is returned when no renderer is mounted
	ErrRendererMissing = errors.New("renderer reference not found")

	// ErrPermissionDenied is returned when media access was refused
	ErrPermissionDenied = errors.New("media library access denied")
)

// Pipeline stages reported in StageError
const (
	StagePermission = "permission"
	StageEncode     = "encode"
	StageWrite      = "write"
	StageRegister   = "register"
	StagePanic      = "panic"
)

// StageError wraps a failure of one pipeline stage
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("export %s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// IsUserError reports whether err is an expected outcome that is shown to the
// user without being logged.
func IsUserError(err error) bool {
	return errors.Is(err, ErrRendererMissing) || errors.Is(err, ErrPermissionDenied)
}
