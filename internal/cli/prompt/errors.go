package prompt

import "errors"

// ErrAborted is returned when the user cancels a prompt via Ctrl+C.
var ErrAborted = errors.New("prompt aborted")

// IsAborted reports whether err indicates the user aborted a prompt.
func IsAborted(err error) bool {
	return errors.Is(err, ErrAborted)
}
