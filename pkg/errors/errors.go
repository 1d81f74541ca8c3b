package errors

import "errors"

// ErrRemoteDegraded marks a write that was applied to the local cache but
// could not be propagated to the remote store. The local mutation is kept;
// callers surface this as a warning, never as a failure.
var ErrRemoteDegraded = errors.New("remote store unreachable; change kept locally")
