package stft

import "errors"

// ErrInvalidConfig is wrapped by all construction errors. Once a Processor
// is constructed, per-frame processing is infallible.
var ErrInvalidConfig = errors.New("stft: invalid configuration")
