// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize    = errors.New("dst size must be multiple of channels")
	ErrInvalidVariant    = errors.New("operation not valid for buffer layout")
	ErrDivisionByZero    = errors.New("cannot normalize a silent buffer")
	ErrChannelMismatch   = errors.New("channels must have equal length")
	ErrUnsupportedLayout = errors.New("unsupported channel count")
	ErrInvalidRatio      = errors.New("resampling ratio must be positive and finite")
	ErrUnknownResampler  = errors.New("unknown resampler")
)
