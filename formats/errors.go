// SPDX-License-Identifier: EPL-2.0

package formats

import "errors"

var (
	ErrNotFound          = errors.New("audio file not found")
	ErrDecode            = errors.New("cannot decode audio file")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrCreate            = errors.New("cannot create audio file")
)
