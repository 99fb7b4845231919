// SPDX-License-Identifier: EPL-2.0

package sampler

import "errors"

var (
	ErrTooShort  = errors.New("sample is too short for the configured grains")
	ErrEmptyStep = errors.New("pitch step yields no grains")
	ErrEmptyBank = errors.New("grain bank needs at least two grains")
)
