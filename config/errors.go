// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRead          = errors.New("cannot read configuration file")
	ErrParse         = errors.New("cannot parse configuration file")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// FieldError is a single validation failure. Track, Step and Beat are
// 1-based and zero when they do not apply.
type FieldError struct {
	Track   int
	Step    int
	Beat    int
	Section string
	Field   string
	Reason  string
}

func (e *FieldError) Error() string {
	var b strings.Builder
	if e.Track > 0 {
		fmt.Fprintf(&b, "track [%d] ", e.Track)
	}
	if e.Step > 0 {
		fmt.Fprintf(&b, "step [%d] ", e.Step)
	}
	if e.Beat > 0 {
		fmt.Fprintf(&b, "beat [%d] ", e.Beat)
	}
	fmt.Fprintf(&b, "%s: invalid %q: %s", e.Section, e.Field, e.Reason)

	return b.String()
}

func (e *FieldError) Unwrap() error { return ErrInvalidConfig }

// ValidationErrors collects every failure found in one validation pass.
type ValidationErrors []error

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, err := range v {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

func (v ValidationErrors) Unwrap() []error { return v }
