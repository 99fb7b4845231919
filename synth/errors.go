// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var ErrNotRendered = errors.New("tracks have not been rendered")
