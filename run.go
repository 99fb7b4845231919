// SPDX-License-Identifier: EPL-2.0

package grainsynth

import (
	"context"

	"github.com/ik5/grainsynth/synth"
)

// Run configures an engine from the file at path, renders every track and
// saves them. The engine is returned on success so callers can inspect the
// rendered tracks.
//
// Nothing is written when configuration or rendering fails. A failure while
// saving may leave the tracks saved before it on disk.
func Run(ctx context.Context, path string, opts ...synth.Option) (*synth.Engine, error) {
	eng, err := synth.Configure(path, opts...)
	if err != nil {
		return nil, err
	}

	if err := eng.Render(ctx); err != nil {
		return nil, err
	}

	if err := eng.Save(ctx); err != nil {
		return nil, err
	}

	return eng, nil
}
