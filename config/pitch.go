// SPDX-License-Identifier: EPL-2.0

package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// pitchStepFields avoids recursing into the custom unmarshalers.
type pitchStepFields PitchStep

// UnmarshalJSON accepts [pitch, fraction] pairs as well as objects.
func (p *PitchStep) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		var pair []float64
		if err := json.Unmarshal(data, &pair); err != nil {
			return err
		}
		return p.fromPair(pair)
	}

	return json.Unmarshal(data, (*pitchStepFields)(p))
}

// UnmarshalYAML accepts [pitch, fraction] sequences as well as mappings.
func (p *PitchStep) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var pair []float64
		if err := value.Decode(&pair); err != nil {
			return err
		}
		return p.fromPair(pair)
	}

	return value.Decode((*pitchStepFields)(p))
}

func (p *PitchStep) fromPair(pair []float64) error {
	if len(pair) != 2 {
		return fmt.Errorf("pitch step needs [pitch, fraction], got %d values", len(pair))
	}
	p.Pitch, p.Fraction = pair[0], pair[1]

	return nil
}
