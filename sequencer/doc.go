// SPDX-License-Identifier: EPL-2.0

// Package sequencer generates the rhythm of a track: when each grain starts,
// how it is panned and how loud it plays.
//
// Every beat is split into evenly spaced subdivisions, optionally jittered
// by the humanization amount. A coverage share of them is picked at random
// without replacement and each pick gets its own pan and volume deviation.
package sequencer
