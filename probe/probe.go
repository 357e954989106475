/*
	arduino-probeflasher
	Copyright (c) 2025 Arduino LLC.  All right reserved.

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU Affero General Public License as published
	by the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU Affero General Public License for more details.

	You should have received a copy of the GNU Affero General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

// Package probe finds out which debug probe is attached to the host by
// looking at the output of `probe-rs list`.
package probe

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/arduino/arduino-probeflasher/programmers"
	"github.com/sirupsen/logrus"
)

// Kind is the family of a debug probe
type Kind int

const (
	// None means no probe could be detected
	None Kind = iota
	// JLink is a SEGGER J-Link
	JLink
	// STLink is an ST-Link
	STLink
	// BlackMagicProbe is a Black Magic Probe, driven through gdb
	BlackMagicProbe
)

var kindNames = map[Kind]string{
	None:            "none",
	JLink:           "J-Link",
	STLink:          "ST-Link",
	BlackMagicProbe: "Black Magic Probe",
}

func (k Kind) String() string {
	return kindNames[k]
}

// MarshalText makes the Kind readable in the JSON output
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// NoProbesMarker is printed by probe-rs when nothing is connected.
const NoProbesMarker = "No debug probes were found"

// The first marker found in the output wins.
var markers = []struct {
	text string
	kind Kind
}{
	{"J-Link", JLink},
	{"STLink", STLink},
	{"Black Magic Probe", BlackMagicProbe},
}

var comPortRegexp = regexp.MustCompile(`COM\d+`)

// Result is the outcome of a probe detection.
type Result struct {
	Kind Kind `json:"kind"`
	// ComPort is the serial port of a Black Magic Probe, empty for other kinds.
	ComPort string `json:"com_port,omitempty"`
}

// Detected is false only when no probe was found.
func (r Result) Detected() bool {
	return r.Kind != None
}

func (r Result) String() string {
	switch r.Kind {
	case None:
		return NoProbesMarker
	case BlackMagicProbe:
		return fmt.Sprintf("Black Magic Probe debug probe detected in %s", r.ComPort)
	default:
		return fmt.Sprintf("%s debug probe detected", r.Kind)
	}
}

// Classify inspects the text printed by `probe-rs list`. The COM port of a
// Black Magic Probe is the first COM<n> token of the output, or
// defaultComPort if there is none.
func Classify(output string, defaultComPort string) Result {
	for _, m := range markers {
		if !strings.Contains(output, m.text) {
			continue
		}
		res := Result{Kind: m.kind}
		if m.kind == BlackMagicProbe {
			res.ComPort = defaultComPort
			if port := comPortRegexp.FindString(output); port != "" {
				res.ComPort = port
			}
		}
		return res
	}
	return Result{Kind: None}
}

// Detect runs `<probeRS> list` and classifies its standard output. A list
// command that fails or can't be started counts as "no probe detected",
// whatever it printed.
func Detect(ctx context.Context, runner programmers.Runner, probeRS string, defaultComPort string) Result {
	stdout, stderr, err := runner.Capture(ctx, probeRS, []string{"list"})
	if err != nil {
		// A real tool fault is indistinguishable from "no probes" here.
		logrus.WithError(err).
			WithField("exit_code", programmers.ExitCode(err)).
			WithField("stderr", strings.TrimSpace(string(stderr))).
			Warnf("%s list failed", probeRS)
		return Result{Kind: None}
	}

	res := Classify(string(stdout), defaultComPort)
	log := logrus.WithField("probe", res.Kind)
	if !res.Detected() && !strings.Contains(string(stdout), NoProbesMarker) {
		log.Warnf("unrecognized %s list output: %q", probeRS, stdout)
	}
	log.Debug("probe detection completed")
	return res
}
