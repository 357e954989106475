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

package flasher

import (
	"fmt"
	"strings"

	"github.com/arduino/arduino-probeflasher/probe"
)

// ExecOutput contains the output of a command
type ExecOutput struct {
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
}

// StepResult tells what happened to a single command of the sequence
type StepResult struct {
	Step    Step        `json:"step"`
	Command string      `json:"command"`
	Skipped bool        `json:"skipped,omitempty"`
	Failed  bool        `json:"failed,omitempty"`
	Output  *ExecOutput `json:"output,omitempty"`
}

// FlashResult contains the result of a flash run
type FlashResult struct {
	Chip     string        `json:"chip"`
	Firmware string        `json:"firmware"`
	Probe    probe.Result  `json:"probe"`
	Template string        `json:"template"`
	Steps    []*StepResult `json:"steps"`
}

func (r *FlashResult) String() string {
	skipped := []string{}
	for _, s := range r.Steps {
		if s.Skipped {
			skipped = append(skipped, s.Step.String())
		}
	}
	msg := fmt.Sprintf("Firmware %s successfully flashed to %s", r.Firmware, r.Chip)
	if len(skipped) > 0 {
		msg += fmt.Sprintf(" (skipped: %s)", strings.Join(skipped, ", "))
	}
	return msg
}

// Completed is the number of steps that ran without error.
func (r *FlashResult) Completed() int {
	n := 0
	for _, s := range r.Steps {
		if !s.Skipped && !s.Failed {
			n++
		}
	}
	return n
}

// Data implements feedback.Result interface
func (r *FlashResult) Data() interface{} {
	return r
}
