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

package detect

import (
	"context"
	"os"

	"github.com/arduino/arduino-probeflasher/cli/common"
	"github.com/arduino/arduino-probeflasher/cli/feedback"
	"github.com/arduino/arduino-probeflasher/cli/globals"
	"github.com/arduino/arduino-probeflasher/probe"
	"github.com/spf13/cobra"
)

// NewCommand creates a new `detect` command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "detect",
		Short:   "Detects the connected debug probe.",
		Long:    "Runs `probe-rs list` and reports which debug probe (J-Link, ST-Link, Black Magic Probe) would be used for flashing.",
		Example: "  " + os.Args[0] + " detect",
		Args:    cobra.NoArgs,
		Run:     runDetect,
	}
}

func runDetect(cmd *cobra.Command, args []string) {
	toolchain := common.MustLoadToolchain()
	res := probe.Detect(context.Background(), common.Runner, toolchain.ProbeRS, globals.DefaultComPort)
	feedback.PrintResult(&Result{Probe: res, Detected: res.Detected()})
}

// Result is the outcome of the detect command
type Result struct {
	Probe    probe.Result `json:"probe"`
	Detected bool         `json:"detected"`
}

func (r *Result) String() string {
	return r.Probe.String()
}

// Data implements feedback.Result interface
func (r *Result) Data() interface{} {
	return r
}
