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

package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/arduino/arduino-cli/table"
	"github.com/arduino/arduino-probeflasher/cli/common"
	"github.com/arduino/arduino-probeflasher/cli/feedback"
	"github.com/arduino/arduino-probeflasher/cli/globals"
	"github.com/arduino/arduino-probeflasher/config"
	"github.com/arduino/arduino-probeflasher/flasher"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// replaced in tests
var exit = os.Exit

func runFlash(cmd *cobra.Command, args []string) {
	elf := ""
	if len(args) > 0 {
		elf = args[0]
	}
	fc, err := flasher.NewContext(elf, commonFlags.Chip, globals.DefaultComPort)
	if err != nil {
		if feedback.GetFormat() != feedback.Text {
			feedback.Fatal(fmt.Sprintf("Error: %s.", err), feedback.ErrGeneric)
			return
		}
		feedback.Warning(fmt.Sprintf("Error: %s.\n", err))
		cmd.Help()
		exit(int(feedback.ErrGeneric))
		return
	}
	logrus.WithField("chip", fc.Chip).WithField("elf", fc.ELF).Debug("flash context ready")

	f := common.NewFlasher(common.MustLoadToolchain())
	ctx := context.Background()

	if dryRun {
		feedback.PrintResult(&planResult{f.NewPlan(ctx, fc)})
		return
	}

	res, err := f.Flash(ctx, fc)
	if err != nil {
		logrus.WithField("completed_steps", res.Completed()).Error("flash aborted")
		code := common.ExitCodeFor(err)
		feedback.FatalResult(&flashFailure{FlashResult: res, err: err, code: code}, code)
		return
	}
	feedback.PrintResult(res)
}

// flashFailure keeps the output of the steps that ran before the failure.
type flashFailure struct {
	*flasher.FlashResult
	err  error
	code feedback.ExitCode
}

func (r *flashFailure) String() string {
	return ""
}

func (r *flashFailure) ErrorString() string {
	return r.err.Error()
}

func (r *flashFailure) Data() interface{} {
	return struct {
		*flasher.FlashResult
		Error    string `json:"error"`
		ExitCode int    `json:"exit_code"`
	}{r.FlashResult, r.err.Error(), int(r.code)}
}

type planResult struct {
	*flasher.Plan
}

func (r *planResult) String() string {
	t := table.New()
	t.SetHeader("#", "Step", "Command", "")
	for i, c := range r.Commands {
		note := ""
		if !r.Probe.Detected() && c.Tool == config.Probe {
			note = "skipped"
		}
		t.AddRow(strconv.Itoa(i+1), c.Step, c.String(), note)
	}
	return strings.TrimRight(t.Render(), "\n")
}

func (r *planResult) Data() interface{} {
	return r.Plan
}
