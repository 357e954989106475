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

package tools

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/arduino/arduino-cli/table"
	"github.com/arduino/arduino-probeflasher/cli/common"
	"github.com/arduino/arduino-probeflasher/cli/feedback"
	"github.com/arduino/arduino-probeflasher/config"
	"github.com/arduino/arduino-probeflasher/programmers"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	semver "go.bug.st/relaxed-semver"
)

// NewCommand creates a new `tools` command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "tools",
		Short:   "Lists the external tools and their versions.",
		Long:    "Runs every configured tool with --version to check that the toolchain needed for building and flashing is installed.",
		Example: "  " + os.Args[0] + " tools --config probeflasher.yaml",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			feedback.PrintResult(List(context.Background(), common.Runner, common.MustLoadToolchain()))
		},
	}
}

// ToolResult describes an installed tool
type ToolResult struct {
	Tool    config.Tool            `json:"tool"`
	Program string                 `json:"program"`
	Found   bool                   `json:"found"`
	Version *semver.RelaxedVersion `json:"version,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// ToolListResult is the result of the tools command
type ToolListResult []*ToolResult

// List queries the version of every tool of the toolchain
func List(ctx context.Context, runner programmers.Runner, toolchain *config.Toolchain) ToolListResult {
	res := ToolListResult{}
	for _, tool := range config.Tools {
		entry := &ToolResult{Tool: tool, Program: toolchain.Executable(tool)}
		version, err := programmers.QueryVersion(ctx, runner, entry.Program)
		if err != nil {
			logrus.WithField("tool", tool).WithError(err).Warn("version check failed")
			entry.Error = err.Error()
		}
		var startErr *exec.Error
		entry.Found = !errors.As(err, &startErr)
		entry.Version = version
		res = append(res, entry)
	}
	return res
}

func (r ToolListResult) String() string {
	t := table.New()
	t.SetHeader("Tool", "Program", "Version")
	for _, tool := range r {
		version := "unknown"
		switch {
		case !tool.Found:
			version = "not found"
		case tool.Version != nil:
			version = tool.Version.String()
		}
		t.AddRow(string(tool.Tool), tool.Program, version)
	}
	return t.Render()
}

// Data implements feedback.Result interface
func (r ToolListResult) Data() interface{} {
	return r
}
