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

package programmers

import (
	"context"
	"errors"
	"io"

	"github.com/arduino/arduino-cli/executils"
	"github.com/sirupsen/logrus"
)

// Runner starts an external program and waits for its termination.
type Runner interface {
	// Run executes program streaming its output to stdout and stderr.
	Run(ctx context.Context, program string, args []string, stdout, stderr io.Writer) error
	// Capture executes program and returns everything it printed.
	Capture(ctx context.Context, program string, args []string) (stdout, stderr []byte, err error)
}

// ExecRunner is the Runner launching real processes on the host.
type ExecRunner struct{}

// Run implements Runner
func (ExecRunner) Run(ctx context.Context, program string, args []string, stdout, stderr io.Writer) error {
	proc, err := newProcess(program, args)
	if err != nil {
		return err
	}
	proc.RedirectStdoutTo(stdout)
	proc.RedirectStderrTo(stderr)
	return proc.RunWithinContext(ctx)
}

// Capture implements Runner
func (ExecRunner) Capture(ctx context.Context, program string, args []string) ([]byte, []byte, error) {
	proc, err := newProcess(program, args)
	if err != nil {
		return nil, nil, err
	}
	return proc.RunAndCaptureOutput(ctx)
}

func newProcess(program string, args []string) (*executils.Process, error) {
	logrus.WithField("program", program).Debugf("running with args %q", args)
	return executils.NewProcess(nil, append([]string{program}, args...)...)
}

// ExitCode returns the exit status carried by an error returned from a
// Runner: 0 for a nil error, the process status if the program ran and
// failed, -1 if the program could not be started at all.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr interface{ ExitCode() int }
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
