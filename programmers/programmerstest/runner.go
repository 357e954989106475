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

// Package programmerstest provides a scripted programmers.Runner for tests.
package programmerstest

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Response is the scripted outcome of one invocation.
type Response struct {
	Stdout   string
	Stderr   string
	ExitCode int
	// NotFound simulates a program missing from the PATH.
	NotFound bool
}

// Runner records every invocation and answers with the Response registered
// for the command line, matched on the longest registered prefix.
type Runner struct {
	Responses map[string]Response
	Calls     []string
}

// New creates an empty Runner: every command succeeds with no output.
func New() *Runner {
	return &Runner{Responses: map[string]Response{}}
}

// On registers the response for every command line starting with prefix.
func (r *Runner) On(prefix string, res Response) *Runner {
	r.Responses[prefix] = res
	return r
}

// Run implements programmers.Runner
func (r *Runner) Run(ctx context.Context, program string, args []string, stdout, stderr io.Writer) error {
	res := r.record(program, args)
	if stdout != nil {
		io.WriteString(stdout, res.Stdout)
	}
	if stderr != nil {
		io.WriteString(stderr, res.Stderr)
	}
	return res.err(program)
}

// Capture implements programmers.Runner
func (r *Runner) Capture(ctx context.Context, program string, args []string) ([]byte, []byte, error) {
	res := r.record(program, args)
	return []byte(res.Stdout), []byte(res.Stderr), res.err(program)
}

// Ran reports whether a command line starting with prefix was invoked.
func (r *Runner) Ran(prefix string) bool {
	for _, c := range r.Calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

func (r *Runner) record(program string, args []string) Response {
	line := strings.Join(append([]string{program}, args...), " ")
	r.Calls = append(r.Calls, line)
	best, found := "", false
	for prefix := range r.Responses {
		if strings.HasPrefix(line, prefix) && len(prefix) >= len(best) {
			best, found = prefix, true
		}
	}
	if !found {
		return Response{}
	}
	return r.Responses[best]
}

func (res Response) err(program string) error {
	if res.NotFound {
		return &exec.Error{Name: program, Err: exec.ErrNotFound}
	}
	if res.ExitCode != 0 {
		return &ExitError{Code: res.ExitCode}
	}
	return nil
}

// ExitError is returned for a scripted non-zero exit status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode mirrors (*exec.ExitError).ExitCode
func (e *ExitError) ExitCode() int {
	return e.Code
}
