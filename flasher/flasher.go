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

// Package flasher runs the clean, erase, build, convert and download
// sequence matching the debug probe attached to the host.
package flasher

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/arduino/arduino-probeflasher/config"
	"github.com/arduino/arduino-probeflasher/probe"
	"github.com/arduino/arduino-probeflasher/programmers"
	"github.com/arduino/go-paths-helper"
	"github.com/sirupsen/logrus"
)

// Flasher drives the external tools.
type Flasher struct {
	Runner    programmers.Runner
	Toolchain *config.Toolchain
	// Stdout and Stderr receive the output of the tools while they run, the
	// output is collected in the result anyway. Both may be nil.
	Stdout io.Writer
	Stderr io.Writer
	// Notify, if set, is called with progress messages for the user.
	Notify func(msg string)
}

// Plan is the sequence of commands selected for a run.
type Plan struct {
	Context  *Context     `json:"context"`
	Probe    probe.Result `json:"probe"`
	Template string       `json:"template"`
	Commands []Command    `json:"commands"`
}

// NewPlan detects the probe, selects the matching template and renders it.
func (f *Flasher) NewPlan(ctx context.Context, fc *Context) *Plan {
	res := probe.Detect(ctx, f.Runner, f.Toolchain.ProbeRS, fc.ComPort)
	f.notify(res.String())
	if res.Kind == probe.BlackMagicProbe {
		fc = fc.WithComPort(res.ComPort)
	}
	tmpl := SelectTemplate(res)
	logrus.WithField("template", tmpl.Name).WithField("probe", res.Kind).Info("selected command template")
	return &Plan{
		Context:  fc,
		Probe:    res,
		Template: tmpl.Name,
		Commands: Render(tmpl, fc, f.Toolchain),
	}
}

// Flash performs a whole run: probe detection followed by the execution of
// the selected commands.
func (f *Flasher) Flash(ctx context.Context, fc *Context) (*FlashResult, error) {
	f.notify(fmt.Sprintf("Flashing %s to %s", fc.ELF, fc.Chip))
	plan := f.NewPlan(ctx, fc)
	return f.Execute(ctx, plan)
}

// Execute runs the commands of the plan one after the other, stopping at the
// first failure. Probe utility commands are skipped when no probe has been
// detected. After the build the build output is renamed to the canonical ELF
// path. On failure the partial result is returned along the error.
func (f *Flasher) Execute(ctx context.Context, plan *Plan) (*FlashResult, error) {
	res := &FlashResult{
		Chip:     plan.Context.Chip,
		Firmware: plan.Context.ELF,
		Probe:    plan.Probe,
		Template: plan.Template,
	}
	for _, cmd := range plan.Commands {
		step := &StepResult{Step: cmd.Step, Command: cmd.String()}
		res.Steps = append(res.Steps, step)
		log := logrus.WithField("step", cmd.Step).WithField("command", step.Command)

		if !plan.Probe.Detected() && cmd.Tool == config.Probe {
			step.Skipped = true
			log.Info("skipped")
			f.notify(fmt.Sprintf("Skipping command: %s as no debug probe was detected.", cmd))
			continue
		}

		stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
		err := f.Runner.Run(ctx, cmd.Program, cmd.Args, tee(stdout, f.Stdout), tee(stderr, f.Stderr))
		step.Output = &ExecOutput{Stdout: stdout.String(), Stderr: stderr.String()}
		if err != nil {
			step.Failed = true
			cmdErr := &CommandError{Command: cmd, Err: err}
			log.WithField("exit_code", cmdErr.ExitCode()).Error(err)
			return res, cmdErr
		}
		log.Debug("done")

		if cmd.Step == Build {
			if err := renameBuildOutput(plan.Context); err != nil {
				return res, err
			}
		}
	}
	return res, nil
}

func renameBuildOutput(fc *Context) error {
	from, to := paths.New(fc.BuildOutput), paths.New(fc.ELF)
	if from.EqualsTo(to) {
		return nil
	}
	logrus.Debugf("renaming %s to %s", from, to)
	if err := from.Rename(to); err != nil {
		return fmt.Errorf("renaming build output %s to %s: %w", fc.BuildOutput, fc.ELF, err)
	}
	return nil
}

func (f *Flasher) notify(msg string) {
	if f.Notify != nil {
		f.Notify(msg)
	}
}

func tee(buf *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(buf, w)
}
