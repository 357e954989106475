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

package common

import (
	"errors"
	"fmt"

	"github.com/arduino/arduino-probeflasher/cli/feedback"
	"github.com/arduino/arduino-probeflasher/cli/globals"
	"github.com/arduino/arduino-probeflasher/config"
	"github.com/arduino/arduino-probeflasher/flasher"
	"github.com/arduino/arduino-probeflasher/programmers"
	"github.com/arduino/go-paths-helper"
	"github.com/sirupsen/logrus"
)

// Runner launches the external tools, replaced in tests.
var Runner programmers.Runner = programmers.ExecRunner{}

// errNoConfigFile is returned when the file given with --config doesn't exist
var errNoConfigFile = errors.New("config file not found")

// LoadToolchain reads the file given with --config, or the first
// probeflasher.{yaml,yml,toml} in the working directory. Without any file
// the default toolchain is returned.
func LoadToolchain() (*config.Toolchain, error) {
	var file *paths.Path
	if globals.ConfigFile != "" {
		file = paths.New(globals.ConfigFile)
		if !file.Exist() {
			return nil, fmt.Errorf("%w: %s", errNoConfigFile, file)
		}
	} else if wd, err := paths.Getwd(); err == nil {
		file = config.Find(wd)
	}
	if file == nil {
		logrus.Debug("no config file, using default toolchain")
		return config.Default(), nil
	}
	return config.Load(file)
}

// MustLoadToolchain is LoadToolchain exiting the program on failure
func MustLoadToolchain() *config.Toolchain {
	toolchain, err := LoadToolchain()
	if errors.Is(err, errNoConfigFile) {
		feedback.Fatal(fmt.Sprintf("Error loading configuration: %s", err), feedback.ErrNoConfigFile)
	} else if err != nil {
		feedback.Fatal(fmt.Sprintf("Error loading configuration: %s", err), feedback.ErrCoreConfig)
	}
	return toolchain
}

// NewFlasher creates a Flasher printing on the console in Text output mode
func NewFlasher(toolchain *config.Toolchain) *flasher.Flasher {
	stdout, stderr := feedback.OutputStreams()
	return &flasher.Flasher{
		Runner:    Runner,
		Toolchain: toolchain,
		Stdout:    stdout,
		Stderr:    stderr,
		Notify:    feedback.Print,
	}
}

// ExitCodeFor maps an error to the exit status of the program: a failed
// external command exits with the status of that command.
func ExitCodeFor(err error) feedback.ExitCode {
	var cmdErr *flasher.CommandError
	if errors.As(err, &cmdErr) {
		return feedback.ExitCode(cmdErr.ExitCode())
	}
	if err != nil {
		return feedback.ErrGeneric
	}
	return feedback.Success
}
