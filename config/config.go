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

package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/arduino/go-paths-helper"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Tool identifies one of the external programs driven by the flasher.
type Tool string

const (
	// Build is the firmware build tool (cargo)
	Build Tool = "build"
	// Probe is the debug probe utility (probe-rs)
	Probe Tool = "probe"
	// Objcopy is the ELF to HEX/BIN converter
	Objcopy Tool = "objcopy"
	// GDB is the remote debugger used with the Black Magic Probe
	GDB Tool = "gdb"
)

// Tools lists every tool in the order they are first used by a flash run.
var Tools = []Tool{Build, Probe, Objcopy, GDB}

// FileNames are the configuration files looked up in the working directory
// when no --config flag is given.
var FileNames = []string{"probeflasher.yaml", "probeflasher.yml", "probeflasher.toml"}

// Toolchain holds the executables and the fixed parameters used to build
// and flash the firmware.
type Toolchain struct {
	Cargo        string `yaml:"cargo" toml:"cargo" json:"cargo"`
	ProbeRS      string `yaml:"probe_rs" toml:"probe_rs" json:"probe_rs"`
	Objcopy      string `yaml:"objcopy" toml:"objcopy" json:"objcopy"`
	GDB          string `yaml:"gdb" toml:"gdb" json:"gdb"`
	GDBScript    string `yaml:"gdb_script" toml:"gdb_script" json:"gdb_script"`
	BuildProfile string `yaml:"build_profile" toml:"build_profile" json:"build_profile"`
}

// Default returns the toolchain expected to be found in the PATH.
func Default() *Toolchain {
	return &Toolchain{
		Cargo:        "cargo",
		ProbeRS:      "probe-rs",
		Objcopy:      "arm-none-eabi-objcopy",
		GDB:          "arm-none-eabi-gdb",
		GDBScript:    "black_magic_probe_flash.scr",
		BuildProfile: "gdb",
	}
}

// Executable returns the program to run for the given tool.
func (t *Toolchain) Executable(tool Tool) string {
	switch tool {
	case Build:
		return t.Cargo
	case Probe:
		return t.ProbeRS
	case Objcopy:
		return t.Objcopy
	case GDB:
		return t.GDB
	}
	panic(fmt.Sprintf("unknown tool: %s", tool))
}

// Validate checks that no field has been blanked by the configuration file.
func (t *Toolchain) Validate() error {
	fields := []struct{ key, value string }{
		{"cargo", t.Cargo},
		{"probe_rs", t.ProbeRS},
		{"objcopy", t.Objcopy},
		{"gdb", t.GDB},
		{"gdb_script", t.GDBScript},
		{"build_profile", t.BuildProfile},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s must not be empty", f.key)
		}
	}
	return nil
}

// Load reads the configuration file on top of the defaults. The format is
// chosen by the file extension: .toml for TOML, anything else is YAML.
func Load(file *paths.Path) (*Toolchain, error) {
	data, err := file.ReadFile()
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", file, err)
	}

	tc := Default()
	if strings.EqualFold(file.Ext(), ".toml") {
		_, err = toml.NewDecoder(bytes.NewReader(data)).Decode(tc)
	} else {
		err = yaml.Unmarshal(data, tc)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", file, err)
	}
	if err := tc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", file, err)
	}
	logrus.WithField("config", file).Debugf("loaded toolchain %+v", *tc)
	return tc, nil
}

// Find returns the first configuration file present in dir, or nil.
func Find(dir *paths.Path) *paths.Path {
	for _, name := range FileNames {
		if f := dir.Join(name); f.Exist() {
			return f
		}
	}
	return nil
}
