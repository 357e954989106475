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
	"github.com/arduino/arduino-probeflasher/config"
	"github.com/arduino/arduino-probeflasher/probe"
	"golang.org/x/exp/slices"
)

// Step is the role of a command in the flash sequence
type Step int

const (
	// Clean removes the previous build
	Clean Step = iota
	// Erase wipes the microcontroller flash
	Erase
	// Build compiles the firmware
	Build
	// ConvertHex produces the Intel-HEX image
	ConvertHex
	// ConvertBin produces the raw binary image
	ConvertBin
	// Download writes the firmware through probe-rs
	Download
	// GDBFlash writes the firmware through gdb and a Black Magic Probe
	GDBFlash
)

var stepNames = map[Step]string{
	Clean:      "clean",
	Erase:      "erase",
	Build:      "build",
	ConvertHex: "convert-hex",
	ConvertBin: "convert-bin",
	Download:   "download",
	GDBFlash:   "gdb-flash",
}

func (s Step) String() string {
	return stepNames[s]
}

// MarshalText makes the Step readable in the JSON output
func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Placeholders replaced by Render.
const (
	ChipID       = "{chip_id}"
	PathELF      = "{path_elf}"
	PathHex      = "{path_hex}"
	PathBin      = "{path_bin}"
	ComPort      = "{com_p}"
	BuildProfile = "{build_profile}"
	GDBScript    = "{gdb_script}"
)

// CommandTemplate is a single command line with placeholders in its arguments.
type CommandTemplate struct {
	Step Step
	Tool config.Tool
	Args []string
}

// Template is an ordered list of commands.
type Template struct {
	Name     string
	Commands []CommandTemplate
}

var probeRSTemplate = Template{
	Name: "probe-rs",
	Commands: []CommandTemplate{
		{Clean, config.Build, []string{"clean"}},
		{Erase, config.Probe, []string{"erase", "--chip", ChipID}},
		{Build, config.Build, []string{"build", "--profile", BuildProfile}},
		{ConvertHex, config.Objcopy, []string{"-O", "ihex", PathELF, PathHex}},
		{ConvertBin, config.Objcopy, []string{"-O", "binary", PathELF, PathBin}},
		{Download, config.Probe, []string{"download", "--chip", ChipID, PathELF}},
	},
}

var blackMagicProbeTemplate = Template{
	Name: "black-magic-probe",
	Commands: []CommandTemplate{
		{Clean, config.Build, []string{"clean"}},
		{Build, config.Build, []string{"build", "--profile", BuildProfile}},
		{ConvertHex, config.Objcopy, []string{"-O", "ihex", PathELF, PathHex}},
		{ConvertBin, config.Objcopy, []string{"-O", "binary", PathELF, PathBin}},
		{GDBFlash, config.GDB, []string{"-nx", "--batch", "-ex", "target extended-remote " + ComPort, "-x", GDBScript, PathELF}},
	},
}

// ProbeRSTemplate returns the sequence used with J-Link and ST-Link probes,
// and when no probe is detected.
func ProbeRSTemplate() Template {
	return probeRSTemplate.clone()
}

// BlackMagicProbeTemplate returns the sequence flashing through gdb.
func BlackMagicProbeTemplate() Template {
	return blackMagicProbeTemplate.clone()
}

// SelectTemplate picks the command sequence matching the detected probe.
func SelectTemplate(res probe.Result) Template {
	if res.Kind == probe.BlackMagicProbe {
		return BlackMagicProbeTemplate()
	}
	return ProbeRSTemplate()
}

func (t Template) clone() Template {
	res := Template{Name: t.Name, Commands: make([]CommandTemplate, len(t.Commands))}
	for i, c := range t.Commands {
		c.Args = slices.Clone(c.Args)
		res.Commands[i] = c
	}
	return res
}
