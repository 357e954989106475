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
	"errors"
	"path/filepath"
	"strings"
)

// ErrMissingELF is returned when no firmware path has been given.
var ErrMissingELF = errors.New("<path_elf> argument is required")

// Context holds the parameters of a single flash run. It is never modified
// once created.
type Context struct {
	Chip string `json:"chip"`
	// BuildOutput is the file produced by the build tool, as given by the user.
	BuildOutput string `json:"build_output"`
	// ELF is the canonical firmware path, always ending with ".elf".
	ELF     string `json:"elf"`
	Hex     string `json:"hex"`
	Bin     string `json:"bin"`
	ComPort string `json:"com_port"`
}

// NewContext derives the artifact paths from the firmware argument: given
// "firmware" (or "firmware.elf") they are ./firmware.elf, ./firmware.elf.hex
// and ./firmware.elf.bin. Absolute paths are kept as they are.
func NewContext(elfArg, chip, comPort string) (*Context, error) {
	if strings.TrimSpace(elfArg) == "" {
		return nil, ErrMissingELF
	}
	output := relativeToWorkdir(elfArg)
	elf := output
	if !strings.HasSuffix(elf, ".elf") {
		elf += ".elf"
	}
	return &Context{
		Chip:        chip,
		BuildOutput: output,
		ELF:         elf,
		Hex:         elf + ".hex",
		Bin:         elf + ".bin",
		ComPort:     comPort,
	}, nil
}

func relativeToWorkdir(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return "./" + strings.TrimPrefix(filepath.ToSlash(p), "./")
}

// WithComPort returns a copy of the context using the given serial port.
func (c *Context) WithComPort(port string) *Context {
	res := *c
	res.ComPort = port
	return &res
}
