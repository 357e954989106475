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
	"strings"

	"github.com/arduino/arduino-probeflasher/config"
)

// Command is a command line ready to be executed.
type Command struct {
	Step    Step        `json:"step"`
	Tool    config.Tool `json:"tool"`
	Program string      `json:"program"`
	Args    []string    `json:"args"`
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Program}, c.Args...), " ")
}

// Render turns the template into executable commands: every tool is resolved
// through the toolchain and every placeholder is replaced with its value.
// Replacement is done in a single pass so a value is never scanned again.
func Render(tmpl Template, ctx *Context, toolchain *config.Toolchain) []Command {
	replacer := strings.NewReplacer(
		ChipID, ctx.Chip,
		PathELF, ctx.ELF,
		PathHex, ctx.Hex,
		PathBin, ctx.Bin,
		ComPort, ctx.ComPort,
		BuildProfile, toolchain.BuildProfile,
		GDBScript, toolchain.GDBScript,
	)
	res := make([]Command, 0, len(tmpl.Commands))
	for _, c := range tmpl.Commands {
		args := make([]string, len(c.Args))
		for i, arg := range c.Args {
			args[i] = replacer.Replace(arg)
		}
		res = append(res, Command{
			Step:    c.Step,
			Tool:    c.Tool,
			Program: toolchain.Executable(c.Tool),
			Args:    args,
		})
	}
	return res
}
