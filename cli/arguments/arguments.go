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

package arguments

import (
	"github.com/arduino/arduino-probeflasher/cli/globals"
	"github.com/spf13/cobra"
)

// Flags contains the flags shared by the commands talking to the target.
type Flags struct {
	Chip string
}

// AddToCommand adds the --chip flag to the specified Command
func (f *Flags) AddToCommand(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Chip, "chip", "c", globals.DefaultChip, "Specify the chip type, e.g.: STM32G431R8, STM32F103C8")
}
