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

package globals

var (
	// DefaultChip is the target used when --chip is not given
	DefaultChip = "STM32G431R8"
	// DefaultComPort is the Black Magic Probe port used when probe-rs doesn't report one
	DefaultComPort = "COM1"

	// ConfigFile is the path given with --config
	ConfigFile string
	// LogLevel is the value of --log-level
	LogLevel string
	// Verbose is the value of --verbose
	Verbose bool
)
