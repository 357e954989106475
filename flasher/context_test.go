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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewContext(t *testing.T) {
	tests := []struct {
		arg, output, elf, hex, bin string
	}{
		{"firmware", "./firmware", "./firmware.elf", "./firmware.elf.hex", "./firmware.elf.bin"},
		{"firmware.elf", "./firmware.elf", "./firmware.elf", "./firmware.elf.hex", "./firmware.elf.bin"},
		{"./firmware", "./firmware", "./firmware.elf", "./firmware.elf.hex", "./firmware.elf.bin"},
		{"target/gdb/app", "./target/gdb/app", "./target/gdb/app.elf", "./target/gdb/app.elf.hex", "./target/gdb/app.elf.bin"},
		{"/tmp/app", "/tmp/app", "/tmp/app.elf", "/tmp/app.elf.hex", "/tmp/app.elf.bin"},
	}
	for _, test := range tests {
		t.Run(test.arg, func(t *testing.T) {
			ctx, err := NewContext(test.arg, "STM32G431R8", "COM1")
			require.NoError(t, err)
			require.Equal(t, test.output, ctx.BuildOutput)
			require.Equal(t, test.elf, ctx.ELF)
			require.Equal(t, test.hex, ctx.Hex)
			require.Equal(t, test.bin, ctx.Bin)
			require.Equal(t, "STM32G431R8", ctx.Chip)
			require.Equal(t, "COM1", ctx.ComPort)
		})
	}
}

func TestNewContextMissingELF(t *testing.T) {
	_, err := NewContext("", "STM32G431R8", "COM1")
	require.ErrorIs(t, err, ErrMissingELF)
	_, err = NewContext("  ", "STM32G431R8", "COM1")
	require.ErrorIs(t, err, ErrMissingELF)
}

func TestWithComPort(t *testing.T) {
	ctx, err := NewContext("firmware", "STM32F103", "COM1")
	require.NoError(t, err)
	other := ctx.WithComPort("COM9")
	require.Equal(t, "COM9", other.ComPort)
	require.Equal(t, "COM1", ctx.ComPort)
	require.Equal(t, ctx.ELF, other.ELF)
}
