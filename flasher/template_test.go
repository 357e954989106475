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
	"regexp"
	"strings"
	"testing"

	"github.com/arduino/arduino-probeflasher/config"
	"github.com/arduino/arduino-probeflasher/probe"
	"github.com/stretchr/testify/require"
)

var placeholderRegexp = regexp.MustCompile(`\{[a-z_]+\}`)

func steps(tmpl Template) []Step {
	res := []Step{}
	for _, c := range tmpl.Commands {
		res = append(res, c.Step)
	}
	return res
}

func TestSelectTemplate(t *testing.T) {
	probeRSSteps := []Step{Clean, Erase, Build, ConvertHex, ConvertBin, Download}
	for _, kind := range []probe.Kind{probe.JLink, probe.STLink, probe.None} {
		t.Run(kind.String(), func(t *testing.T) {
			tmpl := SelectTemplate(probe.Result{Kind: kind})
			require.Equal(t, "probe-rs", tmpl.Name)
			require.Equal(t, probeRSSteps, steps(tmpl))
		})
	}

	tmpl := SelectTemplate(probe.Result{Kind: probe.BlackMagicProbe, ComPort: "COM4"})
	require.Equal(t, "black-magic-probe", tmpl.Name)
	require.Equal(t, []Step{Clean, Build, ConvertHex, ConvertBin, GDBFlash}, steps(tmpl))
	for _, c := range tmpl.Commands {
		require.NotEqual(t, config.Probe, c.Tool)
	}
}

func TestTemplatesAreImmutable(t *testing.T) {
	tmpl := ProbeRSTemplate()
	tmpl.Commands[1].Args[2] = "tampered"
	tmpl.Commands = tmpl.Commands[:1]

	fresh := ProbeRSTemplate()
	require.Len(t, fresh.Commands, 6)
	require.Equal(t, []string{"erase", "--chip", ChipID}, fresh.Commands[1].Args)
}

func TestRender(t *testing.T) {
	ctx, err := NewContext("firmware", "STM32F103", "COM1")
	require.NoError(t, err)
	toolchain := config.Default()

	cmds := Render(ProbeRSTemplate(), ctx, toolchain)
	lines := []string{}
	for _, c := range cmds {
		lines = append(lines, c.String())
	}
	require.Equal(t, []string{
		"cargo clean",
		"probe-rs erase --chip STM32F103",
		"cargo build --profile gdb",
		"arm-none-eabi-objcopy -O ihex ./firmware.elf ./firmware.elf.hex",
		"arm-none-eabi-objcopy -O binary ./firmware.elf ./firmware.elf.bin",
		"probe-rs download --chip STM32F103 ./firmware.elf",
	}, lines)

	bmp := Render(BlackMagicProbeTemplate(), ctx.WithComPort("COM5"), toolchain)
	gdb := bmp[len(bmp)-1]
	require.Equal(t, GDBFlash, gdb.Step)
	require.Equal(t, "arm-none-eabi-gdb", gdb.Program)
	require.Equal(t, []string{
		"-nx", "--batch",
		"-ex", "target extended-remote COM5",
		"-x", "black_magic_probe_flash.scr",
		"./firmware.elf",
	}, gdb.Args)
}

func TestRenderReplacesEveryPlaceholder(t *testing.T) {
	ctx, err := NewContext("fw", "STM32G431R8", "COM3")
	require.NoError(t, err)
	toolchain := config.Default()
	toolchain.ProbeRS = "/opt/bin/probe-rs"
	toolchain.BuildProfile = "release"

	for _, tmpl := range []Template{ProbeRSTemplate(), BlackMagicProbeTemplate()} {
		t.Run(tmpl.Name, func(t *testing.T) {
			for i, c := range Render(tmpl, ctx, toolchain) {
				require.Equal(t, toolchain.Executable(tmpl.Commands[i].Tool), c.Program)
				require.Len(t, c.Args, len(tmpl.Commands[i].Args))
				for j, arg := range c.Args {
					require.False(t, placeholderRegexp.MatchString(arg), "placeholder left in %q", arg)
					orig := tmpl.Commands[i].Args[j]
					if !strings.Contains(orig, "{") {
						require.Equal(t, orig, arg, "token without placeholder must be unchanged")
					}
				}
			}
		})
	}
}

func TestRenderDoesNotRescanValues(t *testing.T) {
	// a value looking like another placeholder is left alone
	ctx, err := NewContext("{chip_id}", "STM32F103", "COM1")
	require.NoError(t, err)
	cmds := Render(ProbeRSTemplate(), ctx, config.Default())
	require.Equal(t, "probe-rs download --chip STM32F103 ./{chip_id}.elf", cmds[5].String())
}
