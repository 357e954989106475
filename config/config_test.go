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
	"testing"

	"github.com/arduino/go-paths-helper"
	"github.com/stretchr/testify/require"
)

func TestLoadYAML(t *testing.T) {
	tc, err := Load(paths.New("testdata", "probeflasher.yaml"))
	require.NoError(t, err)
	require.Equal(t, "/opt/probe-rs/bin/probe-rs", tc.ProbeRS)
	require.Equal(t, "gdb-multiarch", tc.GDB)
	require.Equal(t, "release", tc.BuildProfile)
	// untouched keys keep the defaults
	require.Equal(t, "cargo", tc.Cargo)
	require.Equal(t, "arm-none-eabi-objcopy", tc.Objcopy)
	require.Equal(t, "black_magic_probe_flash.scr", tc.GDBScript)
}

func TestLoadTOML(t *testing.T) {
	tc, err := Load(paths.New("testdata", "probeflasher.toml"))
	require.NoError(t, err)
	require.Equal(t, "/home/dev/.cargo/bin/cargo", tc.Cargo)
	require.Equal(t, "rust-objcopy", tc.Objcopy)
	require.Equal(t, "scripts/bmp.scr", tc.GDBScript)
	require.Equal(t, "probe-rs", tc.ProbeRS)
	require.Equal(t, "gdb", tc.BuildProfile)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(paths.New("testdata", "missing.yaml"))
	require.Error(t, err)

	_, err = Load(paths.New("testdata", "broken.toml"))
	require.ErrorContains(t, err, "parsing config")

	_, err = Load(paths.New("testdata", "blank.yaml"))
	require.ErrorContains(t, err, "cargo must not be empty")
}

func TestFind(t *testing.T) {
	f := Find(paths.New("testdata"))
	require.NotNil(t, f)
	require.Equal(t, "probeflasher.yaml", f.Base())

	require.Nil(t, Find(paths.New("testdata", "nowhere")))
}

func TestExecutable(t *testing.T) {
	tc := Default()
	require.NoError(t, tc.Validate())
	require.Equal(t, "cargo", tc.Executable(Build))
	require.Equal(t, "probe-rs", tc.Executable(Probe))
	require.Equal(t, "arm-none-eabi-objcopy", tc.Executable(Objcopy))
	require.Equal(t, "arm-none-eabi-gdb", tc.Executable(GDB))
	require.Panics(t, func() { tc.Executable(Tool("linker")) })
}
