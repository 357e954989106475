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

package detect

import (
	"encoding/json"
	"testing"

	"github.com/arduino/arduino-probeflasher/probe"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	res := &Result{Probe: probe.Result{Kind: probe.BlackMagicProbe, ComPort: "COM6"}, Detected: true}
	require.Equal(t, "Black Magic Probe debug probe detected in COM6", res.String())

	d, err := json.Marshal(res.Data())
	require.NoError(t, err)
	require.JSONEq(t, `{"probe":{"kind":"Black Magic Probe","com_port":"COM6"},"detected":true}`, string(d))

	none := &Result{}
	require.Equal(t, "No debug probes were found", none.String())
}
