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

package programmers

import (
	"bytes"
	"context"
	"fmt"
	"regexp"

	semver "go.bug.st/relaxed-semver"
)

var versionRegexp = regexp.MustCompile(`\d+\.\d+(\.\d+)?([-+][0-9A-Za-z.-]+)?`)

// QueryVersion runs `program --version` and parses the first version number
// found in the first line of its output.
func QueryVersion(ctx context.Context, runner Runner, program string) (*semver.RelaxedVersion, error) {
	stdout, _, err := runner.Capture(ctx, program, []string{"--version"})
	if err != nil {
		return nil, fmt.Errorf("querying %s version: %w", program, err)
	}
	return ParseVersion(stdout)
}

// ParseVersion extracts the version of a tool from its --version banner.
func ParseVersion(banner []byte) (*semver.RelaxedVersion, error) {
	firstLine, _, _ := bytes.Cut(bytes.TrimSpace(banner), []byte("\n"))
	match := versionRegexp.Find(firstLine)
	if match == nil {
		return nil, fmt.Errorf("no version found in %q", firstLine)
	}
	return semver.ParseRelaxed(string(match)), nil
}
