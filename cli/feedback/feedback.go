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

package feedback

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ExitCode to be used for Fatal.
type ExitCode int

const (
	// Success (0 is the no-error return code in Unix)
	Success ExitCode = iota

	// ErrGeneric Generic error (1 is the reserved "catchall" code in Unix).
	// It is also returned when the firmware path is missing.
	ErrGeneric

	_ // (2 Is reserved in Unix)

	// ErrNoConfigFile is returned when the config file given with --config is not found (3)
	ErrNoConfigFile

	_ // (4 was ErrBadCall and has been removed)

	_ // (5 was ErrNetwork, nothing is downloaded by this tool)

	// ErrCoreConfig is returned when the toolchain configuration can't be loaded (6)
	ErrCoreConfig

	// ErrBadArgument is returned when the arguments are not valid (7)
	ErrBadArgument
)

// OutputFormat is an output format
type OutputFormat int

const (
	// Text is the plain text format, suitable for interactive terminals
	Text OutputFormat = iota
	// JSON format
	JSON
)

var formats = map[string]OutputFormat{
	"json": JSON,
	"text": Text,
}

func (f OutputFormat) String() string {
	for res, format := range formats {
		if format == f {
			return res
		}
	}
	panic("unknown output format")
}

// ParseOutputFormat parses a string and returns the corresponding OutputFormat.
// The boolean returned is true if the string was a valid OutputFormat.
func ParseOutputFormat(in string) (OutputFormat, bool) {
	format, found := formats[in]
	return format, found
}

var (
	format         OutputFormat = Text
	formatSelected bool         = false
	stdOut         io.Writer    = os.Stdout
	stdErr         io.Writer    = os.Stderr
	exit                        = os.Exit
)

// Result is anything more complex than a sentence that needs to be printed
// for the user.
type Result interface {
	fmt.Stringer
	Data() interface{}
}

// ErrorResult is a result embedding also an error. In case of textual output
// the error will be printed on stderr.
type ErrorResult interface {
	Result
	ErrorString() string
}

// SetFormat can be used to change the output format at runtime
func SetFormat(f OutputFormat) {
	if formatSelected {
		panic("output format already selected")
	}
	format = f
	formatSelected = true
}

// SetOut changes the writer receiving results and messages
func SetOut(w io.Writer) {
	stdOut = w
}

// SetErr changes the writer receiving errors and warnings
func SetErr(w io.Writer) {
	stdErr = w
}

// SetExitFunc replaces the function terminating the process on Fatal
func SetExitFunc(f func(code int)) {
	exit = f
}

// GetFormat returns the output format currently set
func GetFormat() OutputFormat {
	return format
}

// OutputStreams returns the writers where the output of the external tools
// should go: the console in Text mode, nothing in JSON mode where the output
// is captured and returned as part of the result.
func OutputStreams() (io.Writer, io.Writer) {
	if format == Text {
		return stdOut, stdErr
	}
	return io.Discard, io.Discard
}

// Print outputs a message on stdout, in Text mode only.
func Print(msg string) {
	if format == Text {
		fmt.Fprintln(stdOut, msg)
	}
}

// Warning outputs a warning message on stderr, in Text mode only.
func Warning(msg string) {
	if format == Text {
		fmt.Fprintln(stdErr, msg)
	}
}

// FatalResult outputs the result and exits with status exitCode.
func FatalResult(res ErrorResult, exitCode ExitCode) {
	PrintResult(res)
	exit(int(exitCode))
}

// Fatal outputs the errorMsg and exits with status exitCode.
func Fatal(errorMsg string, exitCode ExitCode) {
	if format == Text {
		fmt.Fprintln(stdErr, errorMsg)
		exit(int(exitCode))
		return
	}

	type FatalError struct {
		Error    string `json:"error"`
		ExitCode int    `json:"exit_code"`
	}
	res := &FatalError{
		Error:    errorMsg,
		ExitCode: int(exitCode),
	}
	var d []byte
	switch format {
	case JSON:
		d, _ = json.MarshalIndent(res, "", "  ")
	default:
		panic("unknown output format")
	}
	fmt.Fprintln(stdOut, string(d))
	exit(int(exitCode))
}

// PrintResult is a convenient wrapper to provide feedback for complex data,
// where the contents can't be just serialized to JSON but requires more
// structure.
func PrintResult(res Result) {
	var data string
	var dataErr string
	switch format {
	case JSON:
		d, err := json.MarshalIndent(res.Data(), "", "  ")
		if err != nil {
			Fatal(fmt.Sprintf("Error during JSON encoding of the output: %v", err), ErrGeneric)
			return
		}
		data = string(d)
	case Text:
		data = res.String()
		if resErr, ok := res.(ErrorResult); ok {
			dataErr = resErr.ErrorString()
		}
	default:
		panic("unknown output format")
	}
	if data != "" {
		fmt.Fprintln(stdOut, data)
	}
	if dataErr != "" {
		fmt.Fprintln(stdErr, dataErr)
	}
}
