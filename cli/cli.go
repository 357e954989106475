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

package cli

import (
	"io"
	"os"
	"strings"

	"github.com/arduino/arduino-probeflasher/cli/arguments"
	"github.com/arduino/arduino-probeflasher/cli/detect"
	"github.com/arduino/arduino-probeflasher/cli/feedback"
	"github.com/arduino/arduino-probeflasher/cli/globals"
	"github.com/arduino/arduino-probeflasher/cli/tools"
	"github.com/arduino/arduino-probeflasher/cli/version"
	v "github.com/arduino/arduino-probeflasher/version"
	"github.com/mattn/go-colorable"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	commonFlags  arguments.Flags // contains chip
	dryRun       bool
	outputFormat string
	logFile      string
	logFormat    string
)

// NewCommand creates the root command
func NewCommand() *cobra.Command {
	probeFlasherCli := &cobra.Command{
		Use:   "arduino-probeflasher [-c CHIP] <path_elf>",
		Short: "Builds and flashes firmware through a debug probe.",
		Long: "arduino-probeflasher cleans and builds the Cargo project in the current directory, " +
			"erases the microcontroller, converts the ELF to HEX and BIN and downloads it " +
			"through probe-rs (J-Link, ST-Link) or gdb (Black Magic Probe), depending on the probe detected.",
		Example: "" +
			"  " + os.Args[0] + " firmware\n" +
			"  " + os.Args[0] + " -c STM32F103 target/thumbv7m-none-eabi/gdb/firmware\n" +
			"  " + os.Args[0] + " --dry-run firmware.elf\n",
		Args:             cobra.MaximumNArgs(1),
		Run:              runFlash,
		PersistentPreRun: preRun,
	}

	probeFlasherCli.AddCommand(version.NewCommand())
	probeFlasherCli.AddCommand(detect.NewCommand())
	probeFlasherCli.AddCommand(tools.NewCommand())

	commonFlags.AddToCommand(probeFlasherCli)
	probeFlasherCli.Flags().BoolVar(&dryRun, "dry-run", false, "Detect the probe and print the commands without running them.")

	probeFlasherCli.PersistentFlags().StringVar(&globals.ConfigFile, "config", "", "Toolchain configuration file (default: probeflasher.{yaml,toml} in the current directory).")
	probeFlasherCli.PersistentFlags().StringVar(&outputFormat, "format", "text", "The output format, can be {text|json}.")

	probeFlasherCli.PersistentFlags().StringVar(&logFile, "log-file", "", "Path to the file where logs will be written")
	probeFlasherCli.PersistentFlags().StringVar(&logFormat, "log-format", "", "The output format for the logs, can be {text|json}.")
	probeFlasherCli.PersistentFlags().StringVar(&globals.LogLevel, "log-level", "info", "Messages with this level and above will be logged. Valid levels are: trace, debug, info, warn, error, fatal, panic")
	probeFlasherCli.PersistentFlags().BoolVarP(&globals.Verbose, "verbose", "v", false, "Print the logs on the standard output.")

	return probeFlasherCli
}

// Convert the string passed to the `--log-level` option to the corresponding
// logrus formal level.
func toLogLevel(s string) (t logrus.Level, found bool) {
	t, found = map[string]logrus.Level{
		"trace": logrus.TraceLevel,
		"debug": logrus.DebugLevel,
		"info":  logrus.InfoLevel,
		"warn":  logrus.WarnLevel,
		"error": logrus.ErrorLevel,
		"fatal": logrus.FatalLevel,
		"panic": logrus.PanicLevel,
	}[s]

	return
}

func preRun(cmd *cobra.Command, args []string) {
	// Prepare logging
	if globals.Verbose {
		// if we print on stdout, do it in full colors
		logrus.SetOutput(colorable.NewColorableStdout())
		logrus.SetFormatter(&logrus.TextFormatter{
			ForceColors: true,
		})
	} else {
		logrus.SetOutput(io.Discard)
	}

	// Normalize the format strings
	logFormat = strings.ToLower(logFormat)
	if logFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			feedback.Fatal("Unable to open file for logging: "+logFile, feedback.ErrBadArgument)
		}

		// Use a hook so we don't get color codes in the log file
		if logFormat == "json" {
			logrus.AddHook(lfshook.NewHook(file, &logrus.JSONFormatter{}))
		} else {
			logrus.AddHook(lfshook.NewHook(file, &logrus.TextFormatter{}))
		}
	}

	// Configure logging filter
	if lvl, found := toLogLevel(globals.LogLevel); !found {
		feedback.Fatal("Invalid option for --log-level: "+globals.LogLevel, feedback.ErrBadArgument)
	} else {
		logrus.SetLevel(lvl)
	}

	//
	// Prepare the Feedback system
	//

	// normalize the format strings
	outputFormat = strings.ToLower(outputFormat)
	// check the right output format was passed
	format, found := feedback.ParseOutputFormat(outputFormat)
	if !found {
		feedback.Fatal("Invalid output format: "+outputFormat, feedback.ErrBadArgument)
	}

	// use the output format to configure the Feedback
	feedback.SetFormat(format)

	logrus.Info(v.VersionInfo)

	if outputFormat != "text" {
		cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
			logrus.Warn("Calling help on JSON format")
			feedback.Fatal("Invalid Call : should show Help, but it is available only in TEXT mode.", feedback.ErrBadArgument)
		})
	}
}
