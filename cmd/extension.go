package cmd

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"syscall"
)

// Environment variables passing the global flags to extensions.
const (
	EnvDataDir   = "SF_DATA_DIR"
	EnvFormat    = "SF_FORMAT"
	EnvReference = "SF_REFERENCE"
	EnvColumn    = "SF_COLUMN"
	EnvVerbose   = "SF_VERBOSE"
)

// RunExtension attempts to find and execute an external sf-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "sf-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extensionEnv()...)

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv returns the global flags as environment variables.
func extensionEnv() []string {
	return []string{
		EnvDataDir + "=" + *dataDir,
		EnvFormat + "=" + *format,
		EnvReference + "=" + *reference,
		EnvColumn + "=" + *column,
		EnvVerbose + "=" + strconv.FormatBool(*Verbose),
	}
}

// IsCommand reports whether name is a builtin subcommand of sf.
func IsCommand(name string) bool {
	for _, c := range Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}
