package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// readText returns the command's text input: the joined arguments, the named
// file, or stdin when file is "-" or nothing else is given. One trailing line
// terminator is dropped so that a final newline does not add an empty line.
func readText(cmd *cobra.Command, args []string, file string) (string, error) {
	if len(args) > 0 && file != "" {
		return "", fmt.Errorf("give either text arguments or --file, not both")
	}

	var raw []byte
	var err error
	switch {
	case len(args) > 0:
		return trimLineEnd(strings.Join(args, " ")), nil
	case file == "" || file == "-":
		raw, err = io.ReadAll(cmd.InOrStdin())
	default:
		raw, err = os.ReadFile(file)
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return trimLineEnd(string(raw)), nil
}

// trimLineEnd removes a single trailing "\r\n", "\n" or "\r". Blank lines
// before it are kept.
func trimLineEnd(s string) string {
	switch {
	case strings.HasSuffix(s, "\r\n"):
		return s[:len(s)-2]
	case strings.HasSuffix(s, "\n"), strings.HasSuffix(s, "\r"):
		return s[:len(s)-1]
	}
	return s
}
