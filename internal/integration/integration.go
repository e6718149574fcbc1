// Package integration renders shell integration snippets.
package integration

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
)

// Shells lists the shells a completion script can be rendered for.
//
//nolint:gochecknoglobals // Config constant
var Shells = []string{"bash", "zsh", "fish", "powershell"}

// Render renders the completion script of cmd for the given shell.
func Render(cmd *cobra.Command, shell string) (string, error) {
	var buf bytes.Buffer

	var err error

	switch shell {
	case "bash":
		err = cmd.GenBashCompletionV2(&buf, true)
	case "zsh":
		err = cmd.GenZshCompletion(&buf)
	case "fish":
		err = cmd.GenFishCompletion(&buf, true)
	case "powershell":
		err = cmd.GenPowerShellCompletionWithDesc(&buf)
	default:
		return "", fmt.Errorf("unsupported shell %q: must be one of %v", shell, Shells)
	}

	if err != nil {
		return "", fmt.Errorf("rendering %s completion: %w", shell, err)
	}

	return buf.String(), nil
}
