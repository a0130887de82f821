package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

// getEditor returns the user's preferred editor from environment variables.
// It checks EDITOR, then VISUAL, and defaults to vi if neither is set.
func getEditor() string {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		editor = "vi"
	}
	return editor
}

// openEditorFunc is a function variable for opening the editor, allowing it to be mocked in tests.
var openEditorFunc = openEditor

// openEditor opens the specified file in the user's editor, wired to the command's streams.
// It returns an error if the editor cannot be started or exits with a non-zero status.
func openEditor(cmd *cobra.Command, filePath string) error {
	editor := getEditor()

	ec := exec.CommandContext(cmd.Context(), editor, filePath)
	ec.Stdin = cmd.InOrStdin()
	ec.Stdout = cmd.OutOrStdout()
	ec.Stderr = cmd.ErrOrStderr()

	if err := ec.Run(); err != nil {
		return fmt.Errorf("failed to run editor %s: %w", editor, err)
	}

	return nil
}
