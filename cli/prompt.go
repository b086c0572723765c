package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// promptLine reads one trimmed line from the app's input.
func (a *App) promptLine(label string) (string, error) {
	fmt.Fprintf(a.Out, "%s: ", label)
	reader := bufio.NewReader(a.In)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a password without echoing when stdin is a
// terminal; in pipes and tests it falls back to a plain line read.
func (a *App) promptPassword(label string) (string, error) {
	file, ok := a.In.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return a.promptLine(label)
	}
	fmt.Fprintf(a.Out, "%s: ", label)
	raw, err := term.ReadPassword(int(file.Fd()))
	fmt.Fprintln(a.Out)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}
