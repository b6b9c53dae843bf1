package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// shouldPrompt decides whether a missing argument may be asked for.
func shouldPrompt(noInput bool) bool {
	if noInput {
		return false
	}
	return term.IsTerminal(int(os.Stdin.Fd())) //nolint:gosec // Fd fits in int on supported platforms
}

// promptLine reads one line from the terminal. An empty answer yields def,
// or asks again when def is empty.
func promptLine(prompt string, completions []string, def string) (string, error) {
	var completer readline.AutoCompleter
	if len(completions) > 0 {
		items := make([]readline.PrefixCompleterInterface, 0, len(completions))
		for _, c := range completions {
			items = append(items, readline.PcItem(c))
		}
		completer = readline.NewPrefixCompleter(items...)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return "", fmt.Errorf("failed to initialize prompt: %w", err)
	}
	defer func() { _ = rl.Close() }()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return "", errors.New("aborted")
		}
		if err != nil {
			return "", err
		}
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
		if def != "" {
			return def, nil
		}
	}
}
