package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks the user for confirmations and credentials on the terminal.
type Prompter struct {
	file   *os.File
	reader *bufio.Reader
	writer io.Writer
}

// NewPrompter creates a prompter bound to the given streams. Nil streams
// default to stdin/stdout. The input stream is buffered once so consecutive
// prompts share it; a fresh buffer per read would drop lines already
// buffered on piped input.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}
	file, _ := reader.(*os.File)
	return &Prompter{file: file, reader: bufio.NewReader(reader), writer: writer}
}

// readLine reads the next line from the shared buffer, without the trailing
// newline.
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm asks a yes/no question and returns true only on an explicit yes.
func (p *Prompter) Confirm(question string) (bool, error) {
	if _, err := fmt.Fprintf(p.writer, "%s [y/N]: ", PromptStyle.Render(question)); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	answer, err := p.readLine()
	if err != nil {
		if err == io.EOF {
			return false, nil
		}
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

// ReadLine prompts for a single line of input.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.writer, FormatPrompt(prompt)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := p.readLine()
	if err != nil {
		if err == io.EOF {
			return "", io.EOF
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// ReadPassword prompts for a password without echoing when the input is a
// terminal. Non-terminal input (tests, pipes) falls back to a plain line
// read.
func (p *Prompter) ReadPassword(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.writer, FormatPrompt(prompt)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	if p.file != nil && term.IsTerminal(int(p.file.Fd())) {
		password, err := term.ReadPassword(int(p.file.Fd()))
		// The user's enter keypress is swallowed by the raw read.
		_, _ = fmt.Fprintln(p.writer)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(password), nil
	}

	line, err := p.readLine()
	if err != nil {
		if err == io.EOF {
			return "", io.EOF
		}
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return line, nil
}
