package report

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"propcheck/internal/interfaces"
)

// OutputHandler implements the OutputHandler interface
type OutputHandler struct{}

// NewOutputHandler creates a new output handler
func NewOutputHandler() interfaces.OutputHandler {
	return &OutputHandler{}
}

// WriteToClipboard copies content to the system clipboard
func (h *OutputHandler) WriteToClipboard(content string) error {
	return clipboard.WriteAll(content)
}

// WriteToStdout writes content to standard output
func (h *OutputHandler) WriteToStdout(content string) error {
	_, err := fmt.Println(content)
	return err
}

// WriteToFile writes content to the specified file path
func (h *OutputHandler) WriteToFile(content string, path string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
