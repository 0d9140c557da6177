// Package logging routes the standard logger for interactive runs.
package logging

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/pkg/errors"
)

// Setup configures logging.
// If filename is empty, logging is disabled (except log.Fatal/panic), since
// anything written to the terminal would corrupt the sheet.
// If filename is set, log output and Bubble Tea's own logging go to that file.
func Setup(filename string) (cleanup func(), err error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if filename == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	// LogToFile also points the standard logger at the file.
	f, err := tea.LogToFile(filename, "datepick")
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", filename)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	return func() { _ = f.Close() }, nil
}
