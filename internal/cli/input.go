package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/reoring/etdoc"
)

const stdinName = "<stdin>"

// readInput reads the named file, or standard input for "" and "-". The
// returned name is the one to use in messages.
func (c *command) readInput(name string) ([]byte, string, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(c.in)
		if err != nil {
			return nil, stdinName, fmt.Errorf("reading %s: %w", stdinName, err)
		}
		return data, stdinName, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, name, err
	}
	return data, name, nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// describe renders err as "name:line: message" when it maps onto an Issue.
func describe(name string, err error) string {
	is, ok := etdoc.AsIssue(err)
	if !ok {
		return fmt.Sprintf("%s: %v", name, err)
	}
	if is.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", name, is.Line, is.Message)
	}
	return fmt.Sprintf("%s: %s", name, is.Message)
}

// failure wraps a codec error into an exit status 1 with a located message.
func failure(name string, err error) error {
	return &ExitError{Code: 1, Message: describe(name, err)}
}

// decodeInput reads and decodes one input.
func (c *command) decodeInput(arg string, opts ...etdoc.DecodeOpt) (*etdoc.Document, string, error) {
	data, name, err := c.readInput(arg)
	if err != nil {
		return nil, name, err
	}
	doc, err := etdoc.DecodeBytes(data, opts...)
	if err != nil {
		return nil, name, failure(name, err)
	}
	c.log.Debug("decoded document", "input", name, "keys", doc.Len())
	return doc, name, nil
}

// canonical returns the file form of encoded text: non-empty text ends with
// a newline.
func canonical(text string) string {
	if text == "" {
		return ""
	}
	return text + "\n"
}
