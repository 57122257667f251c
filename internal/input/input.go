package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/jhillyerd/enmime/v2"
	log "github.com/sirupsen/logrus"
)

const Stdin = "-"

var ErrEmptySource = errors.New("message has no text content")

// mime messages are recognised by extension
var messageExtensions = []string{".eml", ".mime"}

// Loader reads texts from files, MIME messages or stdin.
type Loader struct {
	Stdin     io.Reader
	stdinUsed bool
}

func NewLoader() *Loader {
	return &Loader{Stdin: os.Stdin}
}

func (l *Loader) Load(source string) (string, error) {
	var data []byte
	var err error
	if source == Stdin {
		if l.stdinUsed {
			return "", errors.New("stdin can only be read once")
		}
		l.stdinUsed = true
		data, err = io.ReadAll(l.Stdin)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", source, err)
	}

	var text string
	if isMessage(source) {
		text, err = messageText(data)
		if err != nil {
			return "", fmt.Errorf("parsing message %s: %w", source, err)
		}
	} else {
		text = string(data)
	}
	if !utf8.ValidString(text) {
		log.Warnf("Input %s is not valid UTF-8, replacing invalid bytes", source)
		text = strings.ToValidUTF8(text, "\uFFFD")
	}
	log.Debugf("Loaded %d bytes of text from %s", len(text), source)
	return text, nil
}

func isMessage(source string) bool {
	return slices.Contains(messageExtensions, strings.ToLower(filepath.Ext(source)))
}

// messageText returns the plain text part, html only messages are converted
func messageText(data []byte) (string, error) {
	envelope, err := enmime.ReadEnvelope(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	for _, e := range envelope.Errors {
		log.Warnf("Message parsing issue: %v", e)
	}
	if strings.TrimSpace(envelope.Text) == "" {
		return "", ErrEmptySource
	}
	return envelope.Text, nil
}
