package runner

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/kr/pretty"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Printer writes the outcome of one step.
type Printer interface {
	Print(w io.Writer, step int, label string, value any) error
}

// JSONPrinter writes the label line followed by the value as indented JSON.
type JSONPrinter struct {
	// Compact puts the value on the same line as the label.
	Compact bool
}

func (p JSONPrinter) Print(w io.Writer, step int, label string, value any) error {
	var (
		raw []byte
		err error
	)
	if p.Compact {
		raw, err = json.Marshal(value)
	} else {
		raw, err = json.MarshalIndent(value, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	sep := "\n"
	if p.Compact {
		sep = " "
	}
	_, err = fmt.Fprintf(w, "%d. %s:%s%s\n", step, label, sep, raw)
	return err
}

// PrettyPrinter dumps the value as Go syntax.
type PrettyPrinter struct{}

func (PrettyPrinter) Print(w io.Writer, step int, label string, value any) error {
	_, err := fmt.Fprintf(w, "%d. %s:\n%# v\n", step, label, pretty.Formatter(value))
	return err
}
