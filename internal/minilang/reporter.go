package minilang

import (
	"fmt"
	"io"
)

// Reporter defines the interface for structures that can receive errors found
// during scanning. A reporter separates error collection from error display.
type Reporter interface {
	Report(err error)
	HadError() bool
	Reset()
}

// SimpleReporter writes errors as-is to an inner writer
type SimpleReporter struct {
	writer io.Writer
	hadErr bool
}

func NewSimpleReporter(writer io.Writer) Reporter {
	return &SimpleReporter{writer, false}
}

func (reporter *SimpleReporter) Report(err error) {
	reporter.hadErr = true
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
}

// ErrorList collects reported errors in order so a caller can attach them to
// an analysis result.
type ErrorList struct {
	errors []error
}

func NewErrorList() *ErrorList {
	return &ErrorList{make([]error, 0)}
}

func (list *ErrorList) Report(err error) {
	list.errors = append(list.errors, err)
}

func (list *ErrorList) HadError() bool {
	return len(list.errors) != 0
}

func (list *ErrorList) Reset() {
	list.errors = list.errors[:0]
}

func (list *ErrorList) Errors() []error {
	return list.errors
}
