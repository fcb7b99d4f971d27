package fmte

import (
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var p = message.NewPrinter(language.English)

// Guards both output streams so lines from different goroutines never interleave
var mx sync.Mutex

var out io.Writer = os.Stdout

var errOut io.Writer = os.Stderr

var normalPrint = true

var verbosePrint = false

// Off turns off normal and verbose printing (errors are still printed)
func Off() {
	normalPrint = false
}

// VerboseOn turns on verbose printing
func VerboseOn() {
	verbosePrint = true
}

// SetOutput redirects normal and error output, returning a function that restores the previous writers
func SetOutput(stdout, stderr io.Writer) (restore func()) {
	mx.Lock()
	prevOut, prevErr := out, errOut
	out, errOut = stdout, stderr
	mx.Unlock()
	return func() {
		mx.Lock()
		out, errOut = prevOut, prevErr
		mx.Unlock()
	}
}

// Printf is a goroutine-safe fmt.Printf with English number formatting
func Printf(format string, a ...any) {
	if !normalPrint {
		return
	}
	mx.Lock()
	_, _ = p.Fprintf(out, format, a...)
	mx.Unlock()
}

// PrintfV is Printf that prints only in verbose mode
func PrintfV(format string, a ...any) {
	if !normalPrint || !verbosePrint {
		return
	}
	mx.Lock()
	_, _ = p.Fprintf(out, format, a...)
	mx.Unlock()
}

// PrintfErr is Printf to standard error
func PrintfErr(format string, a ...any) {
	mx.Lock()
	_, _ = p.Fprintf(errOut, format, a...)
	mx.Unlock()
}

// Sprintf formats like Printf (e.g. 10000000 becomes "10,000,000" with %d)
func Sprintf(format string, a ...any) string {
	return p.Sprintf(format, a...)
}

// Errors combines multiple errors into one, under given message
func Errors(message string, errs []error) error {
	var sb strings.Builder
	sb.WriteString(message)
	sb.WriteString(": ")
	for i, err := range errs {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return errors.New(sb.String())
}
