package driver_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tofu-lang/tofu/driver"
)

func TestRunSource(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	r := driver.NewRunner(&out)
	if err := r.RunSource(`let x = 5; // trailing comment`); err != nil {
		t.Errorf("RunSource returned error: %v", err)
	}

	expected := `{LET, "let"}
{IDENT, "x"}
{ASSIGN, "="}
{INT, "5"}
{SEMICOLON, ";"}
`
	if diff := cmp.Diff(expected, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunSourceEmptyInput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := driver.NewRunner(&out).RunSource(""); err != nil {
		t.Errorf("RunSource returned error: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("empty input produced output: %q", out.String())
	}
}

type failingWriter struct{}

var errWrite = errors.New("broken pipe")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestRunSourceWriteError(t *testing.T) {
	t.Parallel()

	err := driver.NewRunner(failingWriter{}).RunSource("let")
	if !errors.Is(err, errWrite) {
		t.Errorf("RunSource error = %v, want wrapped %v", err, errWrite)
	}
}
