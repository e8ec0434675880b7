package cli

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, log.InfoLevel)

	if c.Logger == nil {
		t.Fatal("New() returned CLI with nil logger")
	}

	c.Logger.Info("hello")
	if buf.Len() == 0 {
		t.Error("logger should write to the given writer")
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, log.InfoLevel)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Error("debug message should be filtered at info level")
	}

	c.SetLogLevel(log.DebugLevel)
	c.Logger.Debug("visible")
	if buf.Len() == 0 {
		t.Error("debug message should pass after SetLogLevel(debug)")
	}
}

func TestRootCommand(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, log.InfoLevel)

	root := c.RootCommand()
	if root.Use != "pubfig" {
		t.Errorf("root.Use = %q, want %q", root.Use, "pubfig")
	}

	want := map[string]bool{"examples": false, "completion": false}
	for _, sub := range root.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}
