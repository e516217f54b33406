package cli

import (
	"bytes"
	"testing"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()

	want := []string{"render", "serve", "cache", "completion"}
	for _, name := range want {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("expected %q subcommand to be registered", name)
		}
	}
}

func TestNewSetsLogLevel(t *testing.T) {
	c := New(&bytes.Buffer{}, LogDebug)
	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("got level %v, want %v", c.Logger.GetLevel(), LogDebug)
	}

	c.SetLogLevel(LogInfo)
	if c.Logger.GetLevel() != LogInfo {
		t.Errorf("got level %v, want %v", c.Logger.GetLevel(), LogInfo)
	}
}
