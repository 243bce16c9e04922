package util

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCmdErr(t *testing.T) {
	defer log.SetHandler(log.Log.(*log.Logger).Handler)

	var usage bytes.Buffer
	cmd := &cobra.Command{Use: "create-serenity"}
	cmd.SetOut(&usage)
	cmd.SetErr(&usage)

	tests := []struct {
		name      string
		err       error
		exitCode  int
		message   string
		showUsage bool
	}{
		{"no error", nil, 0, "", false},
		{"argument error", NewArgError("unknown flag"), 1, "unknown flag", true},
		{"aborted", fmt.Errorf("install: %w", ErrCmdAbort), 1, "", false},
		{"percent in message", errors.New(`failed to open "/tmp/100%done"`), 1,
			`failed to open "/tmp/100%done"`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := memory.New()
			log.SetHandler(handler)
			usage.Reset()

			assert.Equal(t, tt.exitCode, reportCmdErr(cmd, tt.err))
			if tt.message == "" {
				assert.Empty(t, handler.Entries)
			} else {
				require.Len(t, handler.Entries, 1)
				assert.Equal(t, tt.message, handler.Entries[0].Message)
				assert.Equal(t, log.ErrorLevel, handler.Entries[0].Level)
			}
			assert.Equal(t, tt.showUsage, usage.Len() > 0)
		})
	}
}

func TestJoinPaths(t *testing.T) {
	assert.Equal(t, filepath.Join("a", "b", "c"), JoinPaths("a", "b", "c"))
	abs := t.TempDir()
	assert.Equal(t, filepath.Join(abs, "c"), JoinPaths("a", abs, "c"))
	assert.Equal(t, "", JoinPaths())
}
