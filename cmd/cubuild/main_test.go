package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		args         []string
		expectedExit int
	}{
		{
			name:         "clean in an empty checkout succeeds",
			args:         []string{"cubuild", "clean"},
			expectedExit: 0,
		},
		{
			name:         "unknown target fails before any action",
			args:         []string{"cubuild", "frobnicate"},
			expectedExit: 1,
		},
		{
			name:         "version",
			args:         []string{"cubuild", "version"},
			expectedExit: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()

			originalWd, err := os.Getwd()
			if err != nil {
				t.Fatalf("failed to get working directory: %v", err)
			}
			if err := os.Chdir(tmpDir); err != nil {
				t.Fatalf("failed to chdir: %v", err)
			}
			defer func() {
				_ = os.Chdir(originalWd)
			}()

			os.Args = tt.args
			assert.Equal(t, tt.expectedExit, run())
		})
	}
}
