package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	// Test cases
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd", "-a", "https://fn.example", "-t", "30", "-k", "tok"}, expectPanic: false,
			expected: &Config{ServerBaseURL: "https://fn.example", RequestTimeout: 30 * time.Second, AccessToken: "tok"}},
		{name: "Test2 incorrect timeout", args: []string{"cmd", "-a", "https://fn.example", "-t", "abc"}, expectPanic: true, expected: &Config{}},
		{name: "Test3 foreign flags ignored", args: []string{"cmd", "-c", "x.json", "-t", "5"}, expectPanic: false,
			expected: &Config{RequestTimeout: 5 * time.Second}},
	}

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {

				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
