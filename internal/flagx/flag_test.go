package flagx

import (
	"os"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "flag with equals",
			args:         []string{"-config=alt.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "flag followed by another flag (no value)",
			args:         []string{"-c", "-notvalue"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "negative number is a value",
			args:         []string{"-i", "-1", "stretch", "--password", "pw"},
			allowedFlags: []string{"-i"},
			want:         []string{"-i", "-1"},
		},
		{
			name:         "negative decimal is a value",
			args:         []string{"-x", "-2.5"},
			allowedFlags: []string{"-x"},
			want:         []string{"-x", "-2.5"},
		},
		{
			name:         "subcommand tokens are skipped",
			args:         []string{"visualize", "-d", "postgres://x", "--message", "hi", "-k", "iterated"},
			allowedFlags: []string{"-d", "-k"},
			want:         []string{"-d", "postgres://x", "-k", "iterated"},
		},
		{
			name:         "repeated allowed flag is preserved in order",
			args:         []string{"-c", "one.json", "-c", "two.json"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("FilterArgs() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestStripArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		flags []string
		want  []string
	}{
		{
			name:  "globals before and after subcommand",
			args:  []string{"-d", "dsn", "sign", "--key", "alice.pem", "-l=debug", "--message", "hi"},
			flags: []string{"-d", "-l"},
			want:  []string{"sign", "--key", "alice.pem", "--message", "hi"},
		},
		{
			name:  "long flags with equals stay",
			args:  []string{"hash", "--text=abc", "-k", "iterated"},
			flags: []string{"-k"},
			want:  []string{"hash", "--text=abc"},
		},
		{
			name:  "nothing to strip",
			args:  []string{"demo"},
			flags: []string{"-d"},
			want:  []string{"demo"},
		},
		{
			name:  "negative value is stripped with its flag",
			args:  []string{"-i", "-1", "stretch"},
			flags: []string{"-i"},
			want:  []string{"stretch"},
		},
		{
			name:  "global followed by subcommand flag keeps the subcommand flag",
			args:  []string{"-d", "--password", "pw"},
			flags: []string{"-d"},
			want:  []string{"--password", "pw"},
		},
		{
			name:  "valueless global at end",
			args:  []string{"keys", "-d"},
			flags: []string{"-d"},
			want:  []string{"keys"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripArgs(tt.args, tt.flags))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short -c with value", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/short.json"}
		assert.Equal(t, "/path/short.json", ConfigFileFlag())
	})

	t.Run("long -config with value", func(t *testing.T) {
		os.Args = []string{"testbin", "demo", "-config", "/path/long.json"}
		assert.Equal(t, "/path/long.json", ConfigFileFlag())
	})

	t.Run("unknown flags are ignored", func(t *testing.T) {
		os.Args = []string{"testbin", "-x", "1", "-y", "2"}
		assert.Empty(t, ConfigFileFlag())
	})

	t.Run("multiple flags, last wins", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/1.json", "-config", "/path/2.json"}
		assert.Equal(t, "/path/2.json", ConfigFileFlag())
	})
}
