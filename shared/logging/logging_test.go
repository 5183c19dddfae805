package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
		debug   bool
	}{
		{name: "info", level: "info"},
		{name: "debug", level: "debug", debug: true},
		{name: "unknown", level: "chatty", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(&buf, tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			logger.Debug("hidden unless debug")
			logger.Info("level loaded", "name", "arena")
			out := buf.String()
			assert.Contains(t, out, Prefix)
			assert.Contains(t, out, "name=arena")
			assert.Equal(t, tt.debug, bytes.Contains(buf.Bytes(), []byte("hidden unless debug")))
		})
	}
}
