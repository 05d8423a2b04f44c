package core_test

import (
	"encoding/json"
	"testing"

	"github.com/leapstack-labs/bashate/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity(t *testing.T) {
	tests := []struct {
		sev    core.Severity
		name   string
		letter string
	}{
		{core.SeverityError, "error", "E"},
		{core.SeverityWarning, "warning", "W"},
		{core.Severity(42), "unknown", "E"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.sev.String())
			assert.Equal(t, tt.letter, tt.sev.Letter())
		})
	}
}

func TestSeverity_MarshalText(t *testing.T) {
	data, err := json.Marshal(core.RuleInfo{ID: "E006", DefaultSeverity: core.SeverityWarning})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"default_severity":"warning"`)
}

func TestSeverity_UnmarshalText(t *testing.T) {
	tests := []struct {
		in      string
		want    core.Severity
		wantErr bool
	}{
		{in: "error", want: core.SeverityError},
		{in: "warning", want: core.SeverityWarning},
		{in: "WARNING", want: core.SeverityWarning},
		{in: "E", want: core.SeverityError},
		{in: "w", want: core.SeverityWarning},
		{in: "unknown", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got core.Severity
			err := got.UnmarshalText([]byte(tt.in))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeverity_JSONRoundTrip(t *testing.T) {
	for _, sev := range []core.Severity{core.SeverityError, core.SeverityWarning} {
		in := core.RuleInfo{ID: "E006", DefaultSeverity: sev}
		data, err := json.Marshal(in)
		require.NoError(t, err)

		var out core.RuleInfo
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	}
}
