package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_Parse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantSet bool
		wantOK  bool
		want    float64
	}{
		{name: "json number", body: `12`, wantSet: true, wantOK: true, want: 12},
		{name: "numeric string", body: `" 0.25 "`, wantSet: true, wantOK: true, want: 0.25},
		{name: "null", body: `null`},
		{name: "empty string", body: `""`},
		{name: "word", body: `"ten"`, wantSet: true},
		{name: "infinity", body: `"Infinity"`, wantSet: true},
		{name: "negative infinity", body: `"-inf"`, wantSet: true},
		{name: "nan", body: `"NaN"`, wantSet: true},
		{name: "overflow", body: `1e400`, wantSet: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			require.NoError(t, json.Unmarshal([]byte(tt.body), &n))

			assert.Equal(t, tt.wantSet, n.IsSet())
			assert.Equal(t, tt.wantOK, n.Valid())
			if tt.wantOK {
				assert.Equal(t, tt.want, n.Float())
			}
		})
	}
}

func TestNumber_UnmarshalParam(t *testing.T) {
	var n Number
	require.NoError(t, n.UnmarshalParam("NaN"))
	assert.True(t, n.IsSet())
	assert.False(t, n.Valid())
	assert.Equal(t, "NaN", n.Raw())

	require.NoError(t, n.UnmarshalParam("7"))
	assert.True(t, n.Valid())
	assert.Equal(t, 7, *n.IntPtr())
}
