package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339", `"2025-11-20T14:03:12Z"`, time.Date(2025, 11, 20, 14, 3, 12, 0, time.UTC)},
		{"rfc3339 with offset", `"2025-11-20T17:03:12+03:00"`, time.Date(2025, 11, 20, 14, 3, 12, 0, time.UTC)},
		{"naive with microseconds", `"2025-11-20T14:03:12.123456"`, time.Date(2025, 11, 20, 14, 3, 12, 123456000, time.UTC)},
		{"naive without fraction", `"2025-11-20T14:03:12"`, time.Date(2025, 11, 20, 14, 3, 12, 0, time.UTC)},
		{"empty string", `""`, time.Time{}},
		{"null", `null`, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Time
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.True(t, tt.want.Equal(got.Time), "got %v", got.Time)
		})
	}
}

func TestTime_UnmarshalJSONRejectsGarbage(t *testing.T) {
	var got Time
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &got))
	assert.Error(t, json.Unmarshal([]byte(`42`), &got))
}

func TestTime_MarshalJSONIsRFC3339(t *testing.T) {
	b, err := json.Marshal(Time{Time: time.Date(2025, 11, 20, 14, 3, 12, 0, time.UTC)})

	require.NoError(t, err)
	assert.Equal(t, `"2025-11-20T14:03:12Z"`, string(b))
}
