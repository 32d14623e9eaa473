package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionRequest_FlexibleIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want uint
	}{
		{"number", `{"action":"deleteQuestion","userId":7}`, 7},
		{"string", `{"action":"deleteQuestion","userId":"7"}`, 7},
		{"empty string", `{"action":"deleteQuestion","userId":""}`, 0},
		{"null", `{"action":"deleteQuestion","userId":null}`, 0},
		{"absent", `{"action":"deleteQuestion"}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req ActionRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.UserID.Uint())
		})
	}
}

func TestActionRequest_RejectsNonNumericID(t *testing.T) {
	t.Parallel()

	var req ActionRequest
	err := json.Unmarshal([]byte(`{"action":"deleteQuestion","userId":"abc"}`), &req)
	assert.Error(t, err)
}
