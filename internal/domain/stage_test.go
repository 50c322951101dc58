package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStage_String(t *testing.T) {
	tests := []struct {
		stage    Stage
		expected string
	}{
		{StageStart, "start"},
		{StageConnected, "connected"},
		{StageValidated, "validated"},
		{StagePriced, "priced"},
		{StageOrderSubmitted, "order_submitted"},
		{StageRejected, "rejected"},
		{StageAuthFailed, "auth_failed"},
		{Stage(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.stage.String())
		})
	}
}
