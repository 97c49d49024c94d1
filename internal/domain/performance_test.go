package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusSymbol(t *testing.T) {
	tests := []struct {
		status   string
		expected string
	}{
		{status: "ENABLE", expected: StatusEnabled},
		{status: "CAMPAIGN_STATUS_ENABLE", expected: StatusEnabled},
		{status: "DISABLE", expected: StatusDisabled},
		{status: "CAMPAIGN_STATUS_DISABLE", expected: StatusDisabled},
		{status: "disable", expected: StatusDisabled},
		{status: "DELETE", expected: StatusUnknown},
		{status: "", expected: StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusSymbol(tt.status))
		})
	}
}
