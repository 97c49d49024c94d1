package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveAccents(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "Nguyễn Văn Đức", expected: "Nguyen Van Duc"},
		{input: "Trần Thị Hằng", expected: "Tran Thi Hang"},
		{input: "no accents", expected: "no accents"},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RemoveAccents(tt.input))
	}
}
