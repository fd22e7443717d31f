package mazeio

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]int
	}{
		{name: "json", input: "[[0,1],[1,0]]", want: [][]int{{0, 1}, {1, 0}}},
		{name: "json with whitespace", input: "\n  [[0, 0, 1]]\n", want: [][]int{{0, 0, 1}}},
		{name: "spaced text", input: "0 1 0\n1 0 0\n", want: [][]int{{0, 1, 0}, {1, 0, 0}}},
		{name: "comma text", input: "0,1\n1,0", want: [][]int{{0, 1}, {1, 0}}},
		{name: "packed text", input: "0110\n0000", want: [][]int{{0, 1, 1, 0}, {0, 0, 0, 0}}},
		{name: "comments and blanks", input: "# sample\n\n01\n  \n10\n", want: [][]int{{0, 1}, {1, 0}}},
		// shape is not checked here
		{name: "ragged text", input: "01\n0", want: [][]int{{0, 1}, {0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse(strings.NewReader("   \n"))
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Parse(strings.NewReader("# only a comment\n"))
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Parse(strings.NewReader("[]"))
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Parse(strings.NewReader("[[0,1],"))
	assert.ErrorContains(t, err, "decode maze json")

	_, err = Parse(strings.NewReader("01\n0x1\n"))
	assert.ErrorContains(t, err, "line 2")
	assert.ErrorContains(t, err, "column 2")

	readErr := errors.New("disk gone")
	_, err = Parse(iotest.ErrReader(readErr))
	assert.ErrorIs(t, err, readErr)
}
