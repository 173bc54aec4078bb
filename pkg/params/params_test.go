package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Params
	}{
		{
			name: "no args",
			args: nil,
			want: Params{Net: 1, Node: 1},
		},
		{
			name: "net only",
			args: []string{"net=3"},
			want: Params{Net: 3, Node: 1},
		},
		{
			name: "node only",
			args: []string{"node=7"},
			want: Params{Net: 1, Node: 7},
		},
		{
			name: "both",
			args: []string{"net=3", "node=7"},
			want: Params{Net: 3, Node: 7},
		},
		{
			name: "order independent",
			args: []string{"node=5", "net=2"},
			want: Params{Net: 2, Node: 5},
		},
		{
			name: "unrecognized keys ignored",
			args: []string{"node=5", "net=2", "extra=ignored"},
			want: Params{Net: 2, Node: 5},
		},
		{
			name: "args without equals ignored",
			args: []string{"latest", "net=2"},
			want: Params{Net: 2, Node: 1},
		},
		{
			name: "last write wins",
			args: []string{"net=2", "net=4", "node=1", "node=6"},
			want: Params{Net: 4, Node: 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_InvalidOrdinal(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "not a number", args: []string{"net=abc"}},
		{name: "zero", args: []string{"net=0"}},
		{name: "negative", args: []string{"node=-3"}},
		{name: "fractional", args: []string{"node=1.5"}},
		{name: "empty value", args: []string{"net="}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args)
			require.Error(t, err)
		})
	}
}

func TestSplit(t *testing.T) {
	selectors, positionals := Split([]string{"deadbeef", "net=2", "node=3", "42"})
	assert.Equal(t, []string{"net=2", "node=3"}, selectors)
	assert.Equal(t, []string{"deadbeef", "42"}, positionals)
}

func TestSplit_Empty(t *testing.T) {
	selectors, positionals := Split(nil)
	assert.Empty(t, selectors)
	assert.Empty(t, positionals)
}
