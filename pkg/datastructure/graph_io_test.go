package datastructure

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/lintang-b-s/randcut/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadGraph(t *testing.T) {
	g := buildGraph(6, [][2]Index{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}, {2, 3}, {2, 3}})

	testCases := []struct {
		name     string
		filename string
	}{
		{name: "plain text", filename: "graph.txt"},
		{name: "bzip2", filename: "graph.txt.bz2"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			require.NoError(t, g.WriteGraph(path))

			got, err := ReadGraph(path)
			require.NoError(t, err)
			assert.Equal(t, g.NumberOfVertices(), got.NumberOfVertices())
			assert.Equal(t, g.GetEdges(), got.GetEdges())
		})
	}
}

func TestParseEdgeList(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		expectedN     int
		expectedEdges int
		wantErr       bool
	}{
		{
			name:          "comments and blank lines",
			input:         "# triangle\n3 3\n0 1\n\n1 2\n# closing edge\n2 0\n",
			expectedN:     3,
			expectedEdges: 3,
		},
		{
			name:          "no trailing newline",
			input:         "2 1\n0 1",
			expectedN:     2,
			expectedEdges: 1,
		},
		{
			name:          "crlf line endings",
			input:         "2 1\r\n0 1\r\n",
			expectedN:     2,
			expectedEdges: 1,
		},
		{
			name:      "header only",
			input:     "4 0\n",
			expectedN: 4,
		},
		{name: "empty input", input: "", wantErr: true},
		{name: "endpoint out of range", input: "2 1\n0 2\n", wantErr: true},
		{name: "fewer edges than header", input: "3 2\n0 1\n", wantErr: true},
		{name: "three fields", input: "3 1\n0 1 2\n", wantErr: true},
		{name: "not a number", input: "3 1\n0 x\n", wantErr: true},
		{name: "negative vertex", input: "3 1\n-1 0\n", wantErr: true},
		{name: "vertex count above maximum", input: "200000000 1\n0 999999999\n", wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseEdgeList(strings.NewReader(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, util.ErrMalformedInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedN, g.NumberOfVertices())
			assert.Equal(t, tt.expectedEdges, g.NumberOfEdges())
		})
	}
}

func TestParseEdgeListRejectsHugeHeaderBeforeAllocating(t *testing.T) {
	_, err := ParseEdgeList(strings.NewReader("4294967295 1\n0 1\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, util.ErrMalformedInput)
	assert.Contains(t, err.Error(), "exceeds the supported maximum")
}
