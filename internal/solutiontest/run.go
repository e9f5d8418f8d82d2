package solutiontest

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// Solve is the signature of a problem driver.
type Solve func(in io.Reader, out io.Writer) error

// Run executes solve once per fixture under root, each in its own subtest.
func Run(t *testing.T, root string, solve Solve) {
	t.Helper()

	fixtures, err := Fixtures(root)
	require.NoError(t, err)
	require.NotEmpty(t, fixtures, "no testdata/inN.txt under %s", root)

	for _, f := range fixtures {
		t.Run(f.Name, func(t *testing.T) {
			want, err := os.ReadFile(f.OutPath)
			require.NoError(t, err, "expected output for %s", f.InPath)

			in, err := os.Open(f.InPath)
			require.NoError(t, err)
			defer in.Close()

			var got bytes.Buffer
			require.NoError(t, solve(in, &got))
			if m := Compare(string(want), got.String()); m != nil {
				t.Fatal(m.Error())
			}
		})
	}
}
