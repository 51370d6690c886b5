package tbst

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestDumpCommand(t *testing.T) {
	out, err := execute(t, "dump", "5=five", "1=one", "2=two", "6=six", "1=uno")
	require.NoError(t, err)
	assert.Contains(t, out, "** size: 4\n(1,one)\n(2,two,5)\n(5,five)\n(6,six)\n")
	assert.Contains(t, out, "order: 1 2 5 6\n")
	assert.Contains(t, out, "right(5) = 6\n")
	assert.Contains(t, out, "right(6) = 0\n")
}

func TestDumpCommandStringKeys(t *testing.T) {
	out, err := execute(t, "dump", "m=1", "c=2", "10=3")
	require.NoError(t, err)
	// "10" sorts before "c" as a string
	assert.Contains(t, out, "order: 10 c m\n")
}

func TestDumpCommandBadPair(t *testing.T) {
	_, err := execute(t, "dump", "5")
	assert.ErrorContains(t, err, `invalid pair "5"`)
}

func TestBenchCommandFlags(t *testing.T) {
	_, err := execute(t, "bench", "-N", "0")
	assert.ErrorContains(t, err, "N must be positive")

	_, err = execute(t, "bench", "-N", "10", "--keys", "float")
	assert.ErrorContains(t, err, "unknown key kind")

	_, err = execute(t, "bench", "-N", "10", "--order", "sideways")
	assert.ErrorContains(t, err, "unknown order")
}

func TestRunBench(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var buf bytes.Buffer
	require.NoError(t, runBench(&buf, intKeys(500, "random", rng)))
	out := buf.String()
	assert.Contains(t, out, "STRUCTURE")
	for _, name := range []string{"tbst", "map", "gods treemap"} {
		var cells []string
		for _, line := range strings.Split(out, "\n") {
			if c := strings.Split(line, "|"); strings.TrimSpace(c[0]) == name {
				cells = c
			}
		}
		require.Len(t, cells, 5, "no row for %s", name)
		assert.Equal(t, "500", strings.TrimSpace(cells[1]))
	}
}

func TestUUIDKeys(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	keys, err := uuidKeys(100, "ascending", rng)
	require.NoError(t, err)
	require.Len(t, keys, 100)
	assert.IsIncreasing(t, keys)

	var buf bytes.Buffer
	require.NoError(t, runBench(&buf, keys))
	assert.Contains(t, buf.String(), "tbst")
}

func TestIntKeysAscending(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, intKeys(4, "ascending", nil))
}
