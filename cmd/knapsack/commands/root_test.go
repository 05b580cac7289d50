package commands_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/cmd/knapsack/commands"
	"github.com/katalvlaran/knapsack/instance"
	"github.com/katalvlaran/knapsack/internal/config"
	"github.com/katalvlaran/knapsack/knapsack"
)

// run executes the root command with stdin and args, returning stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := commands.NewRootCommand()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

// TestRoot_Golden checks stdout byte-for-byte on the reference scenarios.
func TestRoot_Golden(t *testing.T) {
	cases := []struct {
		name  string
		stdin string
	}{
		{"pick_two_of_three", "3 50\n10 20 30\n60 100 120\n"},
		{"item_does_not_fit", "1 5\n10\n100\n"},
		{"zero_budget_free_item", "2 0\n0 5\n7 3\n"},
		{"no_items", "0 10\n"},
	}

	g := goldie.New(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, stderr, err := run(t, tc.stdin)
			require.NoError(t, err)
			assert.Empty(t, stderr, "default run must not log")
			g.Assert(t, tc.name, []byte(stdout))
		})
	}
}

// TestRoot_Explain logs the selection on stderr and keeps stdout to the answer.
func TestRoot_Explain(t *testing.T) {
	stdout, stderr, err := run(t, "3 50\n10 20 30\n60 100 120\n", "--explain")
	require.NoError(t, err)
	assert.Equal(t, "220\n", stdout)
	assert.Contains(t, stderr, "msg=selection")
	assert.Contains(t, stderr, "cost=50")
}

// TestRoot_Verbose emits debug records.
func TestRoot_Verbose(t *testing.T) {
	stdout, stderr, err := run(t, "1 5\n10\n100\n", "-v")
	require.NoError(t, err)
	assert.Equal(t, "0\n", stdout)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "mode=rolling")
}

// TestRoot_Errors maps bad input onto the library sentinels with empty stdout.
func TestRoot_Errors(t *testing.T) {
	cases := []struct {
		name  string
		stdin string
		args  []string
		want  error
	}{
		{"truncated", "2 10\n1 2\n", nil, instance.ErrInputFormat},
		{"non numeric", "a b", nil, instance.ErrInputFormat},
		{"negative budget", "1 -1\n1\n1\n", nil, knapsack.ErrInvalidRange},
		{"budget above limit", "1 100\n1\n1\n", []string{"--max-budget=10"}, knapsack.ErrLimitExceeded},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, _, err := run(t, tc.stdin, tc.args...)
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, stdout)
		})
	}
}

// TestRoot_EnvLimit honours KNAPSACK_MAX_ITEMS.
func TestRoot_EnvLimit(t *testing.T) {
	t.Setenv("KNAPSACK_MAX_ITEMS", "1")

	_, _, err := run(t, "2 10\n1 2\n3 4\n")
	assert.ErrorIs(t, err, knapsack.ErrLimitExceeded)
}

// TestRoot_MalformedEnvLimit fails on a non-numeric limit instead of treating
// it as unlimited and allocating a budget-sized table.
func TestRoot_MalformedEnvLimit(t *testing.T) {
	t.Setenv("KNAPSACK_MAX_BUDGET", "ten")

	stdout, _, err := run(t, "1 1000000000\n1\n1\n")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Empty(t, stdout)
}

// TestRoot_ExplainCellLimit rejects a full table too large to allocate even
// though n and x pass their own limits.
func TestRoot_ExplainCellLimit(t *testing.T) {
	ones := strings.TrimSpace(strings.Repeat("1 ", 20))
	stdin := "20 100000000\n" + ones + "\n" + ones + "\n"

	_, _, err := run(t, stdin, "--explain")
	assert.ErrorIs(t, err, knapsack.ErrLimitExceeded)

	stdout, _, err := run(t, "20 10\n"+ones+"\n"+ones+"\n", "--explain", "--max-cells=231")
	require.NoError(t, err)
	assert.Equal(t, "10\n", stdout)
}

// TestRoot_RejectsArgs keeps the interface stdin-only.
func TestRoot_RejectsArgs(t *testing.T) {
	_, _, err := run(t, "0 0\n", "input.txt")
	assert.Error(t, err)
}

// TestRoot_Version prints the stamped version.
func TestRoot_Version(t *testing.T) {
	stdout, _, err := run(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, commands.Version)
}
