// Package knapsack is the root of the knapsack module: a small, dependency-light
// toolkit for the 0/1 knapsack problem, from the DP solver to a stdin/stdout CLI.
//
// 🚀 What is inside?
//
//	knapsack/         - solver: Item, Options, Limits, MaxValue, Solve (rolling & full-table DP)
//	instance/         - plain-text reader/writer for "n x / costs / values" instances
//	internal/config/  - CLI settings from flags, KNAPSACK_* env vars and YAML
//	cmd/knapsack/     - the knapsack binary
//
// ✨ Why this layout?
//
//   - the solver is pure and never logs, so it embeds anywhere
//   - validation happens before allocation, with sentinel errors
//   - the CLI keeps stdout to exactly one integer; diagnostics go to stderr
//
// Quick example:
//
//	$ printf '3 50\n10 20 30\n60 100 120\n' | knapsack
//	220
//
//	go get github.com/katalvlaran/knapsack
package knapsack
