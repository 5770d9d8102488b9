/*
Package puzzlebox is a small collection of deterministic puzzle solvers behind a single
registry and command line.

Each puzzle is a pure function from parsed input to an Answer. The Box facade looks
puzzles up by name, logs each solve with log/slog and, optionally, records Prometheus
metrics for it.

# Puzzles

  - movement: Manhattan distance after a walk of turn-and-move instructions.
  - checksum: Dragon-curve disk fill followed by a pairwise parity checksum.
  - viable: Ordered pairs of storage nodes where one node's data fits on the other.
  - assembunny: Final register value of a four-register machine program.

# Usage

	box := puzzlebox.New()
	ans, err := box.Solve(ctx, "movement", []byte("R2, L3"), nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(ans) // 5
*/
package puzzlebox
