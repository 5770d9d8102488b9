/*
Package movement tracks a walker on an integer grid.

The walker starts at the origin facing North. Each instruction turns it a quarter
left or right and then moves it a number of blocks along its new heading. The
answer of interest is the Manhattan distance of the final position from the origin.

	instrs, err := movement.ParseInstructions("R2, L3")
	if err != nil {
		return err
	}
	final := movement.Track(instrs)
	fmt.Println(final.Distance()) // 5
*/
package movement
