/*
Package assembunny interprets programs for a tiny four-register machine.

The machine has integer registers a, b, c and d and four instructions:

	cpy x y   copies x (a register or a literal) into register y
	inc x     increments register x
	dec x     decrements register x
	jnz x y   jumps y instructions away if x is not zero

Execution stops when the program counter leaves the program.
*/
package assembunny
