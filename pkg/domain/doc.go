/*
Package domain contains the types and errors shared by every puzzle in puzzlebox.

The solvers themselves live in their own packages and share nothing but this package:
each one turns parsed input into an Answer, and signals bad input with one of the
sentinel errors defined here so callers can match them with errors.Is.

# Key Entities

  - Answer: The printable result of a puzzle, one Part per output line.
  - Part: A labelled (or bare) value, printed as "label: value".
*/
package domain
