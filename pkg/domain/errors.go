package domain

import "errors"

// ErrUnknownPuzzle is returned when no puzzle is registered under the requested name.
var ErrUnknownPuzzle = errors.New("unknown puzzle")

// ErrMalformedInstruction is returned when a movement token is not of the form <R|L><distance>.
var ErrMalformedInstruction = errors.New("malformed instruction")

// ErrInvalidSeed is returned when a checksum seed contains anything other than '0' and '1'.
var ErrInvalidSeed = errors.New("invalid seed")

// ErrInvalidLength is returned when a checksum target length is not positive.
var ErrInvalidLength = errors.New("invalid disk length")

// ErrMalformedNode is returned when a storage node record cannot be parsed.
var ErrMalformedNode = errors.New("malformed node record")

// ErrDuplicateNode is returned when two records share the same grid position.
var ErrDuplicateNode = errors.New("duplicate node position")

// ErrMalformedProgram is returned when a register machine program cannot be parsed.
var ErrMalformedProgram = errors.New("malformed program")

// ErrInvalidParams is returned when puzzle parameters cannot be decoded.
var ErrInvalidParams = errors.New("invalid puzzle parameters")

// ErrInvalidManifest is returned when a batch manifest is structurally wrong.
var ErrInvalidManifest = errors.New("invalid manifest")
