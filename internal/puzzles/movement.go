package puzzles

import (
	"context"
	"strconv"

	"github.com/aretw0/puzzlebox/internal/params"
	"github.com/aretw0/puzzlebox/pkg/domain"
	"github.com/aretw0/puzzlebox/pkg/movement"
	"github.com/aretw0/puzzlebox/pkg/registry"
)

const movementName = "movement"

func movementPuzzle() registry.Puzzle {
	return registry.Puzzle{
		Name:        movementName,
		Title:       "Manhattan distance after a walk of turn-and-move steps",
		Description: description(movementName),
		NeedsInput:  true,
		Solve:       solveMovement,
	}
}

func solveMovement(_ context.Context, input []byte, raw map[string]any) (domain.Answer, error) {
	if err := params.Decode(raw, &struct{}{}); err != nil {
		return domain.Answer{}, err
	}
	instrs, err := movement.ParseInstructions(string(input))
	if err != nil {
		return domain.Answer{}, err
	}
	final := movement.Track(instrs)
	return domain.Single(movementName, strconv.Itoa(final.Distance())), nil
}
