package puzzles

import (
	"bytes"
	"context"
	"strconv"

	"github.com/aretw0/puzzlebox/internal/params"
	"github.com/aretw0/puzzlebox/pkg/domain"
	"github.com/aretw0/puzzlebox/pkg/registry"
	"github.com/aretw0/puzzlebox/pkg/storage"
)

const viableName = "viable"

func viablePuzzle() registry.Puzzle {
	return registry.Puzzle{
		Name:        viableName,
		Title:       "Count storage node pairs that can take each other's data",
		Description: description(viableName),
		NeedsInput:  true,
		Solve:       solveViable,
	}
}

func solveViable(_ context.Context, input []byte, raw map[string]any) (domain.Answer, error) {
	if err := params.Decode(raw, &struct{}{}); err != nil {
		return domain.Answer{}, err
	}
	nodes, err := storage.ParseNodes(bytes.NewReader(input))
	if err != nil {
		return domain.Answer{}, err
	}
	return domain.Single(viableName, strconv.Itoa(storage.CountViablePairs(nodes))), nil
}
