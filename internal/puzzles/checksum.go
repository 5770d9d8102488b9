package puzzles

import (
	"context"
	"fmt"

	"github.com/aretw0/puzzlebox/internal/params"
	"github.com/aretw0/puzzlebox/pkg/domain"
	"github.com/aretw0/puzzlebox/pkg/dragon"
	"github.com/aretw0/puzzlebox/pkg/registry"
)

const checksumName = "checksum"

// ChecksumParams configures the checksum puzzle. One answer line is produced per length.
type ChecksumParams struct {
	Seed    string `mapstructure:"seed"`
	Lengths []int  `mapstructure:"lengths"`
}

func checksumPuzzle() registry.Puzzle {
	return registry.Puzzle{
		Name:        checksumName,
		Title:       "Dragon-curve disk fill checksum",
		Description: description(checksumName),
		Solve:       solveChecksum,
	}
}

func solveChecksum(ctx context.Context, _ []byte, raw map[string]any) (domain.Answer, error) {
	p := ChecksumParams{
		Seed:    dragon.Seed,
		Lengths: []int{dragon.SmallDisk, dragon.LargeDisk},
	}
	if err := params.Decode(raw, &p); err != nil {
		return domain.Answer{}, err
	}

	ans := domain.Answer{Puzzle: checksumName}
	for i, n := range p.Lengths {
		if err := ctx.Err(); err != nil {
			return domain.Answer{}, err
		}
		sum, err := dragon.Checksum(p.Seed, n)
		if err != nil {
			return domain.Answer{}, fmt.Errorf("length %d: %w", n, err)
		}
		ans.Parts = append(ans.Parts, domain.Part{Label: partLabel(i), Value: sum})
	}
	return ans, nil
}
