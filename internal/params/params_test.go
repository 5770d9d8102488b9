package params_test

import (
	"testing"

	"github.com/aretw0/puzzlebox/internal/params"
	"github.com/aretw0/puzzlebox/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type diskParams struct {
	Seed    string `mapstructure:"seed"`
	Lengths []int  `mapstructure:"lengths"`
}

func TestDecode_FromFlags(t *testing.T) {
	p := diskParams{Seed: "default", Lengths: []int{1}}
	raw, err := params.FromFlags([]string{"lengths=272,35651584"})
	require.NoError(t, err)

	require.NoError(t, params.Decode(raw, &p))
	assert.Equal(t, "default", p.Seed)
	assert.Equal(t, []int{272, 35651584}, p.Lengths)
}

func TestDecode_ShorterSliceReplacesDefault(t *testing.T) {
	p := diskParams{Lengths: []int{272, 35651584}}
	require.NoError(t, params.Decode(map[string]any{"lengths": "20"}, &p))
	assert.Equal(t, []int{20}, p.Lengths)
}

func TestDecode_FromManifestValues(t *testing.T) {
	var p diskParams
	raw := map[string]any{
		"seed":    "10000",
		"lengths": []any{20},
	}

	require.NoError(t, params.Decode(raw, &p))
	assert.Equal(t, diskParams{Seed: "10000", Lengths: []int{20}}, p)
}

func TestDecode_Empty(t *testing.T) {
	p := diskParams{Seed: "keep"}
	require.NoError(t, params.Decode(nil, &p))
	assert.Equal(t, "keep", p.Seed)
}

func TestDecode_Errors(t *testing.T) {
	var p diskParams

	err := params.Decode(map[string]any{"sede": "1"}, &p)
	assert.ErrorIs(t, err, domain.ErrInvalidParams)

	err = params.Decode(map[string]any{"lengths": "12,abc"}, &p)
	assert.ErrorIs(t, err, domain.ErrInvalidParams)
}

func TestFromFlags(t *testing.T) {
	raw, err := params.FromFlags(nil)
	require.NoError(t, err)
	assert.Nil(t, raw)

	raw, err = params.FromFlags([]string{"seed=1=0", "seed=10", " lengths =5"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"seed": "10", "lengths": "5"}, raw)

	_, err = params.FromFlags([]string{"seed"})
	assert.ErrorIs(t, err, domain.ErrInvalidParams)

	_, err = params.FromFlags([]string{"=1"})
	assert.ErrorIs(t, err, domain.ErrInvalidParams)
}
