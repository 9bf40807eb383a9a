package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jward/onoma"
)

func TestCalculateScore_StructInEntrypointFile(t *testing.T) {
	score := CalculateScore(Input{
		Kind: onoma.KindStruct,
		Path: "/some/file/mod.rs",
	})
	assert.Equal(t, onoma.Score(1025), score)
}

func TestCalculateScore_StructWithNoFileName(t *testing.T) {
	score := CalculateScore(Input{
		Kind: onoma.KindStruct,
		Path: "/some/file",
	})
	assert.Equal(t, onoma.Score(1035), score)
}

func TestCalculateScore_VariableFarFromCurrentFileIsDropped(t *testing.T) {
	score := CalculateScore(Input{
		Kind:        onoma.KindVariable,
		Path:        "/some/file/over/here/file.rs",
		CurrentFile: "/a/totally/different/file/over/there/file.ts",
	})
	assert.Equal(t, onoma.Score(945), score)
	assert.Less(t, score, DefaultScore)
}

func TestCalculateScore_ModuleSymbolIsDropped(t *testing.T) {
	score := CalculateScore(Input{
		Kind: onoma.KindModule,
		Path: "some_module.rs",
	})
	assert.Equal(t, onoma.Score(985), score)
	assert.Less(t, score, DefaultScore)
}

func TestCalculateScore_ClassInTestFile(t *testing.T) {
	score := CalculateScore(Input{
		Kind: onoma.KindClass,
		Path: "some_file.test.ts",
	})
	assert.Equal(t, onoma.Score(1030), score)
}

func TestCalculateScore_DistancePenaltyTable(t *testing.T) {
	cases := []struct {
		distanceHops int
		want         onoma.Score
	}{
		{0, 0}, {1, -10}, {2, -20}, {3, -30}, {4, -40},
		{5, -50}, {6, -60}, {7, -70}, {8, -80}, {9, -80}, {10, -80},
	}

	for _, c := range cases {
		hops := c.distanceHops
		if hops > maxDistancePenaltyHop {
			hops = maxDistancePenaltyHop
		}
		got := onoma.Score(hops) * distancePenaltyPerHop
		assert.Equal(t, c.want, got, "distance %d", c.distanceHops)
	}
}

func TestCalculateScore_ExactFuzzyBonus(t *testing.T) {
	score := CalculateScore(Input{
		Kind:    onoma.KindFunction,
		Path:    "handler.go",
		Matches: []FuzzyMatch{{RawScore: 100, Exact: true}},
	})
	// 1000 + 35 (common kind) + (100/5)*2 = 1075
	assert.Equal(t, onoma.Score(1075), score)
}

func TestCalculateScore_NonExactFuzzyBonusCapped(t *testing.T) {
	score := CalculateScore(Input{
		Kind:    onoma.KindFunction,
		Path:    "handler.go",
		Matches: []FuzzyMatch{{RawScore: 1000, Exact: false}},
	})
	// 1000 + 35 + min(1000/4, 40) = 1000 + 35 + 40 = 1075
	assert.Equal(t, onoma.Score(1075), score)
}

func TestCalculateScore_NoCurrentFileSkipsDistancePenalty(t *testing.T) {
	score := CalculateScore(Input{
		Kind: onoma.KindVariable,
		Path: "/far/away/file.rs",
	})
	assert.Equal(t, onoma.Score(1005), score)
}
