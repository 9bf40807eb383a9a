// Package scoring implements the Resolver's heuristic ranking function: a
// default score adjusted by signed bonuses and penalties for symbol kind,
// entrypoint/test-harness heuristics, distance from the caller's current
// file, and fuzzy-match quality.
package scoring

import (
	"github.com/jward/onoma"
)

// DefaultScore is the baseline every candidate starts from before
// adjustments are summed in. A row scoring below DefaultScore after
// adjustments is considered noise and dropped by the Resolver.
const DefaultScore onoma.Score = 1000

const (
	entrypointPenalty     onoma.Score = -10
	commonKindBonus       onoma.Score = 35
	infrequentKindBonus   onoma.Score = 5
	uncommonKindPenalty   onoma.Score = -15
	testHarnessPenalty    onoma.Score = -5
	distancePenaltyPerHop onoma.Score = -10
	maxDistancePenaltyHop             = 8
	maxNonExactFuzzyBonus onoma.Score = 40
)

var commonKinds = map[onoma.SymbolKind]bool{
	onoma.KindFunction:    true,
	onoma.KindMethod:      true,
	onoma.KindStruct:      true,
	onoma.KindType:        true,
	onoma.KindTypeAlias:   true,
	onoma.KindClass:       true,
	onoma.KindConstant:    true,
	onoma.KindEnum:        true,
	onoma.KindEnumMember:  true,
	onoma.KindInterface:   true,
}

var uncommonKinds = map[onoma.SymbolKind]bool{
	onoma.KindPackage:       true,
	onoma.KindModule:        true,
	onoma.KindSelfParameter: true,
}

// FuzzyMatch is the information scoring needs out of one fuzzy-matcher hit:
// its raw (unsigned) score and whether it was an exact match.
type FuzzyMatch struct {
	RawScore int
	Exact    bool
}

// Input is everything CalculateScore needs about one candidate symbol to
// produce its final score.
type Input struct {
	Kind        onoma.SymbolKind
	Path        string
	CurrentFile string // empty means "no current file supplied"
	Matches     []FuzzyMatch
}

// CalculateScore computes the Resolver's final score for one candidate,
// per the adjustment table: kind bonus/penalty, entrypoint penalty,
// test-harness penalty, distance penalty (only when CurrentFile is set),
// and a fuzzy bonus summed across every match. Arithmetic saturates rather
// than overflowing a signed 64-bit score.
func CalculateScore(in Input) onoma.Score {
	score := DefaultScore

	score = saturatingAdd(score, kindAdjustment(in.Kind))

	if onoma.IsEntrypointFile(in.Path) {
		score = saturatingAdd(score, entrypointPenalty)
	}

	if onoma.IsPartOfTestHarness(in.Path) {
		score = saturatingAdd(score, testHarnessPenalty)
	}

	if in.CurrentFile != "" {
		distance := onoma.PathDistance(in.CurrentFile, in.Path)
		if distance > maxDistancePenaltyHop {
			distance = maxDistancePenaltyHop
		}
		score = saturatingAdd(score, onoma.Score(distance)*distancePenaltyPerHop)
	}

	for _, m := range in.Matches {
		score = saturatingAdd(score, fuzzyBonus(m))
	}

	return score
}

func kindAdjustment(kind onoma.SymbolKind) onoma.Score {
	switch {
	case commonKinds[kind]:
		return commonKindBonus
	case kind == onoma.KindVariable:
		return infrequentKindBonus
	case uncommonKinds[kind]:
		return uncommonKindPenalty
	default:
		return 0
	}
}

func fuzzyBonus(m FuzzyMatch) onoma.Score {
	if m.Exact {
		return onoma.Score(m.RawScore/5) * 2
	}
	bonus := onoma.Score(m.RawScore / 4)
	if bonus > maxNonExactFuzzyBonus {
		return maxNonExactFuzzyBonus
	}
	return bonus
}

// saturatingAdd adds b to a, clamping to the int64 range instead of
// wrapping on overflow. In practice no realistic input drives this path,
// but score arithmetic is defined to saturate rather than wrap.
func saturatingAdd(a, b onoma.Score) onoma.Score {
	sum := a + b
	if b > 0 && sum < a {
		return onoma.Score(1<<63 - 1)
	}
	if b < 0 && sum > a {
		return onoma.Score(-1 << 63)
	}
	return sum
}
