package core

// StageCount is the number of narrative stages a field moves through.
const StageCount = 4

// Stage indices in narrative order.
const (
	StageChaos = iota
	StageGrid
	StageTowers
	StageSphere
)

var stageNames = [StageCount]string{"chaos", "grid", "towers", "sphere"}

// StageSource reports the stage a field should currently converge toward.
// Implementations are read once per frame; the returned value is clamped.
type StageSource interface {
	Current() int
}

// ClampStage maps any integer onto a valid stage index.
func ClampStage(i int) int {
	if i < 0 {
		return 0
	}
	if i >= StageCount {
		return StageCount - 1
	}
	return i
}

// StageName returns the short identifier of a stage.
func StageName(i int) string {
	return stageNames[ClampStage(i)]
}

// FixedStage is a StageSource pinned to one index. Handy for tools and tests.
type FixedStage int

// Current returns the pinned stage.
func (s FixedStage) Current() int { return int(s) }
