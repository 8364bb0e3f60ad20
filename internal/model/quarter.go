package model

// QuarterDirective 52周计划中的一个13周区间
type QuarterDirective struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Focus string `json:"focus"`
}

// ChallengeWeekCutoff 起始周不超过该值的季度会在提示词中加入应对挑战的指令
const ChallengeWeekCutoff = 7

func (q QuarterDirective) AddressesChallenge() bool {
	return q.Start <= ChallengeWeekCutoff
}

// ChallengeWeeks 挑战内容的周次区间：起始周 +4 到 +6
func (q QuarterDirective) ChallengeWeeks() (int, int) {
	return q.Start + 4, q.Start + 6
}

// Quarters 固定顺序，不可由用户修改
func Quarters() []QuarterDirective {
	return []QuarterDirective{
		{Start: 1, End: 13, Focus: "Building connection and trust (mix of relatable + inspirational + some educational)"},
		{Start: 14, End: 26, Focus: "Establishing credibility and expertise (heavier educational + inspirational)"},
		{Start: 27, End: 39, Focus: "Deepening engagement (all pillars balanced, introducing more entertaining)"},
		{Start: 40, End: 52, Focus: "Positioning as the go-to expert (strategic mix of all four pillars)"},
	}
}
