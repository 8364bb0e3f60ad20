package service

import (
	"content_calendar/internal/model"
	"fmt"
	"strings"
)

const listSeparator = ", "

const quarterPromptTemplate = `You are an expert content strategist helping early-stage entrepreneurs build influence through consistent, strategic content creation.

CLIENT PROFILE:
- Name: %[1]s
- Problem they solve & for whom: %[2]s
- Platforms focusing on: %[3]s
- Content skill level: %[4]s
- Client transformation: %[5]s
- What makes them unique: %[6]s
- Topics they're confident about: %[7]s
- Biggest content challenge: %[8]s

Generate weeks %[9]d-%[10]d of a 52-week content calendar.

CONTENT PILLARS (balance evenly across these 13 weeks):
- Educational (teaches something valuable)
- Inspirational (motivates and uplifts)
- Relatable (shares struggles, real moments)
- Entertaining (engages and delights)

FOCUS FOR WEEKS %[9]d-%[10]d: %[11]s

FORMAT FOR EACH WEEK:

**Week [X]: [CONTENT PILLAR]**
**Platform:** [One of: %[3]s]
**Format:** [Specific to platform - e.g., Instagram Reel, LinkedIn carousel, TikTok video, YouTube Short, etc.]
**Content Hook/Template:** [Flexible template they can customize]
**Why It Works:** [1 sentence on strategic value]

---

GUIDELINES:
- Adjust complexity for skill level: %[4]s
- Reference their unique story: %[6]s
%[12]s
- Speak to ideal client transformation: %[5]s
- Mix familiar topics (%[7]s) with growth-edge content
- Rotate through platforms strategically
- Tone: Empowering, actionable, encourages consistency over perfection

Generate all 13 weeks (%[9]d-%[10]d) now.`

// BuildQuarterPrompt 按季度生成提示词；只有起始周 <= 7 的季度才包含应对挑战的指令
func BuildQuarterPrompt(profile model.Profile, answers model.Answers, quarter model.QuarterDirective) string {
	return fmt.Sprintf(quarterPromptTemplate,
		profile.FullName(),
		answers.Problem,
		strings.Join(answers.Platforms, listSeparator),
		answers.SkillLevel,
		answers.Transformation,
		answers.Uniqueness,
		strings.Join(answers.Topics, listSeparator),
		answers.Challenge,
		quarter.Start,
		quarter.End,
		quarter.Focus,
		challengeGuideline(answers, quarter),
	)
}

func challengeGuideline(answers model.Answers, quarter model.QuarterDirective) string {
	if !quarter.AddressesChallenge() {
		return ""
	}
	from, to := quarter.ChallengeWeeks()
	return fmt.Sprintf("- Address their challenge (%s) in week %d-%d", answers.Challenge, from, to)
}
