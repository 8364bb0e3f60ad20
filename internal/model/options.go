package model

// 问卷选项目录，与前端表单保持一致

const MaxPlatforms = 3

var PlatformOptions = []string{
	"TikTok",
	"Instagram",
	"YouTube",
	"LinkedIn",
	"Facebook",
	"Twitter/X",
	"Substack",
}

// Option 单选项：Value 写入答案，Label 展示给用户
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var SkillLevelOptions = []Option{
	{Value: "Just getting started", Label: "Just getting started (never posted or rarely post)"},
	{Value: "Beginner", Label: "Beginner (post occasionally but inconsistently)"},
	{Value: "Intermediate", Label: "Intermediate (post regularly but want to improve strategy)"},
	{Value: "Advanced", Label: "Advanced (confident creator looking to optimize)"},
}

var TopicOptions = []string{
	"My personal story/journey",
	"Overcoming obstacles/challenges",
	"Step-by-step how-tos and tutorials",
	"Industry trends and insights",
	"Mindset and motivation",
	"Behind-the-scenes of my business/life",
	"Client success stories and results",
	"Controversial or hot takes in my niche",
}

var ChallengeOptions = []string{
	"I don't know what to post about",
	"I'm afraid of judgment or negative comments",
	"I don't have enough time",
	"I feel like I'm not an expert yet",
	"I run out of ideas quickly",
	"I don't know how to make content engaging",
}

func IsSkillLevel(v string) bool {
	for _, o := range SkillLevelOptions {
		if o.Value == v {
			return true
		}
	}
	return false
}

func IsChallenge(v string) bool {
	return contains(ChallengeOptions, v)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
