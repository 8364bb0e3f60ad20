package model

import (
	"fmt"
	"strings"
)

// Answers 问卷的七个回答
// swagger:model
type Answers struct {
	Problem        string   `json:"problem" form:"q1"`
	Platforms      []string `json:"platforms" form:"q2"`
	SkillLevel     string   `json:"skillLevel" form:"q3"`
	Transformation string   `json:"transformation" form:"q4"`
	Uniqueness     string   `json:"uniqueness" form:"q5"`
	Topics         []string `json:"topics" form:"q6"`
	Challenge      string   `json:"challenge" form:"q7"`
}

// Question 问卷字段标识
type Question string

const (
	QuestionProblem        Question = "q1"
	QuestionPlatforms      Question = "q2"
	QuestionSkillLevel     Question = "q3"
	QuestionTransformation Question = "q4"
	QuestionUniqueness     Question = "q5"
	QuestionTopics         Question = "q6"
	QuestionChallenge      Question = "q7"
)

// IncompleteError 列出未满足要求的字段
type IncompleteError struct {
	Fields []Question
}

func (e *IncompleteError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = string(f)
	}
	return fmt.Sprintf("incomplete answers: %s", strings.Join(names, ", "))
}

// Validate 生成前的完整性校验；文本题只含空白视为未作答
func (a Answers) Validate() error {
	var missing []Question

	if strings.TrimSpace(a.Problem) == "" {
		missing = append(missing, QuestionProblem)
	}
	if len(a.Platforms) == 0 || len(a.Platforms) > MaxPlatforms {
		missing = append(missing, QuestionPlatforms)
	}
	if !IsSkillLevel(a.SkillLevel) {
		missing = append(missing, QuestionSkillLevel)
	}
	if strings.TrimSpace(a.Transformation) == "" {
		missing = append(missing, QuestionTransformation)
	}
	if strings.TrimSpace(a.Uniqueness) == "" {
		missing = append(missing, QuestionUniqueness)
	}
	if len(a.Topics) == 0 {
		missing = append(missing, QuestionTopics)
	}
	if !IsChallenge(a.Challenge) {
		missing = append(missing, QuestionChallenge)
	}

	if len(missing) > 0 {
		return &IncompleteError{Fields: missing}
	}
	return nil
}

func (a Answers) Complete() bool {
	return a.Validate() == nil
}

// Clone 深拷贝，生成开始后答案不再受用户输入影响
func (a Answers) Clone() Answers {
	out := a
	out.Platforms = append([]string(nil), a.Platforms...)
	out.Topics = append([]string(nil), a.Topics...)
	return out
}

// Toggle 切换多选项；max<=0 表示不限数量，已满时新增为空操作
func Toggle(current []string, value string, max int) []string {
	for i, item := range current {
		if item == value {
			out := make([]string, 0, len(current)-1)
			out = append(out, current[:i]...)
			return append(out, current[i+1:]...)
		}
	}
	if max > 0 && len(current) >= max {
		return current
	}
	return append(append([]string(nil), current...), value)
}
