package service

import (
	"content_calendar/internal/model"
	"context"
	"fmt"
	"sync"
)

func validAnswers() model.Answers {
	return model.Answers{
		Problem:        "I help burned-out corporate professionals transition to entrepreneurship",
		Platforms:      []string{"Instagram", "LinkedIn", "TikTok"},
		SkillLevel:     "Intermediate",
		Transformation: "Go from feeling trapped in a 9-5 to running a 6-figure business",
		Uniqueness:     "I've left corporate 3 times",
		Topics:         []string{"My personal story/journey", "Mindset and motivation"},
		Challenge:      "I run out of ideas quickly",
	}
}

// fakeGenerator 记录每次调用的提示词，failAt 为从 1 开始的失败调用序号
type fakeGenerator struct {
	mu      sync.Mutex
	prompts []string
	failAt  int
	err     error
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	n := len(f.prompts)
	if f.failAt == n {
		return "", f.err
	}
	return fmt.Sprintf("quarter-%d", n), nil
}

func (f *fakeGenerator) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}
