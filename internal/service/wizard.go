package service

import (
	"content_calendar/internal/model"
	"content_calendar/internal/util"
	"fmt"
	"sync"
	"time"
)

// Step 向导所处的页面
type Step string

const (
	StepWelcome   Step = "welcome"
	StepQuestions Step = "questions"
	StepLoading   Step = "loading"
	StepResults   Step = "results"
)

// Wizard 单个访问者的问卷状态，所有方法并发安全
type Wizard struct {
	mu       sync.Mutex
	step     Step
	profile  model.Profile
	answers  model.Answers
	calendar *model.Calendar
	alert    string
	touched  time.Time
}

func NewWizard(profile model.Profile) *Wizard {
	return &Wizard{step: StepWelcome, profile: profile, touched: time.Now()}
}

// WizardSnapshot 渲染用的只读副本
type WizardSnapshot struct {
	Step     Step
	Profile  model.Profile
	Answers  model.Answers
	Calendar *model.Calendar
	Alert    string
}

func (w *Wizard) Snapshot() WizardSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return WizardSnapshot{
		Step:     w.step,
		Profile:  w.profile,
		Answers:  w.answers.Clone(),
		Calendar: w.calendar,
		Alert:    w.alert,
	}
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Wizard) transitionError(to Step) error {
	return fmt.Errorf("%w: %s -> %s", util.ErrInvalidTransition, w.step, to)
}

// Start welcome -> questions
func (w *Wizard) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepWelcome {
		return w.transitionError(StepQuestions)
	}
	w.step = StepQuestions
	return nil
}

func (w *Wizard) editable() error {
	if w.step != StepQuestions {
		return fmt.Errorf("%w: answers are read-only in step %s", util.ErrInvalidTransition, w.step)
	}
	return nil
}

// SetText 更新文本或单选题
func (w *Wizard) SetText(q model.Question, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.editable(); err != nil {
		return err
	}
	switch q {
	case model.QuestionProblem:
		w.answers.Problem = value
	case model.QuestionSkillLevel:
		w.answers.SkillLevel = value
	case model.QuestionTransformation:
		w.answers.Transformation = value
	case model.QuestionUniqueness:
		w.answers.Uniqueness = value
	case model.QuestionChallenge:
		w.answers.Challenge = value
	default:
		return fmt.Errorf("question %s is not a text question", q)
	}
	w.alert = ""
	return nil
}

// ToggleSelection 多选题切换；平台已选满 3 个时再选新平台不产生任何变化
func (w *Wizard) ToggleSelection(q model.Question, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.editable(); err != nil {
		return err
	}
	switch q {
	case model.QuestionPlatforms:
		w.answers.Platforms = model.Toggle(w.answers.Platforms, value, model.MaxPlatforms)
	case model.QuestionTopics:
		w.answers.Topics = model.Toggle(w.answers.Topics, value, 0)
	default:
		return fmt.Errorf("question %s is not a multi-select question", q)
	}
	w.alert = ""
	return nil
}

// ReplaceAnswers 表单整体提交；平台超过上限时只保留前 3 个
func (w *Wizard) ReplaceAnswers(answers model.Answers) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.editable(); err != nil {
		return err
	}
	next := answers.Clone()
	if len(next.Platforms) > model.MaxPlatforms {
		next.Platforms = next.Platforms[:model.MaxPlatforms]
	}
	w.answers = next
	w.alert = ""
	return nil
}

func (w *Wizard) CanGenerate() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step == StepQuestions && w.answers.Complete()
}

// BeginGeneration questions -> loading，返回冻结的答案副本
func (w *Wizard) BeginGeneration() (model.Profile, model.Answers, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step == StepLoading {
		return model.Profile{}, model.Answers{}, util.ErrGenerationInProgress
	}
	if w.step != StepQuestions {
		return model.Profile{}, model.Answers{}, w.transitionError(StepLoading)
	}
	if err := w.answers.Validate(); err != nil {
		return model.Profile{}, model.Answers{}, fmt.Errorf("%w: %v", util.ErrIncompleteAnswers, err)
	}
	w.step = StepLoading
	w.alert = ""
	w.calendar = nil
	return w.profile, w.answers.Clone(), nil
}

// Complete loading -> results
func (w *Wizard) Complete(calendar *model.Calendar) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepLoading {
		return w.transitionError(StepResults)
	}
	w.calendar = calendar
	w.step = StepResults
	return nil
}

// Fail loading -> questions，丢弃已生成的部分内容
func (w *Wizard) Fail() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepLoading {
		return w.transitionError(StepQuestions)
	}
	w.calendar = nil
	w.alert = util.MsgGenerationAlert
	w.step = StepQuestions
	return nil
}

// Touch 刷新活跃时间，返回上次活跃时间
func (w *Wizard) Touch(now time.Time) time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	prev := w.touched
	w.touched = now
	return prev
}

func (w *Wizard) idleSince() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.touched
}
