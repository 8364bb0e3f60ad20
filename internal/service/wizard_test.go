package service

import (
	"content_calendar/internal/model"
	"content_calendar/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionsWizard(t *testing.T) *Wizard {
	t.Helper()
	w := NewWizard(model.Profile{FirstName: "Jade"})
	require.Equal(t, StepWelcome, w.Step())
	require.NoError(t, w.Start())
	require.Equal(t, StepQuestions, w.Step())
	return w
}

func TestWizardHappyPath(t *testing.T) {
	w := questionsWizard(t)
	require.NoError(t, w.ReplaceAnswers(validAnswers()))
	assert.True(t, w.CanGenerate())

	profile, answers, err := w.BeginGeneration()
	require.NoError(t, err)
	assert.Equal(t, "Jade", profile.FirstName)
	assert.Equal(t, validAnswers(), answers)
	assert.Equal(t, StepLoading, w.Step())

	calendar := &model.Calendar{Quarters: []model.QuarterBlock{{Text: "x"}}}
	require.NoError(t, w.Complete(calendar))
	assert.Equal(t, StepResults, w.Step())
	assert.Same(t, calendar, w.Snapshot().Calendar)
}

func TestWizardStartOnlyFromWelcome(t *testing.T) {
	w := questionsWizard(t)
	assert.ErrorIs(t, w.Start(), util.ErrInvalidTransition)
}

func TestWizardBlocksIncompleteGeneration(t *testing.T) {
	w := questionsWizard(t)
	answers := validAnswers()
	answers.Challenge = ""
	require.NoError(t, w.ReplaceAnswers(answers))

	assert.False(t, w.CanGenerate())
	_, _, err := w.BeginGeneration()
	assert.ErrorIs(t, err, util.ErrIncompleteAnswers)
	assert.Equal(t, StepQuestions, w.Step())
}

func TestWizardFailureReturnsToQuestions(t *testing.T) {
	w := questionsWizard(t)
	require.NoError(t, w.ReplaceAnswers(validAnswers()))
	_, _, err := w.BeginGeneration()
	require.NoError(t, err)

	_, _, err = w.BeginGeneration()
	assert.ErrorIs(t, err, util.ErrGenerationInProgress)

	require.NoError(t, w.Fail())
	snap := w.Snapshot()
	assert.Equal(t, StepQuestions, snap.Step)
	assert.Equal(t, util.MsgGenerationAlert, snap.Alert)
	assert.Nil(t, snap.Calendar)
	assert.Equal(t, validAnswers(), snap.Answers, "answers survive a failed run")

	// 重试
	_, _, err = w.BeginGeneration()
	require.NoError(t, err)
	assert.Empty(t, w.Snapshot().Alert)
}

func TestWizardResultsIsTerminal(t *testing.T) {
	w := questionsWizard(t)
	require.NoError(t, w.ReplaceAnswers(validAnswers()))
	_, _, err := w.BeginGeneration()
	require.NoError(t, err)
	require.NoError(t, w.Complete(&model.Calendar{}))

	assert.ErrorIs(t, w.Start(), util.ErrInvalidTransition)
	assert.ErrorIs(t, w.Fail(), util.ErrInvalidTransition)
	assert.ErrorIs(t, w.Complete(&model.Calendar{}), util.ErrInvalidTransition)
	assert.ErrorIs(t, w.SetText(model.QuestionProblem, "x"), util.ErrInvalidTransition)
	_, _, err = w.BeginGeneration()
	assert.ErrorIs(t, err, util.ErrInvalidTransition)
	assert.Equal(t, StepResults, w.Step())
}

func TestWizardFourthPlatformIsNoop(t *testing.T) {
	w := questionsWizard(t)
	for _, p := range []string{"TikTok", "Instagram", "YouTube"} {
		require.NoError(t, w.ToggleSelection(model.QuestionPlatforms, p))
	}

	require.NoError(t, w.ToggleSelection(model.QuestionPlatforms, "LinkedIn"))
	assert.Equal(t, []string{"TikTok", "Instagram", "YouTube"}, w.Snapshot().Answers.Platforms)

	require.NoError(t, w.ToggleSelection(model.QuestionPlatforms, "Instagram"))
	assert.Equal(t, []string{"TikTok", "YouTube"}, w.Snapshot().Answers.Platforms)
}

func TestWizardTopicsUncapped(t *testing.T) {
	w := questionsWizard(t)
	for _, topic := range model.TopicOptions {
		require.NoError(t, w.ToggleSelection(model.QuestionTopics, topic))
	}
	assert.Len(t, w.Snapshot().Answers.Topics, len(model.TopicOptions))
}

func TestWizardRejectsWrongQuestionKinds(t *testing.T) {
	w := questionsWizard(t)
	assert.Error(t, w.ToggleSelection(model.QuestionProblem, "x"))
	assert.Error(t, w.SetText(model.QuestionTopics, "x"))
}

func TestWizardSetTextBuildsCompleteAnswers(t *testing.T) {
	w := questionsWizard(t)
	a := validAnswers()
	require.NoError(t, w.SetText(model.QuestionProblem, a.Problem))
	require.NoError(t, w.SetText(model.QuestionSkillLevel, a.SkillLevel))
	require.NoError(t, w.SetText(model.QuestionTransformation, a.Transformation))
	require.NoError(t, w.SetText(model.QuestionUniqueness, a.Uniqueness))
	require.NoError(t, w.SetText(model.QuestionChallenge, a.Challenge))
	assert.False(t, w.CanGenerate())

	require.NoError(t, w.ToggleSelection(model.QuestionPlatforms, "Instagram"))
	require.NoError(t, w.ToggleSelection(model.QuestionTopics, "Mindset and motivation"))
	assert.True(t, w.CanGenerate())
}

func TestWizardReplaceAnswersTrimsPlatforms(t *testing.T) {
	w := questionsWizard(t)
	a := validAnswers()
	a.Platforms = []string{"TikTok", "Instagram", "YouTube", "LinkedIn"}
	require.NoError(t, w.ReplaceAnswers(a))
	assert.Equal(t, []string{"TikTok", "Instagram", "YouTube"}, w.Snapshot().Answers.Platforms)
}
