package service

import (
	"content_calendar/internal/model"
	"content_calendar/internal/util"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarServiceGeneratesQuartersInOrder(t *testing.T) {
	gen := &fakeGenerator{}
	svc := NewCalendarService(gen)

	calendar, err := svc.Generate(context.Background(), model.Profile{FirstName: "Jade"}, validAnswers())
	require.NoError(t, err)

	prompts := gen.calls()
	require.Len(t, prompts, 4)
	for i, want := range []string{"weeks 1-13", "weeks 14-26", "weeks 27-39", "weeks 40-52"} {
		assert.Contains(t, prompts[i], "Generate "+want+" of a 52-week content calendar.")
	}

	assert.Contains(t, prompts[0], "Address their challenge")
	for _, p := range prompts[1:] {
		assert.NotContains(t, p, "Address their challenge")
	}

	require.Len(t, calendar.Quarters, 4)
	assert.Equal(t, "quarter-1\n\nquarter-2\n\nquarter-3\n\nquarter-4\n\n", calendar.Text())
	assert.Equal(t, 40, calendar.Quarters[3].Directive.Start)
	assert.False(t, calendar.GeneratedAt.IsZero())
}

func TestCalendarServiceAbortsOnFirstFailure(t *testing.T) {
	upstream := &GenerationError{Reason: ReasonStatus, StatusCode: 529, Err: errors.New("overloaded")}
	gen := &fakeGenerator{failAt: 3, err: upstream}
	svc := NewCalendarService(gen)

	calendar, err := svc.Generate(context.Background(), model.Profile{}, validAnswers())
	require.Error(t, err)
	assert.Nil(t, calendar)
	assert.Len(t, gen.calls(), 3, "remaining quarters must not be requested")

	assert.ErrorIs(t, err, util.ErrCalendarAborted)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, ReasonStatus, genErr.Reason)

	var quarterErr *QuarterError
	require.ErrorAs(t, err, &quarterErr)
	assert.Equal(t, 27, quarterErr.Quarter.Start)
}

func TestCalendarServiceRejectsIncompleteAnswers(t *testing.T) {
	gen := &fakeGenerator{}
	svc := NewCalendarService(gen)

	answers := validAnswers()
	answers.Topics = nil

	_, err := svc.Generate(context.Background(), model.Profile{}, answers)
	assert.ErrorIs(t, err, util.ErrIncompleteAnswers)
	assert.Empty(t, gen.calls())
}

func TestCalendarServiceDoesNotAliasAnswers(t *testing.T) {
	gen := &fakeGenerator{}
	svc := NewCalendarService(gen)

	answers := validAnswers()
	_, err := svc.Generate(context.Background(), model.Profile{}, answers)
	require.NoError(t, err)

	answers.Platforms[0] = "Substack"
	assert.Contains(t, gen.calls()[0], "Platforms focusing on: Instagram, LinkedIn, TikTok")
}
