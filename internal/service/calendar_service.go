package service

import (
	"content_calendar/internal/model"
	"content_calendar/internal/util"
	"content_calendar/pkg/logger"
	"content_calendar/pkg/monitoring"
	"content_calendar/pkg/tracing"
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// CalendarService 依次为四个季度调用生成代理并拼接结果
type CalendarService struct {
	generator Generator
	now       func() time.Time
}

func NewCalendarService(generator Generator) *CalendarService {
	return &CalendarService{generator: generator, now: time.Now}
}

// QuarterError 记录在哪个季度中止
type QuarterError struct {
	Quarter model.QuarterDirective
	Err     error
}

func (e *QuarterError) Error() string {
	return fmt.Sprintf("%v: weeks %d-%d: %v", util.ErrCalendarAborted, e.Quarter.Start, e.Quarter.End, e.Err)
}

func (e *QuarterError) Unwrap() []error {
	return []error{util.ErrCalendarAborted, e.Err}
}

// Generate 严格串行：上一季度返回后才发起下一季度请求。
// 任一季度失败即中止，不返回部分结果，也不重试。
func (s *CalendarService) Generate(ctx context.Context, profile model.Profile, answers model.Answers) (*model.Calendar, error) {
	if err := answers.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrIncompleteAnswers, err)
	}

	frozen := answers.Clone()
	quarters := model.Quarters()
	blocks := make([]model.QuarterBlock, 0, len(quarters))

	for _, quarter := range quarters {
		text, err := s.generateQuarter(ctx, profile, frozen, quarter)
		if err != nil {
			monitoring.CalendarRuns.WithLabelValues("failed").Inc()
			logger.Log.Error("Calendar generation aborted",
				zap.Int("week_start", quarter.Start),
				zap.Int("week_end", quarter.End),
				zap.Int("completed_quarters", len(blocks)),
				zap.Error(err))
			return nil, &QuarterError{Quarter: quarter, Err: err}
		}
		blocks = append(blocks, model.QuarterBlock{Directive: quarter, Text: text})
	}

	monitoring.CalendarRuns.WithLabelValues("success").Inc()
	logger.Log.Info("Calendar generated", zap.Int("quarters", len(blocks)))

	return &model.Calendar{Quarters: blocks, GeneratedAt: s.now()}, nil
}

func (s *CalendarService) generateQuarter(ctx context.Context, profile model.Profile, answers model.Answers, quarter model.QuarterDirective) (string, error) {
	ctx, span := tracing.StartQuarterSpan(ctx, quarter.Start, quarter.End)
	defer span.End()

	prompt := BuildQuarterPrompt(profile, answers, quarter)
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		return "", err
	}
	return text, nil
}
