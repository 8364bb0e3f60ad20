package controller

import (
	"content_calendar/internal/model"
	"content_calendar/internal/service"
	"content_calendar/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type CalendarController struct {
	calendarService *service.CalendarService
}

func NewCalendarController(s *service.CalendarService) *CalendarController {
	return &CalendarController{calendarService: s}
}

type CalendarRequest struct {
	Profile model.Profile `json:"profile"`
	Answers model.Answers `json:"answers"`
}

type CalendarResponse struct {
	Calendar string               `json:"calendar"`
	Quarters []model.QuarterBlock `json:"quarters"`
	Lines    []model.CalendarLine `json:"lines"`
}

type OptionsResponse struct {
	Platforms    []string       `json:"platforms"`
	MaxPlatforms int            `json:"maxPlatforms"`
	SkillLevels  []model.Option `json:"skillLevels"`
	Topics       []string       `json:"topics"`
	Challenges   []string       `json:"challenges"`
}

// GenerateCalendar godoc
// @Summary 生成52周内容日历
// @Description 依次生成四个季度并拼接；任一季度失败则整体失败，不返回部分结果
// @Tags 日历
// @Accept json
// @Produce json
// @Param body body CalendarRequest true "问卷回答"
// @Success 200 {object} util.Response{data=CalendarResponse}
// @Failure 400 {object} util.Response
// @Failure 502 {object} util.ErrorResponse
// @Router /calendar [post]
func (c *CalendarController) GenerateCalendar(ctx *gin.Context) {
	var req CalendarRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	calendar, err := c.calendarService.Generate(ctx.Request.Context(), req.Profile, req.Answers)
	if err != nil {
		if errors.Is(err, util.ErrIncompleteAnswers) {
			util.BadRequest(ctx, err.Error())
			return
		}
		respondGenerationError(ctx, err)
		return
	}

	text := calendar.Text()
	util.Success(ctx, CalendarResponse{
		Calendar: text,
		Quarters: calendar.Quarters,
		Lines:    service.FormatCalendar(text),
	})
}

// GetOptions godoc
// @Summary 问卷选项
// @Tags 日历
// @Produce json
// @Success 200 {object} util.Response{data=OptionsResponse}
// @Router /options [get]
func (c *CalendarController) GetOptions(ctx *gin.Context) {
	util.Success(ctx, OptionsResponse{
		Platforms:    model.PlatformOptions,
		MaxPlatforms: model.MaxPlatforms,
		SkillLevels:  model.SkillLevelOptions,
		Topics:       model.TopicOptions,
		Challenges:   model.ChallengeOptions,
	})
}

// GetQuarters godoc
// @Summary 季度规划
// @Tags 日历
// @Produce json
// @Success 200 {object} util.Response{data=[]model.QuarterDirective}
// @Router /quarters [get]
func (c *CalendarController) GetQuarters(ctx *gin.Context) {
	util.Success(ctx, model.Quarters())
}
