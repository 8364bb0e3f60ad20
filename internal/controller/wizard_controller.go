package controller

import (
	"content_calendar/internal/middleware"
	"content_calendar/internal/model"
	"content_calendar/internal/service"
	"content_calendar/internal/util"
	"content_calendar/pkg/logger"
	"context"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WizardController 服务端渲染的问卷页面：welcome -> questions -> loading -> results
type WizardController struct {
	calendarService *service.CalendarService
}

func NewWizardController(s *service.CalendarService) *WizardController {
	return &WizardController{calendarService: s}
}

type PageOptions struct {
	Platforms   []string
	SkillLevels []model.Option
	Topics      []string
	Challenges  []string
}

type PageData struct {
	Snapshot             service.WizardSnapshot
	Options              PageOptions
	CanGenerate          bool
	PlatformLimitReached bool
	PlatformLimitMessage string
	CalendarHTML         template.HTML
	Refresh              bool
	Notice               string
}

var pageOptions = PageOptions{
	Platforms:   model.PlatformOptions,
	SkillLevels: model.SkillLevelOptions,
	Topics:      model.TopicOptions,
	Challenges:  model.ChallengeOptions,
}

func (c *WizardController) render(ctx *gin.Context, status int, w *service.Wizard, notice string) {
	snap := w.Snapshot()
	data := PageData{
		Snapshot:             snap,
		Options:              pageOptions,
		CanGenerate:          snap.Step == service.StepQuestions && snap.Answers.Complete(),
		PlatformLimitReached: len(snap.Answers.Platforms) >= model.MaxPlatforms,
		PlatformLimitMessage: util.MsgPlatformLimitReach,
		Refresh:              snap.Step == service.StepLoading,
		Notice:               notice,
	}
	if snap.Calendar != nil {
		data.CalendarHTML = template.HTML(service.RenderCalendarHTML(service.FormatCalendar(snap.Calendar.Text())))
	}
	ctx.HTML(status, string(snap.Step)+".html", data)
}

func (c *WizardController) wizard(ctx *gin.Context) *service.Wizard {
	w := middleware.WizardFromContext(ctx)
	if w == nil {
		util.LogInternalError(ctx, util.ErrSessionNotFound)
	}
	return w
}

func redirectHome(ctx *gin.Context) {
	ctx.Redirect(http.StatusSeeOther, "/")
}

// Show 渲染当前步骤对应的页面
func (c *WizardController) Show(ctx *gin.Context) {
	w := c.wizard(ctx)
	if w == nil {
		return
	}
	c.render(ctx, http.StatusOK, w, "")
}

func (c *WizardController) Start(ctx *gin.Context) {
	w := c.wizard(ctx)
	if w == nil {
		return
	}
	if err := w.Start(); err != nil {
		logger.Log.Debug("Ignored wizard start", zap.Error(err))
	}
	redirectHome(ctx)
}

// SaveAnswers 保存表单但不触发生成
func (c *WizardController) SaveAnswers(ctx *gin.Context) {
	w := c.wizard(ctx)
	if w == nil {
		return
	}
	var answers model.Answers
	if err := ctx.ShouldBind(&answers); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := w.ReplaceAnswers(answers); err != nil {
		logger.Log.Debug("Ignored answers update", zap.Error(err))
	}
	redirectHome(ctx)
}

type ToggleRequest struct {
	Question string `form:"question" json:"question" binding:"required,oneof=q2 q6"`
	Value    string `form:"value" json:"value" binding:"required"`
}

// Toggle 单个多选项切换，返回最新选择
func (c *WizardController) Toggle(ctx *gin.Context) {
	w := c.wizard(ctx)
	if w == nil {
		return
	}
	var req ToggleRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := w.ToggleSelection(model.Question(req.Question), req.Value); err != nil {
		util.Error(ctx, http.StatusConflict, err.Error())
		return
	}
	snap := w.Snapshot()
	util.Success(ctx, gin.H{
		"platforms":   snap.Answers.Platforms,
		"topics":      snap.Answers.Topics,
		"canGenerate": snap.Answers.Complete(),
	})
}

// Generate 冻结答案并在后台串行生成四个季度，随即跳转到 loading 页；失败时回到问卷并提示，不保留部分结果
func (c *WizardController) Generate(ctx *gin.Context) {
	w := c.wizard(ctx)
	if w == nil {
		return
	}

	var answers model.Answers
	if err := ctx.ShouldBind(&answers); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := w.ReplaceAnswers(answers); err != nil && w.Step() != service.StepLoading {
		redirectHome(ctx)
		return
	}

	profile, frozen, err := w.BeginGeneration()
	switch {
	case errors.Is(err, util.ErrIncompleteAnswers):
		c.render(ctx, http.StatusBadRequest, w, util.MsgIncompleteAnswers)
		return
	case errors.Is(err, util.ErrGenerationInProgress):
		c.render(ctx, http.StatusConflict, w, "")
		return
	case err != nil:
		redirectHome(ctx)
		return
	}

	go c.run(context.WithoutCancel(ctx.Request.Context()), w, profile, frozen)
	redirectHome(ctx)
}

// run 在请求之外完成四个季度的生成，loading 页自动刷新直到进入 results 或回到 questions
func (c *WizardController) run(ctx context.Context, w *service.Wizard, profile model.Profile, answers model.Answers) {
	calendar, err := c.calendarService.Generate(ctx, profile, answers)
	if err != nil {
		if failErr := w.Fail(); failErr != nil {
			logger.Log.Error("Wizard fail transition", zap.Error(failErr))
		}
		return
	}

	if err := w.Complete(calendar); err != nil {
		logger.Log.Error("Wizard complete transition", zap.Error(err))
	}
}

func (c *WizardController) Results(ctx *gin.Context) {
	w := c.wizard(ctx)
	if w == nil {
		return
	}
	if w.Step() != service.StepResults {
		redirectHome(ctx)
		return
	}
	c.render(ctx, http.StatusOK, w, "")
}
