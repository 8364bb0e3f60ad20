package service

import (
	"content_calendar/internal/model"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	resultPolicyOnce sync.Once
	resultPolicy     *bluemonday.Policy
)

// FormatCalendar 按行解析模型输出，规则与结果页一致
func FormatCalendar(text string) []model.CalendarLine {
	rawLines := strings.Split(text, "\n")
	lines := make([]model.CalendarLine, 0, len(rawLines))
	for _, line := range rawLines {
		lines = append(lines, classifyLine(line))
	}
	return lines
}

func classifyLine(line string) model.CalendarLine {
	switch {
	case strings.HasPrefix(line, "**Week"):
		return model.CalendarLine{Kind: model.LineWeekHeading, Text: strings.ReplaceAll(line, "**", "")}
	case strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**"):
		return model.CalendarLine{Kind: model.LineSubHeading, Text: strings.ReplaceAll(line, "**", "")}
	case strings.TrimSpace(line) == "---":
		return model.CalendarLine{Kind: model.LineDivider}
	case strings.HasPrefix(line, "*") && strings.HasSuffix(line, "*"):
		return model.CalendarLine{Kind: model.LineNote, Text: strings.ReplaceAll(line, "*", "")}
	default:
		return model.CalendarLine{Kind: model.LineParagraph, Text: line}
	}
}

// RenderCalendarHTML 输出结果页片段，经过 bluemonday 过滤
func RenderCalendarHTML(lines []model.CalendarLine) string {
	var b strings.Builder
	for _, line := range lines {
		text := html.EscapeString(line.Text)
		switch line.Kind {
		case model.LineWeekHeading:
			b.WriteString(`<h3 class="week">` + text + "</h3>\n")
		case model.LineSubHeading:
			b.WriteString(`<h4 class="heading">` + text + "</h4>\n")
		case model.LineDivider:
			b.WriteString("<hr>\n")
		case model.LineNote:
			b.WriteString(`<p class="note"><em>` + text + "</em></p>\n")
		default:
			b.WriteString("<p>" + text + "</p>\n")
		}
	}
	return resultSanitizer().Sanitize(b.String())
}

func resultSanitizer() *bluemonday.Policy {
	resultPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("h3", "h4", "hr", "p", "em")
		policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("h3", "h4", "p")
		resultPolicy = policy
	})
	return resultPolicy
}
