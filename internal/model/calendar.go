package model

import (
	"strings"
	"time"
)

const CalendarBlockSeparator = "\n\n"

// Calendar 一次成功生成的结果，按季度顺序保存四段文本
// swagger:model
type Calendar struct {
	Quarters    []QuarterBlock `json:"quarters"`
	GeneratedAt time.Time      `json:"generatedAt"`
}

type QuarterBlock struct {
	Directive QuarterDirective `json:"directive"`
	Text      string           `json:"text"`
}

// Text 每段后追加一个空行，包括最后一段
func (c *Calendar) Text() string {
	var b strings.Builder
	for _, q := range c.Quarters {
		b.WriteString(q.Text)
		b.WriteString(CalendarBlockSeparator)
	}
	return b.String()
}

// LineKind 结果页的行类型
type LineKind string

const (
	LineWeekHeading LineKind = "week"
	LineSubHeading  LineKind = "heading"
	LineDivider     LineKind = "divider"
	LineNote        LineKind = "note"
	LineParagraph   LineKind = "paragraph"
)

type CalendarLine struct {
	Kind LineKind `json:"kind"`
	Text string   `json:"text"`
}
