package model

import "strings"

// Profile 从落地页查询参数读取，不做校验
type Profile struct {
	FirstName string `json:"fname" form:"fname"`
	LastName  string `json:"lname" form:"lname"`
	Email     string `json:"email" form:"email"`
	Phone     string `json:"phone" form:"phone"`
}

// FullName 与原始模板一致："名 姓"，缺失部分保留空格
func (p Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p Profile) Greeting() string {
	if strings.TrimSpace(p.FirstName) == "" {
		return "Welcome!"
	}
	return "Welcome, " + p.FirstName + "!"
}
