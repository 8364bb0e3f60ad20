package util

const (
	ModeRelease = "release"
	ModeTest    = "test"
)

// 与原始前端保持一致的用户提示文案
const (
	MsgMethodNotAllowed   = "Method not allowed"
	MsgGenerationFailed   = "Failed to generate ideas"
	MsgGenerationAlert    = "Something went wrong. Please try again."
	MsgIncompleteAnswers  = "Please answer all 7 questions before generating your calendar"
	MsgPlatformLimitReach = "You've selected 3 platforms (maximum reached)"
)
