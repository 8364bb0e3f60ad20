package middleware

import (
	"content_calendar/internal/model"
	"content_calendar/internal/service"
	"content_calendar/pkg/logger"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const wizardKey = "wizard"

// SessionMiddleware 按 cookie 取出向导会话；没有或已过期时用查询参数中的资料新建。
// 每次请求都会续期 cookie，与服务端的空闲过期保持一致。
func SessionMiddleware(store *service.SessionStore, cookieName string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, err := c.Cookie(cookieName); err == nil {
			if w, err := store.Get(id); err == nil {
				setSessionCookie(c, cookieName, id, ttl)
				c.Set(wizardKey, w)
				c.Next()
				return
			}
		}

		var profile model.Profile
		if err := c.ShouldBindQuery(&profile); err != nil {
			logger.Log.Debug("Ignored malformed profile query", zap.Error(err))
		}

		id, w := store.Create(profile)
		setSessionCookie(c, cookieName, id, ttl)
		c.Set(wizardKey, w)
		c.Next()
	}
}

func setSessionCookie(c *gin.Context, name, id string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, id, int(ttl.Seconds()), "/", "", c.Request.TLS != nil, true)
}

func WizardFromContext(c *gin.Context) *service.Wizard {
	v, ok := c.Get(wizardKey)
	if !ok {
		return nil
	}
	w, _ := v.(*service.Wizard)
	return w
}
