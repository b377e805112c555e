package controllers

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"frontdesk/middleware"
	"frontdesk/models"
	"frontdesk/response"
	"frontdesk/services/logger"
	"frontdesk/services/notification"
)

const sessionKey = "sessionId"

type NotificationObserver interface {
	Notify(message string) error
}

type MelodyObserver struct {
	session *melody.Session
}

func NewMelodyObserver(session *melody.Session) *MelodyObserver {
	return &MelodyObserver{session: session}
}

func (o *MelodyObserver) Notify(message string) error {
	return o.session.Write([]byte(message))
}

// NotificationController giữ các kết nối websocket theo phiên lễ tân
type NotificationController struct {
	logger logger.Logger
	melody *melody.Melody

	mu        sync.Mutex
	observers map[string][]NotificationObserver
}

type NotificationControllerOptions struct {
	Logger logger.Logger
}

func NewNotificationController(opts NotificationControllerOptions, m *melody.Melody) *NotificationController {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	c := &NotificationController{
		logger:    opts.Logger,
		melody:    m,
		observers: make(map[string][]NotificationObserver),
	}
	if m != nil {
		m.HandleConnect(func(s *melody.Session) {
			if id, ok := s.Get(sessionKey); ok {
				c.RegisterObserver(id.(string), NewMelodyObserver(s))
			}
		})
		m.HandleDisconnect(func(s *melody.Session) {
			if id, ok := s.Get(sessionKey); ok {
				c.RemoveSession(id.(string), s)
			}
		})
	}
	return c
}

// Connect nâng cấp kết nối lên websocket, gắn với X-Session-ID
func (c *NotificationController) Connect(ctx *gin.Context) {
	sessionID := ctx.Query("sessionId")
	if sessionID == "" {
		sessionID = middleware.SessionID(ctx)
	}
	if err := c.melody.HandleRequestWithKeys(ctx.Writer, ctx.Request, map[string]interface{}{sessionKey: sessionID}); err != nil {
		c.logger.Error("Không mở được websocket cho phiên %s: %v", sessionID, err)
	}
}

// NotifyAll gửi thông báo tới mọi quầy lễ tân đang kết nối
func (c *NotificationController) NotifyAll(ctx *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Tin nhắn là bắt buộc")
		return
	}

	if err := notification.NewMelodyService(c.melody).SendMessage(req.Message); err != nil {
		c.logger.Error("Lỗi gửi thông báo tổng: %v", err)
		response.ServerError(ctx)
		return
	}
	response.Success(ctx, req.Message)
}

// SessionListener đẩy lỗi của yêu cầu về đúng phiên đã gửi
func (c *NotificationController) SessionListener() func(models.MutationOutcome) {
	return func(outcome models.MutationOutcome) {
		if outcome.State != models.MutationFailed || outcome.Request.Origin == "" {
			return
		}
		message := notification.NewMessageBuilder(outcome).Build()
		c.NotifySession(outcome.Request.Origin, message)
	}
}

// NotifySession returns how many observers received message.
func (c *NotificationController) NotifySession(sessionID, message string) int {
	c.mu.Lock()
	observers := append([]NotificationObserver(nil), c.observers[sessionID]...)
	c.mu.Unlock()

	sent := 0
	for _, observer := range observers {
		if err := observer.Notify(message); err != nil {
			c.logger.Warn("Không gửi được thông báo cho phiên %s: %v", sessionID, err)
			continue
		}
		sent++
	}
	return sent
}

func (c *NotificationController) RegisterObserver(sessionID string, observer NotificationObserver) {
	c.mu.Lock()
	c.observers[sessionID] = append(c.observers[sessionID], observer)
	c.mu.Unlock()
	c.logger.Info("Người quan sát đã đăng ký cho phiên: %s", sessionID)
}

// RemoveSession xóa observer gắn với kết nối s
func (c *NotificationController) RemoveSession(sessionID string, s *melody.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	observers := c.observers[sessionID]
	for i, obs := range observers {
		if mo, ok := obs.(*MelodyObserver); ok && mo.session == s {
			c.observers[sessionID] = append(observers[:i], observers[i+1:]...)
			break
		}
	}
	if len(c.observers[sessionID]) == 0 {
		delete(c.observers, sessionID)
	}
	c.logger.Info("Đã xóa người quan sát cho phiên: %s", sessionID)
}
