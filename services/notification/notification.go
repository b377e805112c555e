package notification

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"

	"frontdesk/models"
	"frontdesk/services/logger"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// Event là payload gửi qua websocket khi một yêu cầu kết thúc
type Event struct {
	Type      string               `json:"type"`
	TargetID  string               `json:"targetId"`
	Kind      string               `json:"kind"`
	State     models.MutationState `json:"state"`
	ErrorCode string               `json:"errorCode,omitempty"`
	Message   string               `json:"message"`
	Replayed  bool                 `json:"replayed"`
}

type MessageBuilder struct {
	outcome models.MutationOutcome
}

func NewMessageBuilder(outcome models.MutationOutcome) *MessageBuilder {
	return &MessageBuilder{outcome: outcome}
}

func (b *MessageBuilder) Event() Event {
	o := b.outcome
	ev := Event{
		Type:      "mutation",
		TargetID:  o.Request.TargetID,
		Kind:      o.Request.Kind,
		State:     o.State,
		ErrorCode: o.ErrorCode,
		Replayed:  o.Replayed,
	}
	if o.State == models.MutationSucceeded {
		ev.Message = fmt.Sprintf("🔔 Phòng %s đã chuyển sang %s.", o.Request.TargetID, o.Request.DesiredState)
	} else {
		ev.Message = fmt.Sprintf("❌ Không cập nhật được phòng %s (%s).", o.Request.TargetID, o.ErrorCode)
	}
	return ev
}

func (b *MessageBuilder) Build() string {
	raw, err := json.Marshal(b.Event())
	if err != nil {
		return b.Event().Message
	}
	return string(raw)
}

// OutcomeBroadcaster returns a guard listener that pushes successful
// outcomes to every connected desk.
func OutcomeBroadcaster(svc Service, log logger.Logger) func(models.MutationOutcome) {
	return func(outcome models.MutationOutcome) {
		if outcome.State != models.MutationSucceeded {
			return
		}
		if err := svc.SendMessage(NewMessageBuilder(outcome).Build()); err != nil {
			log.Warn("Không gửi được thông báo cho %s: %v", outcome.Request.TargetID, err)
		}
	}
}
