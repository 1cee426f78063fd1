package http

import (
	"schedula/internal/chat"
)

type chatReq struct {
	Message string `json:"message" binding:"required"`
}

func (req chatReq) toInput() chat.InterpretInput {
	return chat.InterpretInput{Message: req.Message}
}

type chatResp struct {
	Response          string   `json:"response"`
	Suggestions       []string `json:"suggestions"`
	BookingCreated    bool     `json:"bookingCreated"`
	ActionTaken       bool     `json:"actionTaken"`
	ConversationState string   `json:"conversationState"`
	SessionID         string   `json:"sessionId"`
}

func newChatResp(sessionID string, out chat.InterpretOutput) chatResp {
	return chatResp{
		Response:          out.Response,
		Suggestions:       out.Suggestions,
		BookingCreated:    out.BookingCreated != nil,
		ActionTaken:       out.ActionTaken,
		ConversationState: "active",
		SessionID:         sessionID,
	}
}
