package queue

import "encoding/json"

// MessageVersion is the current render message schema version.
const MessageVersion = 1

// Message asks the render pipeline to build a published structure.
type Message struct {
	StructureID string `json:"structureId"`
	ProjectID   string `json:"projectId"`
	ExportKey   string `json:"exportKey"`
	RequestID   string `json:"requestId"`
	EnqueuedAt  string `json:"enqueuedAt"`
	Version     int    `json:"version"`
}

// EncodeMessage returns the JSON representation of a message.
func EncodeMessage(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}

// DecodeMessage parses a JSON payload into a Message.
func DecodeMessage(payload []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}
