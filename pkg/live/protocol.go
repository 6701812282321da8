package live

import (
	"encoding/json"

	dwerrors "github.com/dashwire-dev/dashwire/internal/errors"
	"github.com/dashwire-dev/dashwire/pkg/layout"
)

// FrameType identifies a live-protocol frame.
type FrameType string

const (
	// FrameEvent carries one activation event from the client.
	FrameEvent FrameType = "event"

	// FramePatch carries the marker-class patches produced by one event.
	FramePatch FrameType = "patch"

	// FramePing and FramePong keep the connection alive.
	FramePing FrameType = "ping"
	FramePong FrameType = "pong"

	// FrameError reports a dispatch failure to the client.
	FrameError FrameType = "error"
)

// Frame is one message of the live protocol, JSON-encoded on the wire.
type Frame struct {
	Type    FrameType      `json:"type"`
	Ref     string         `json:"ref,omitempty"`
	Event   string         `json:"event,omitempty"`
	Patches []layout.Patch `json:"patches,omitempty"`
	Message string         `json:"message,omitempty"`
}

// Encode serializes the frame.
func (f Frame) Encode() ([]byte, error) {
	return json.Marshal(f)
}

// DecodeFrame parses and validates a frame from the wire.
func DecodeFrame(data []byte) (Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return Frame{}, dwerrors.New("E401").WithWrapped(err)
	}

	switch f.Type {
	case FrameEvent:
		if f.Ref == "" || f.Event == "" {
			return Frame{}, dwerrors.New("E401").WithDetail("event frame missing ref or event")
		}
	case FramePatch, FramePing, FramePong, FrameError:
		// No extra validation
	default:
		return Frame{}, dwerrors.New("E402").WithDetail("frame type %q", f.Type)
	}

	return f, nil
}
