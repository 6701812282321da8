package live

import (
	"errors"
	"testing"

	dwerrors "github.com/dashwire-dev/dashwire/internal/errors"
	"github.com/dashwire-dev/dashwire/pkg/layout"
)

func TestDecodeEventFrame(t *testing.T) {
	frame, err := DecodeFrame([]byte(`{"type":"event","ref":"dw-3","event":"click"}`))
	if err != nil {
		t.Fatalf("DecodeFrame: %v", err)
	}
	if frame.Type != FrameEvent || frame.Ref != "dw-3" || frame.Event != "click" {
		t.Errorf("frame = %+v", frame)
	}
}

func TestDecodeFrameErrors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantCode string
	}{
		{"malformed json", `{"type":`, "E401"},
		{"event missing ref", `{"type":"event","event":"click"}`, "E401"},
		{"event missing event", `{"type":"event","ref":"dw-1"}`, "E401"},
		{"unknown type", `{"type":"upload"}`, "E402"},
		{"empty type", `{}`, "E402"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeFrame([]byte(tt.data))
			var dwerr *dwerrors.Error
			if !errors.As(err, &dwerr) {
				t.Fatalf("expected coded error, got %v", err)
			}
			if dwerr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", dwerr.Code, tt.wantCode)
			}
		})
	}
}

func TestFrameEncodeDecode(t *testing.T) {
	frame := Frame{
		Type: FramePatch,
		Patches: []layout.Patch{
			{Ref: "dw-1", Remove: []string{layout.ClassActive}},
			{Ref: "dw-2", Add: []string{layout.ClassActive}},
		},
	}

	data, err := frame.Encode()
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := DecodeFrame(data)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Type != FramePatch || len(decoded.Patches) != 2 {
		t.Fatalf("decoded = %+v", decoded)
	}
	if decoded.Patches[1].Ref != "dw-2" || decoded.Patches[1].Add[0] != layout.ClassActive {
		t.Errorf("patch = %+v", decoded.Patches[1])
	}
}

func TestDecodePingPong(t *testing.T) {
	for _, typ := range []string{"ping", "pong"} {
		frame, err := DecodeFrame([]byte(`{"type":"` + typ + `"}`))
		if err != nil {
			t.Errorf("%s: %v", typ, err)
			continue
		}
		if string(frame.Type) != typ {
			t.Errorf("type = %s, want %s", frame.Type, typ)
		}
	}
}
