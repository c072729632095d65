package registry

import (
	"encoding/json"
	"testing"

	"github.com/harborpoint/stockroom-backend/pkg/enums"
)

func TestDecoderRegistry(t *testing.T) {
	reg := NewDecoderRegistry()
	reg.Register(enums.EventLedgerUpdated, 1, func(payload json.RawMessage) (interface{}, error) {
		var decoded map[string]int
		if err := json.Unmarshal(payload, &decoded); err != nil {
			return nil, err
		}
		return decoded, nil
	})

	input := json.RawMessage(`{"available":7}`)
	output, err := reg.Decode(enums.EventLedgerUpdated, 1, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outMap, ok := output.(map[string]int); !ok || outMap["available"] != 7 {
		t.Fatalf("unexpected output %+v", output)
	}
}
