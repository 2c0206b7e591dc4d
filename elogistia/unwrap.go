package elogistia

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// The carrier API has no stable response envelope: the same endpoint has been
// observed returning a bare array, {"body":[...]}, {"orders":[...]} and a few
// other wrappers. extractList tries every known shape in a fixed order and
// hands back the inner array, so new shapes only ever get added here.

var errEmptyPayload = errors.New("empty payload")

var envelopeKeys = []string{"body", "orders", "commandes", "wilayas", "data", "result"}

// extractList returns the JSON array carried by payload. An empty object means
// "no records" and yields an empty array. An object matching none of the known
// wrappers is treated as a keyed set of records and its values are returned.
func extractList(payload []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return nil, errEmptyPayload
	}
	if trimmed[0] == '[' {
		return json.RawMessage(trimmed), nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("unrecognized payload shape: %w", err)
	}
	for _, key := range envelopeKeys {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		if inner := bytes.TrimSpace(raw); len(inner) > 0 && inner[0] == '[' {
			return raw, nil
		}
	}
	if len(envelope) == 0 {
		return json.RawMessage("[]"), nil
	}

	values := make([]json.RawMessage, 0, len(envelope))
	for _, raw := range envelope {
		values = append(values, raw)
	}
	return json.Marshal(values)
}

// decodeList unwraps payload and unmarshals the records into out, which must
// be a pointer to a slice.
func decodeList(payload []byte, out any) error {
	list, err := extractList(payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(list, out)
}
