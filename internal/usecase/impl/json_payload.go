package impl

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// presentJSON returns nil for an absent or JSON null payload, raw otherwise.
func presentJSON(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	return trimmed
}

// jsonOr returns raw, or fallback when raw is absent.
func jsonOr(raw json.RawMessage, fallback string) json.RawMessage {
	if present := presentJSON(raw); present != nil {
		return present
	}

	return json.RawMessage(fallback)
}

// routeDriverIDs returns the distinct drivers named by delivery route elements, in order
// of first appearance. An element names a driver through a positive driver_id or driverId,
// given as a number or a numeric string. Anything else is ignored.
func routeDriverIDs(routes json.RawMessage) []uint64 {
	var elements []map[string]json.RawMessage
	if err := json.Unmarshal(routes, &elements); err != nil {
		return nil
	}

	seen := make(map[uint64]struct{})
	var ids []uint64
	for _, element := range elements {
		id, ok := elementDriverID(element)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids
}

func elementDriverID(element map[string]json.RawMessage) (uint64, bool) {
	for _, key := range []string{"driver_id", "driverId"} {
		raw, ok := element[key]
		if !ok {
			continue
		}

		var number json.Number
		if err := json.Unmarshal(raw, &number); err != nil {
			var text string
			if err := json.Unmarshal(raw, &text); err != nil {
				continue
			}
			number = json.Number(text)
		}

		id, err := strconv.ParseUint(number.String(), 10, 64)
		if err == nil && id > 0 {
			return id, true
		}
	}

	return 0, false
}
