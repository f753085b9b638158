package transport

import (
	"encoding/json"
)

const censored = "$censored"

var censoredFields = []string{"password"}

// censorBody masks secret fields of a JSON object body. Anything that is not
// a JSON object is returned unchanged.
func censorBody(body []byte) []byte {
	fields := map[string]interface{}{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return body
	}

	touched := false
	for _, name := range censoredFields {
		if _, ok := fields[name]; ok {
			fields[name] = censored
			touched = true
		}
	}
	if !touched {
		return body
	}

	out, err := json.Marshal(fields)
	if err != nil {
		return body
	}
	return out
}
