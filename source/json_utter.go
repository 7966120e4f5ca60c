package source

import (
	"encoding/json"
	"fmt"
	"io"
)

func parseJSONUtter(r io.Reader) ([]string, error) {
	// "JSON Utter" is a JSON array of strings, each of which is a separate
	// passage of text. This is a convenient way to import messages that were
	// exported from a chat log or similar in a separate preprocessing step.
	dec := json.NewDecoder(r)

	var ret []string

	tok, err := dec.Token()
	if err == io.EOF {
		return ret, nil
	}
	if err != nil {
		return ret, err
	}
	if tok != json.Delim('[') {
		return ret, fmt.Errorf("JSON does not have array at root")
	}
	for dec.More() {
		var passage string
		err = dec.Decode(&passage)
		if err != nil {
			return ret, err
		}
		ret = append(ret, passage)
	}
	return ret, nil
}
