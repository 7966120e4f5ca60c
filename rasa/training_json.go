package rasa

import (
	"encoding/json"
	"fmt"
)

const nluDataKey = "rasa_nlu_data"

func (ts TrainingSet) MarshalJSON() ([]byte, error) {
	known, err := knownMembers(nluDataKey, ts.NLUData)
	if err != nil {
		return nil, err
	}
	return encodeObject(known, ts.extra)
}

func (ts *TrainingSet) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	ms, err := decodeObject(data)
	if err != nil {
		return err
	}
	return ts.setMembers(ms)
}

func (ts *TrainingSet) setMembers(ms members) error {
	found := false
	*ts = TrainingSet{}
	for _, m := range ms {
		if m.key != nluDataKey {
			ts.extra = append(ts.extra, m)
			continue
		}
		if isJSONNull(m.value) {
			return fmt.Errorf("%q must be an object", nluDataKey)
		}
		if err := json.Unmarshal(m.value, &ts.NLUData); err != nil {
			return fmt.Errorf("%s: %w", nluDataKey, err)
		}
		found = true
	}
	if !found {
		return fmt.Errorf("not a Rasa NLU training file: no %q property", nluDataKey)
	}
	return nil
}

func (d NLUData) MarshalJSON() ([]byte, error) {
	examples := d.CommonExamples
	if examples == nil {
		examples = []Example{}
	}
	known, err := knownMembers("common_examples", examples)
	if err != nil {
		return nil, err
	}
	return encodeObject(known, d.extra)
}

func (d *NLUData) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	ms, err := decodeObject(data)
	if err != nil {
		return err
	}
	*d = NLUData{}
	for _, m := range ms {
		switch m.key {
		case "common_examples":
			if err := json.Unmarshal(m.value, &d.CommonExamples); err != nil {
				return fmt.Errorf("common_examples: %w", err)
			}
		default:
			d.extra = append(d.extra, m)
		}
	}
	return nil
}

func (ex Example) MarshalJSON() ([]byte, error) {
	entities := ex.Entities
	if entities == nil {
		entities = []Entity{}
	}
	known, err := knownMembers(
		"text", ex.Text,
		"intent", ex.Intent,
		"entities", entities,
	)
	if err != nil {
		return nil, err
	}
	return encodeObject(known, ex.extra)
}

func (ex *Example) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	ms, err := decodeObject(data)
	if err != nil {
		return err
	}
	*ex = Example{}
	for _, m := range ms {
		var target interface{}
		switch m.key {
		case "text":
			target = &ex.Text
		case "intent":
			target = &ex.Intent
		case "entities":
			target = &ex.Entities
		default:
			ex.extra = append(ex.extra, m)
			continue
		}
		if err := json.Unmarshal(m.value, target); err != nil {
			return fmt.Errorf("%s: %w", m.key, err)
		}
	}
	return nil
}

func (e Entity) MarshalJSON() ([]byte, error) {
	known, err := knownMembers(
		"start", e.Start,
		"end", e.End,
		"value", e.Value,
		"entity", e.Entity,
	)
	if err != nil {
		return nil, err
	}
	return encodeObject(known, e.extra)
}

func (e *Entity) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	ms, err := decodeObject(data)
	if err != nil {
		return err
	}
	*e = Entity{}
	for _, m := range ms {
		var target interface{}
		switch m.key {
		case "start":
			target = &e.Start
		case "end":
			target = &e.End
		case "value":
			target = &e.Value
		case "entity":
			target = &e.Entity
		default:
			e.extra = append(e.extra, m)
			continue
		}
		if err := json.Unmarshal(m.value, target); err != nil {
			return fmt.Errorf("%s: %w", m.key, err)
		}
	}
	return nil
}
