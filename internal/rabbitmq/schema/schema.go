package schema

import (
	"encoding/json"
)

type OutgoingEmail struct {
	To       string
	Subject  string
	BodyHTML string
}

func (e *OutgoingEmail) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

func (e *OutgoingEmail) Unmarshal(data []byte) error {
	return json.Unmarshal(data, e)
}
