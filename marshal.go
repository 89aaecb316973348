package password

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// maskedValue is what every display and marshal surface emits in place of
// the plaintext, so a password embedded in a config struct or handed to a
// logger never leaks its content.
const maskedValue = "********"

// String returns a masked representation for display.
func (p *Password) String() string {
	return maskedValue
}

// PlainText copies the content into an ordinary string. Strings are
// immutable and cannot be wiped; prefer Bytes or CopyTo when the caller
// can wipe the result.
func (p *Password) PlainText() string {
	return string(p.data[:p.size])
}

// MarshalJSON emits the masked form, never the plaintext.
func (p *Password) MarshalJSON() ([]byte, error) {
	return json.Marshal(maskedValue)
}

// UnmarshalJSON reads a JSON string into a fresh secure buffer. The
// intermediate string produced by the decoder cannot be wiped.
func (p *Password) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	p.AssignString(s)
	return nil
}

// MarshalYAML emits the masked form, never the plaintext.
func (p *Password) MarshalYAML() (any, error) {
	return maskedValue, nil
}

// UnmarshalYAML reads a scalar node into a fresh secure buffer. The
// intermediate string produced by the decoder cannot be wiped.
func (p *Password) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	p.AssignString(s)
	return nil
}
