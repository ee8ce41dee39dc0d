// Package flexid decodes upstream identifiers that are sometimes sent as JSON numbers
// and sometimes as strings.
package flexid

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("flexid: %s is neither string nor number", string(b))
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}
