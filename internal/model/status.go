// Package model holds the value types shared by the service, store and transport layers.
package model

import (
	"bytes"
	"fmt"
)

// Status is the lifecycle state of a product.
// The zero value means the status was not supplied.
type Status uint8

const (
	StatusUnset Status = iota
	StatusActive
	StatusInactive
)

const (
	codeActive   = "A"
	codeInactive = "I"
)

// Code returns the single-character code stored and exchanged for s, or "" for StatusUnset.
func (s Status) Code() string {
	switch s {
	case StatusActive:
		return codeActive
	case StatusInactive:
		return codeInactive
	default:
		return ""
	}
}

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusInactive:
		return "inactive"
	default:
		return "unset"
	}
}

// ParseStatus maps a code back to a Status. An empty code is StatusUnset.
func ParseStatus(code string) (Status, error) {
	switch code {
	case codeActive:
		return StatusActive, nil
	case codeInactive:
		return StatusInactive, nil
	case "":
		return StatusUnset, nil
	default:
		return StatusUnset, fmt.Errorf("unknown product status code %q", code)
	}
}

// MarshalJSON encodes the code as a JSON string, or null when unset.
func (s Status) MarshalJSON() ([]byte, error) {
	if s == StatusUnset {
		return []byte("null"), nil
	}
	return []byte(`"` + s.Code() + `"`), nil
}

func (s *Status) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*s = StatusUnset
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("product status must be a string, got %s", data)
	}
	parsed, err := ParseStatus(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
