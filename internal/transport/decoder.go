package transport

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

type Decoder interface {
	Decode(data []byte, v any) error
}

// JSONDecoder decodes a single JSON value and rejects trailing content.
type JSONDecoder struct{}

var _ Decoder = JSONDecoder{}

func (JSONDecoder) Decode(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after json value")
	}
	return nil
}
