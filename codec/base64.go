package codec

import (
	"encoding/base64"
	"fmt"

	"github.com/Stormrider66/toon/errs"
)

// ToBase64 serializes d and encodes the buffer as standard padded base64.
func ToBase64(d *Data) (string, error) {
	buf, err := Marshal(d)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(buf), nil
}

// FromBase64 decodes standard padded base64 text and parses the TOON buffer.
//
// Returns:
//   - *Data: Parsed data
//   - error: ErrInvalidBase64 for malformed text, otherwise any Unmarshal error
func FromBase64(s string) (*Data, error) {
	buf, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidBase64, err)
	}

	return Unmarshal(buf)
}
