// Package payload pre-flights structured payloads against a serialized size
// ceiling before they reach size-limited operations such as encryption or
// transmission.
package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/tinytelemetry/lotus-wallet/internal/model"
)

// ErrSerialization is wrapped by every Serialize failure.
var ErrSerialization = errors.New("payload: serialization failed")

// FailedValidationMessage is reported when a payload cannot be serialized.
const FailedValidationMessage = "Failed to validate payload size"

const bytesPerKB = 1024

// Result is the outcome of a size check. Error is empty when IsValid is true.
type Result struct {
	IsValid bool    `json:"isValid"`
	SizeKB  float64 `json:"sizeKB"`
	Error   string  `json:"error,omitempty"`
}

// ValidateSize serializes payload and checks it against maxSizeKB.
// A missing or non-positive limit falls back to model.DefaultMaxPayloadKB.
// It never returns an error: unserializable payloads are reported invalid.
func ValidateSize(payload any, maxSizeKB ...float64) Result {
	limit := model.DefaultMaxPayloadKB
	if len(maxSizeKB) > 0 && maxSizeKB[0] > 0 && !math.IsInf(maxSizeKB[0], 0) {
		limit = maxSizeKB[0]
	}

	data, err := Serialize(payload)
	if err != nil {
		return Result{IsValid: false, SizeKB: 0, Error: FailedValidationMessage}
	}
	return Classify(Measure(data), limit)
}

// Serialize produces the canonical JSON encoding of payload. HTML characters
// are not escaped so the byte count matches what clients put on the wire.
func Serialize(payload any) (data []byte, err error) {
	defer func() {
		// Marshaler implementations may panic; that is a serialization failure too.
		if r := recover(); r != nil {
			data = nil
			err = fmt.Errorf("%w: %v", ErrSerialization, r)
		}
	}()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Measure returns the size of data in kilobytes. It counts bytes, not
// characters, so multi-byte UTF-8 sequences are weighed correctly.
func Measure(data []byte) float64 {
	return float64(len(data)) / bytesPerKB
}

// Classify compares an unrounded size against the limit; the boundary is
// inclusive. The reported size is rounded to two decimals either way.
func Classify(sizeKB, maxSizeKB float64) Result {
	rounded := roundKB(sizeKB)
	if sizeKB <= maxSizeKB {
		return Result{IsValid: true, SizeKB: rounded}
	}
	return Result{
		IsValid: false,
		SizeKB:  rounded,
		Error:   fmt.Sprintf("Payload size (%.2fKB) exceeds maximum allowed size (%.2fKB)", sizeKB, maxSizeKB),
	}
}

func roundKB(v float64) float64 {
	return math.Round(v*100) / 100
}
