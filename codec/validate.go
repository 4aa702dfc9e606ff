package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Stormrider66/toon/errs"
	"github.com/Stormrider66/toon/section"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
	v.RegisterStructValidation(dataStructLevel, Data{})

	return v
}

// dataStructLevel checks the cross-field invariants struct tags cannot express.
func dataStructLevel(sl validator.StructLevel) {
	var d Data
	switch v := sl.Current().Interface().(type) {
	case Data:
		d = v
	case *Data:
		d = *v
	default:
		return
	}

	h := &d.Header
	l := len(h.LandmarkIndices)

	if int(h.LandmarkCount) != l {
		sl.ReportError(h.LandmarkCount, "landmarkCount", "LandmarkCount", "eq_indices", fmt.Sprint(l))
	}
	if int(h.KeyframeCount) != len(d.Keyframes) {
		sl.ReportError(h.KeyframeCount, "keyframeCount", "KeyframeCount", "eq_len", "keyframes")
	}
	if int(h.DeltaFrameCount) != len(d.DeltaFrames) {
		sl.ReportError(h.DeltaFrameCount, "deltaFrameCount", "DeltaFrameCount", "eq_len", "deltaFrames")
	}

	for i := range d.Keyframes {
		if len(d.Keyframes[i].Landmarks) != l {
			sl.ReportError(d.Keyframes[i].Landmarks, fmt.Sprintf("keyframes[%d].landmarks", i), "Landmarks", "len_landmarks", fmt.Sprint(l))
		}
	}
	for i := range d.DeltaFrames {
		if len(d.DeltaFrames[i].Deltas) != l {
			sl.ReportError(d.DeltaFrames[i].Deltas, fmt.Sprintf("deltaFrames[%d].deltas", i), "Deltas", "len_landmarks", fmt.Sprint(l))
		}
	}
}

// Validate checks JSON-shaped TOON data before it is trusted: field presence,
// numeric ranges, and agreement between header counts and the record lists.
//
// Returns:
//   - error: ErrInvalidData describing every failed field, or nil
func Validate(d *Data) error {
	if d == nil {
		return fmt.Errorf("%w: nil data", errs.ErrInvalidData)
	}

	if err := validate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}

			return fmt.Errorf("%w: %s", errs.ErrInvalidData, strings.Join(msgs, "; "))
		}

		return fmt.Errorf("%w: %w", errs.ErrInvalidData, err)
	}

	return nil
}

// ParseJSON decodes the JSON form of TOON data and validates it.
//
// The JSON form is {"header": {...}, "keyframes": [...], "deltaFrames": [...]},
// with the encoding mode written as "delta", "rle" or "hybrid".
//
// Returns:
//   - *Data: Decoded, validated data
//   - error: ErrInvalidData wrapping the decode or validation failure
func ParseJSON(b []byte) (*Data, error) {
	var d Data
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidData, err)
	}

	if d.DeltaFrames == nil {
		d.DeltaFrames = []section.DeltaFrame{}
	}

	if err := Validate(&d); err != nil {
		return nil, err
	}

	return &d, nil
}

// ToJSON encodes d in its indented JSON form.
func ToJSON(d *Data) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}
