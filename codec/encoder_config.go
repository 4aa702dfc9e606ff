package codec

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/Stormrider66/toon/errs"
	"github.com/Stormrider66/toon/internal/options"
	"gopkg.in/yaml.v3"
)

// DefaultKeyframeInterval is the keyframe spacing used when none is configured.
const DefaultKeyframeInterval = 30

// EncoderConfig holds the compression settings of an Encoder.
type EncoderConfig struct {
	importantOnly    bool
	keyframeInterval int
	rle              bool
}

// NewEncoderConfig returns the default configuration: important landmarks only,
// a keyframe every 30 frames, RLE enabled.
func NewEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		importantOnly:    true,
		keyframeInterval: DefaultKeyframeInterval,
		rle:              true,
	}
}

// ImportantLandmarksOnly reports whether only the 16-point body subset is kept.
func (c *EncoderConfig) ImportantLandmarksOnly() bool {
	return c.importantOnly
}

// KeyframeInterval returns the keyframe spacing in frames.
func (c *EncoderConfig) KeyframeInterval() int {
	return c.keyframeInterval
}

// RLE reports whether run-length folding of zero deltas is enabled.
func (c *EncoderConfig) RLE() bool {
	return c.rle
}

func (c *EncoderConfig) setKeyframeInterval(n int) error {
	if n < 1 || n > math.MaxUint16 {
		return fmt.Errorf("%w: %d not in 1..%d", errs.ErrInvalidKeyframeInterval, n, math.MaxUint16)
	}
	c.keyframeInterval = n

	return nil
}

// EncoderOption represents a functional option for configuring the EncoderConfig.
type EncoderOption = options.Option[*EncoderConfig]

// WithImportantLandmarksOnly selects the 16-point body subset when true, or all
// 33 landmarks when false. It defaults to true.
func WithImportantLandmarksOnly(enabled bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.importantOnly = enabled
	})
}

// WithKeyframeInterval sets the keyframe spacing in frames (1..65535).
func WithKeyframeInterval(n int) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setKeyframeInterval(n)
	})
}

// WithRLE enables or disables run-length folding. With RLE disabled the mode is
// plain delta.
func WithRLE(enabled bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.rle = enabled
	})
}

// Options is the plain-data form of the encoder options, as found in JSON
// requests and YAML config files.
//
// Keys absent from a decoded document keep their DefaultOptions value. A Go
// literal has no such notion: build it from DefaultOptions and override fields.
type Options struct {
	ImportantLandmarksOnly bool `json:"importantLandmarksOnly" yaml:"importantLandmarksOnly"`
	KeyframeInterval       int  `json:"keyframeInterval" yaml:"keyframeInterval" validate:"omitempty,min=1,max=65535"`
	EnableRLE              bool `json:"enableRLE" yaml:"enableRLE"`
}

// DefaultOptions returns the default compression options.
func DefaultOptions() Options {
	return Options{
		ImportantLandmarksOnly: true,
		KeyframeInterval:       DefaultKeyframeInterval,
		EnableRLE:              true,
	}
}

// plainOptions has the fields of Options without its decoding methods.
type plainOptions Options

// UnmarshalJSON decodes o, starting from DefaultOptions for absent keys.
func (o *Options) UnmarshalJSON(b []byte) error {
	p := plainOptions(DefaultOptions())
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*o = Options(p)

	return nil
}

// UnmarshalYAML decodes o, starting from DefaultOptions for absent keys.
func (o *Options) UnmarshalYAML(value *yaml.Node) error {
	p := plainOptions(DefaultOptions())
	if err := value.Decode(&p); err != nil {
		return err
	}
	*o = Options(p)

	return nil
}

// EncoderOptions converts o into functional options.
//
// A zero KeyframeInterval means the default.
func (o Options) EncoderOptions() []EncoderOption {
	opts := []EncoderOption{
		WithImportantLandmarksOnly(o.ImportantLandmarksOnly),
		WithRLE(o.EnableRLE),
	}
	if o.KeyframeInterval != 0 {
		opts = append(opts, WithKeyframeInterval(o.KeyframeInterval))
	}

	return opts
}
