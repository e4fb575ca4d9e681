package dialog

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
)

// DecodeOptions rehydrates a frame's options payload into a typed struct.
// Within the turn that pushed the frame, options are still the live value;
// after a persistence round-trip they come back as a decoded JSON map. Both
// shapes decode through the same path. RFC3339 strings decode into time.Time
// fields.
func DecodeOptions(src any, dst any) error {
	if src == nil {
		return nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToTimeHookFunc(time.RFC3339),
		Result:     dst,
	})
	if err != nil {
		return fmt.Errorf("build options decoder: %w", err)
	}
	if err := decoder.Decode(src); err != nil {
		return fmt.Errorf("decode options: %w", err)
	}
	return nil
}
