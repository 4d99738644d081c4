package hcl

import (
	"errors"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// toText converts a primitive cty.Value into the text a generator embeds.
// Numbers use cty's canonical decimal form, so 0.10 becomes "0.1".
func toText(val cty.Value) (string, error) {
	if val.IsNull() {
		return "", errors.New("value must not be null")
	}
	if !val.IsWhollyKnown() {
		return "", errors.New("value must be known")
	}
	if !val.Type().IsPrimitiveType() {
		return "", fmt.Errorf("expected a string, number or bool, got %s", val.Type().FriendlyName())
	}

	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("cannot convert %s to string: %w", val.Type().FriendlyName(), err)
	}
	return str.AsString(), nil
}
