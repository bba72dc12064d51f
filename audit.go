package gpm

import (
	"fmt"
	"reflect"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register the audit tag with sentinel
	sentinel.Tag("audit")
}

// AuditLines renders a configuration for display, one "Field: value" line
// per field in declaration order, with masking applied according to the
// audit struct tags. The master key line carries the key fingerprint, so two
// invocations can be correlated without revealing the key.
func AuditLines(cfg Config) []string {
	spec := sentinel.Scan[Config]()
	maskers := builtinMaskers()
	rv := reflect.ValueOf(cfg)

	lines := make([]string, 0, len(spec.Fields))
	for _, field := range spec.Fields {
		value := fmt.Sprintf("%v", rv.FieldByIndex(field.Index).Interface())
		if tag, ok := field.Tags["audit"]; ok {
			if masker, ok := maskers[MaskType(tag)]; ok {
				value = masker.Mask(value)
			}
			if MaskType(tag) == MaskSecret && value != "" {
				value = Fingerprint(cfg.MasterKey) + " " + value
			}
		}
		lines = append(lines, fmt.Sprintf("%s: %s", field.Name, value))
	}
	return lines
}
