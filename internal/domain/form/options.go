package form

import (
	"encoding/json"
	"strings"
)

// EncodeOptions normalizes a comma-separated admin input ("A, B ,C") into the
// stored JSON-array form. Blank entries are discarded. Returns nil when no
// usable option survives.
func EncodeOptions(raw string) *string {
	parts := strings.Split(raw, ",")
	opts := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			opts = append(opts, p)
		}
	}
	if len(opts) == 0 {
		return nil
	}
	encoded, _ := json.Marshal(opts)
	s := string(encoded)
	return &s
}

// OptionList decodes the stored options. The canonical form is a JSON array
// of strings; older rows may still hold a plain comma-separated string, which
// is accepted as a fallback.
func (f *FormField) OptionList() []string {
	if f.Options == nil || strings.TrimSpace(*f.Options) == "" {
		return nil
	}

	var opts []string
	if err := json.Unmarshal([]byte(*f.Options), &opts); err == nil {
		return opts
	}

	for _, p := range strings.Split(*f.Options, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			opts = append(opts, p)
		}
	}
	return opts
}
