package types

import "log/slog"

const redactedPlaceholder = "[REDACTED]"

// Sensitive wraps a secret string so it cannot leak through incidental
// printing or serialization. Reveal is the only way to read the value back.
type Sensitive struct {
	value string
}

func NewSensitive(value string) Sensitive {
	return Sensitive{value: value}
}

func (s Sensitive) Reveal() string {
	return s.value
}

func (s Sensitive) IsSet() bool {
	return s.value != ""
}

func (s Sensitive) String() string {
	if s.value == "" {
		return ""
	}
	return redactedPlaceholder
}

func (s Sensitive) GoString() string {
	return s.String()
}

func (s Sensitive) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Sensitive) UnmarshalText(data []byte) error {
	s.value = string(data)
	return nil
}

func (s Sensitive) LogValue() slog.Value {
	return slog.StringValue(s.String())
}
