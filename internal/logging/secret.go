package logging

import "log/slog"

const redacted = "[REDACTED]"

type secret struct{}

func (secret) LogValue() slog.Value { return slog.StringValue(redacted) }

// Secret replaces a sensitive value with a fixed placeholder. The argument is
// never retained.
func Secret(any) slog.LogValuer {
	return secret{}
}
