package logger

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

const mask = "******"

var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9\-_.=]+`)

// MaskHook hides sensitive field values before an entry is written
type MaskHook struct {
	fields []string
}

// NewMaskHook creates a hook masking any field whose name contains one of fields
func NewMaskHook(fields []string) *MaskHook {
	lowered := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			lowered = append(lowered, f)
		}
	}
	return &MaskHook{fields: lowered}
}

// Levels returns all levels
func (h *MaskHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire masks the entry in place
func (h *MaskHook) Fire(entry *logrus.Entry) error {
	for key, value := range entry.Data {
		if h.sensitive(key) {
			entry.Data[key] = mask
			continue
		}
		if s, ok := value.(string); ok {
			entry.Data[key] = bearerPattern.ReplaceAllString(s, "Bearer "+mask)
		}
	}
	entry.Message = bearerPattern.ReplaceAllString(entry.Message, "Bearer "+mask)
	return nil
}

func (h *MaskHook) sensitive(key string) bool {
	key = strings.ToLower(key)
	for _, f := range h.fields {
		if strings.Contains(key, f) {
			return true
		}
	}
	return false
}
