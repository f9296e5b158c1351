package safety

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync"
	"time"
)

// ErrNilWriter is returned by AuditLogger.Log when the logger has no writer.
var ErrNilWriter = errors.New("audit logger: writer is nil")

const redacted = "[REDACTED]"

// sensitiveParams are parameter names whose values never reach the audit log.
var sensitiveParams = map[string]struct{}{
	"password":           {},
	"confirmation_token": {},
}

// AuditEntry captures a single tool invocation.
type AuditEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Tool      string         `json:"tool"`
	Params    map[string]any `json:"params"`
	Result    string         `json:"result"`
	Duration  time.Duration  `json:"duration_ns"`
}

// AuditLogger writes AuditEntry records as newline-delimited JSON. It is safe
// for concurrent use.
type AuditLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewAuditLogger returns an AuditLogger writing to w, or nil if w is nil.
func NewAuditLogger(w io.Writer) *AuditLogger {
	if w == nil {
		return nil
	}
	return &AuditLogger{w: w}
}

// Log writes entry as one JSON line with sensitive params redacted.
func (l *AuditLogger) Log(entry AuditEntry) error {
	if l == nil || l.w == nil {
		return ErrNilWriter
	}

	entry.Params = Redact(entry.Params)
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	_, err = l.w.Write(data)
	return err
}

// Redact returns a copy of params with sensitive values replaced. Empty
// values are left as they are so the log still shows they were not set.
func Redact(params map[string]any) map[string]any {
	if params == nil {
		return nil
	}
	out := make(map[string]any, len(params))
	for k, v := range params {
		if _, ok := sensitiveParams[strings.ToLower(k)]; ok && v != nil && v != "" {
			out[k] = redacted
			continue
		}
		out[k] = v
	}
	return out
}
