package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
	debug   bool
)

// Init routes the standard logger to stdout and, when logPath is set, to an
// append-mode log file whose parent directories are created on demand.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	writers := []io.Writer{os.Stdout}

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

// Close restores stderr logging and closes the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

// SetDebug toggles Debugf output.
func SetDebug(enabled bool) {
	mu.Lock()
	debug = enabled
	mu.Unlock()
}

// DebugEnabled reports whether Debugf output is on.
func DebugEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return debug
}

func LogEvent(format string, args ...any) {
	log.Println(fmt.Sprintf(format, args...))
}

// Debugf logs only when debug output is enabled.
func Debugf(format string, args ...any) {
	if !DebugEnabled() {
		return
	}
	log.Println("[DEBUG] " + fmt.Sprintf(format, args...))
}

// LogStage logs a pipeline step as "[STAGE] key=value ..." from alternating
// key/value arguments.
func LogStage(stage string, kv ...any) {
	log.Println(buildStageMessage(stage, kv...))
}

func buildStageMessage(stage string, kv ...any) string {
	name := strings.ToUpper(strings.TrimSpace(stage))
	if name == "" {
		name = "LOG"
	}
	parts := []string{fmt.Sprintf("[%s]", name)}
	for i := 0; i < len(kv); i += 2 {
		key := fmt.Sprint(kv[i])
		if i+1 >= len(kv) {
			parts = append(parts, fmt.Sprintf("%s=%s", key, "<missing>"))
			break
		}
		parts = append(parts, fmt.Sprintf("%s=%s", key, formatValue(kv[i+1])))
	}
	return strings.Join(parts, " ")
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		if strings.TrimSpace(val) == "" {
			return `""`
		}
		return val
	case []string:
		return "[" + strings.Join(val, ",") + "]"
	case map[string]string:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, k+":"+val[k])
		}
		return "{" + strings.Join(pairs, ",") + "}"
	case fmt.Stringer:
		return val.String()
	case error:
		return val.Error()
	case int, int64, float64, bool:
		return fmt.Sprint(val)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(data)
	}
}
