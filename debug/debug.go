package debug

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Encode bool
	Arena  bool
	Stream bool
}

var (
	d      *debug
	logger *slog.Logger
)

func init() {
	d = &debug{}
	d.Parse = boolEnv("BENCODE_DEBUG_PARSE")
	d.Encode = boolEnv("BENCODE_DEBUG_ENCODE")
	d.Arena = boolEnv("BENCODE_DEBUG_ARENA")
	d.Stream = boolEnv("BENCODE_DEBUG_STREAM")
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Arena() bool {
	return d.Arena
}
func Stream() bool {
	return d.Stream
}

// Logger is the destination for debug output. It logs at debug level to
// stderr unless replaced with SetLogger.
func Logger() *slog.Logger {
	return logger
}

func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(append(d, '\n'))
}
