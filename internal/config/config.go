package config

import (
	"errors"
	"os"
	"runtime"
	"strconv"
	"strings"
)

type Config struct {
	Sources     []string
	DestDir     string
	Selections  []string
	TargetExt   string
	Overwrite   bool
	Concurrency int
	DryRun      bool
	Yes         bool
	Interactive bool
	Verbose     bool
	LogFile     string
	Lang        string
}

// ApplyEnv fills unset fields from EXCOPY_* environment variables. Flags
// take precedence over the environment.
func (c *Config) ApplyEnv() {
	if len(c.Sources) == 0 {
		if v := envOrEmpty("EXCOPY_SOURCE_DIRS"); v != "" {
			c.Sources = splitList(v)
		}
	}
	if c.DestDir == "" {
		c.DestDir = envOrEmpty("EXCOPY_DEST_DIR")
	}
	if len(c.Selections) == 0 {
		if v := envOrEmpty("EXCOPY_EXTENSIONS"); v != "" {
			c.Selections = splitList(v)
		}
	}
	if c.TargetExt == "" {
		c.TargetExt = envOrEmpty("EXCOPY_TARGET_EXT")
	}
	if !c.Overwrite {
		c.Overwrite = envTruthy("EXCOPY_OVERWRITE")
	}
	if c.Concurrency == 0 {
		if v := envOrEmpty("EXCOPY_CONCURRENCY"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.Concurrency = n
			}
		}
	}
	if !c.Verbose {
		c.Verbose = envTruthy("EXCOPY_VERBOSE")
	}
	if c.LogFile == "" {
		c.LogFile = envOrEmpty("EXCOPY_LOG_FILE")
	}
	if c.Lang == "" {
		c.Lang = envOrEmpty("EXCOPY_LANG")
	}
	if c.Lang == "" {
		c.Lang = envOrEmpty("LANG")
	}
}

// Validate normalizes and checks the configuration. Violations are
// precondition failures: the run must not start.
func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		c.Sources = []string{"."}
	}
	if c.DestDir == "" {
		return errors.New("destination directory is required")
	}
	if c.Concurrency == 0 {
		c.Concurrency = runtime.NumCPU()
	}
	if c.Concurrency < 1 {
		return errors.New("concurrency must be at least 1")
	}
	c.TargetExt = strings.TrimPrefix(c.TargetExt, ".")
	return nil
}

func envOrEmpty(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}

func splitList(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
