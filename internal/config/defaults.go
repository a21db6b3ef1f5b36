package config

const (
	defaultWorkDir            = "~/.local/share/scribe/work"
	defaultCacheDir           = "~/.local/share/scribe/cache"
	defaultLogDir             = "~/.local/share/scribe/logs"
	defaultTranscriberCommand = "whisper_timestamped"
	defaultTranscriberModel   = "tiny"
	defaultTranscriberLang    = "en"
	defaultTranscriberTimeout = 3600
	defaultOutputName         = "output.srt"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			WorkDir:  defaultWorkDir,
			CacheDir: defaultCacheDir,
			LogDir:   defaultLogDir,
		},
		Transcriber: Transcriber{
			Command:        defaultTranscriberCommand,
			Model:          defaultTranscriberModel,
			Language:       defaultTranscriberLang,
			TimeoutSeconds: defaultTranscriberTimeout,
		},
		Cache: Cache{
			Enabled: true,
		},
		Output: Output{
			DefaultName: defaultOutputName,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
