package whisper

// Config captures runtime settings for transcription runs.
type Config struct {
	// Command is the transcriber binary to invoke.
	Command string
	// Model is the speech recognition model name (e.g. "tiny", "base").
	Model string
	// Language is the ISO 639-1 language hint passed to the transcriber.
	// Empty means autodetect.
	Language string
}

// Transcriber defaults and audio extraction constants.
const (
	DefaultCommand = "whisper_timestamped"
	DefaultModel   = "tiny"
	OutputFormat   = "json"

	// Mono 16kHz PCM is what the recognition models expect.
	SampleRate = "16000"
	Channels   = "1"
	AudioCodec = "pcm_s16le"
)

// Command names for external tools.
const (
	FFmpegCommand = "ffmpeg"
)
