package whisper

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"scribe/internal/timecode"
)

// resultPrefix names span artifacts. The trailing start/end pair is what
// transcript offset detection keys on.
const resultPrefix = "speech_recognition_result_segment"

// Service invokes ffmpeg and the configured transcriber.
type Service struct {
	cfg           Config
	ffmpegBinary  string
	commandRunner func(ctx context.Context, name string, args ...string) error
}

// NewService creates a transcription service with the given configuration.
func NewService(cfg Config, ffmpegBinary string) *Service {
	if ffmpegBinary == "" {
		ffmpegBinary = FFmpegCommand
	}
	return &Service{
		cfg:          cfg,
		ffmpegBinary: ffmpegBinary,
	}
}

// WithCommandRunner sets a custom command runner (for testing).
func (s *Service) WithCommandRunner(runner func(ctx context.Context, name string, args ...string) error) {
	s.commandRunner = runner
}

// Model returns the configured model name for logging.
func (s *Service) Model() string {
	if s.cfg.Model != "" {
		return s.cfg.Model
	}
	return DefaultModel
}

// Language returns the configured language hint, which may be empty.
func (s *Service) Language() string {
	return s.cfg.Language
}

// ResultBase returns the artifact base name for a span, without extension.
func ResultBase(startMS, endMS int64) string {
	return fmt.Sprintf("%s_%s_%s", resultPrefix,
		timecode.FormatCompact(startMS, false),
		timecode.FormatCompact(endMS, false))
}

// WAVName returns the extracted audio filename for a span.
func WAVName(startMS, endMS int64) string {
	return ResultBase(startMS, endMS) + ".wav"
}

// ResultName returns the transcriber JSON filename for a span.
func ResultName(startMS, endMS int64) string {
	return ResultBase(startMS, endMS) + ".json"
}

// ExtractSpan extracts a time range of audio from a source file.
// The output is a mono 16kHz WAV file suitable for speech recognition.
func (s *Service) ExtractSpan(ctx context.Context, source string, startSec, durationSec float64, dest string) error {
	if durationSec <= 0 {
		return fmt.Errorf("extract span: invalid duration %.3f", durationSec)
	}
	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-ss", fmt.Sprintf("%.3f", startSec),
		"-t", fmt.Sprintf("%.3f", durationSec),
		"-i", source,
		"-vn",
		"-sn",
		"-dn",
		"-ac", Channels,
		"-ar", SampleRate,
		"-c:a", AudioCodec,
		dest,
	}
	if err := s.run(ctx, s.ffmpegBinary, args...); err != nil {
		return fmt.Errorf("ffmpeg extract span: %w", err)
	}
	return nil
}

// Transcribe runs the transcriber against a WAV file and returns the path of
// the JSON result it is expected to produce in outputDir.
func (s *Service) Transcribe(ctx context.Context, wavPath, outputDir string) (string, error) {
	if wavPath == "" {
		return "", fmt.Errorf("transcribe: source path required")
	}
	if outputDir == "" {
		outputDir = filepath.Dir(wavPath)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("transcribe: ensure output dir: %w", err)
	}

	command := s.cfg.Command
	if command == "" {
		command = DefaultCommand
	}
	if err := s.run(ctx, command, s.buildArgs(wavPath, outputDir)...); err != nil {
		return "", fmt.Errorf("transcriber: %w", err)
	}

	baseName := strings.TrimSuffix(filepath.Base(wavPath), filepath.Ext(wavPath))
	return filepath.Join(outputDir, baseName+".json"), nil
}

// TranscribeSpan extracts a span of audio and transcribes it.
// Both the WAV and the JSON result land in workDir, named after the span.
func (s *Service) TranscribeSpan(ctx context.Context, source string, startMS, endMS int64, workDir string) (string, error) {
	if workDir == "" {
		return "", fmt.Errorf("transcribe span: workDir required")
	}
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return "", fmt.Errorf("transcribe span: ensure workDir: %w", err)
	}

	wavPath := filepath.Join(workDir, WAVName(startMS, endMS))
	startSec := float64(startMS) / 1000
	durationSec := float64(endMS-startMS) / 1000
	if err := s.ExtractSpan(ctx, source, startSec, durationSec, wavPath); err != nil {
		return "", fmt.Errorf("transcribe span: %w", err)
	}

	return s.Transcribe(ctx, wavPath, workDir)
}

// buildArgs constructs the transcriber command arguments.
func (s *Service) buildArgs(wavPath, outputDir string) []string {
	model := s.cfg.Model
	if model == "" {
		model = DefaultModel
	}
	args := []string{
		wavPath,
		"--model", model,
		"--output_dir", outputDir,
		"--output_format", OutputFormat,
	}
	if lang := strings.TrimSpace(s.cfg.Language); lang != "" {
		args = append(args, "--language", lang)
	}
	return args
}

// run executes a command, using the custom runner if set.
func (s *Service) run(ctx context.Context, name string, args ...string) error {
	if s.commandRunner != nil {
		return s.commandRunner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	return nil
}
