package whisper

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

type recordedCommand struct {
	name string
	args []string
}

func newRecordingService(cfg Config) (*Service, *[]recordedCommand) {
	svc := NewService(cfg, "ffmpeg")
	var calls []recordedCommand
	svc.WithCommandRunner(func(_ context.Context, name string, args ...string) error {
		calls = append(calls, recordedCommand{name: name, args: args})
		return nil
	})
	return svc, &calls
}

func TestResultNaming(t *testing.T) {
	if got := ResultBase(0, 600000); got != "speech_recognition_result_segment_000000_001000" {
		t.Fatalf("unexpected base: %q", got)
	}
	if got := WAVName(2648000, 3600000); got != "speech_recognition_result_segment_004408_010000.wav" {
		t.Fatalf("unexpected wav name: %q", got)
	}
	if got := ResultName(2648000, 3600000); got != "speech_recognition_result_segment_004408_010000.json" {
		t.Fatalf("unexpected json name: %q", got)
	}
}

func TestExtractSpanArgs(t *testing.T) {
	svc, calls := newRecordingService(Config{})
	if err := svc.ExtractSpan(context.Background(), "movie.mkv", 30.5, 600, "out.wav"); err != nil {
		t.Fatal(err)
	}
	if len(*calls) != 1 {
		t.Fatalf("expected 1 command, got %d", len(*calls))
	}
	call := (*calls)[0]
	if call.name != "ffmpeg" {
		t.Fatalf("expected ffmpeg, got %s", call.name)
	}
	joined := strings.Join(call.args, " ")
	for _, want := range []string{"-ss 30.500", "-t 600.000", "-i movie.mkv", "-ac 1", "-ar 16000", "-c:a pcm_s16le", "out.wav"} {
		if !strings.Contains(joined, want) {
			t.Errorf("args missing %q: %s", want, joined)
		}
	}
}

func TestExtractSpanRejectsZeroDuration(t *testing.T) {
	svc, _ := newRecordingService(Config{})
	if err := svc.ExtractSpan(context.Background(), "movie.mkv", 0, 0, "out.wav"); err == nil {
		t.Fatal("expected error for zero duration")
	}
}

func TestTranscribeArgs(t *testing.T) {
	dir := t.TempDir()
	svc, calls := newRecordingService(Config{Command: "whisper_timestamped", Model: "base", Language: "en"})

	jsonPath, err := svc.Transcribe(context.Background(), filepath.Join(dir, "chunk.wav"), dir)
	if err != nil {
		t.Fatal(err)
	}
	if jsonPath != filepath.Join(dir, "chunk.json") {
		t.Fatalf("unexpected result path: %s", jsonPath)
	}
	call := (*calls)[0]
	if call.name != "whisper_timestamped" {
		t.Fatalf("expected transcriber command, got %s", call.name)
	}
	joined := strings.Join(call.args, " ")
	for _, want := range []string{"--model base", "--output_format json", "--language en"} {
		if !strings.Contains(joined, want) {
			t.Errorf("args missing %q: %s", want, joined)
		}
	}
}

func TestTranscribeOmitsEmptyLanguage(t *testing.T) {
	dir := t.TempDir()
	svc, calls := newRecordingService(Config{})

	if _, err := svc.Transcribe(context.Background(), filepath.Join(dir, "chunk.wav"), dir); err != nil {
		t.Fatal(err)
	}
	call := (*calls)[0]
	if call.name != DefaultCommand {
		t.Fatalf("expected default command, got %s", call.name)
	}
	joined := strings.Join(call.args, " ")
	if strings.Contains(joined, "--language") {
		t.Errorf("language flag should be omitted: %s", joined)
	}
	if !strings.Contains(joined, "--model "+DefaultModel) {
		t.Errorf("expected default model: %s", joined)
	}
}

func TestTranscribeSpanNamesArtifactsAfterSpan(t *testing.T) {
	dir := t.TempDir()
	svc, calls := newRecordingService(Config{})

	jsonPath, err := svc.TranscribeSpan(context.Background(), "movie.mkv", 0, 600000, dir)
	if err != nil {
		t.Fatal(err)
	}
	wantJSON := filepath.Join(dir, "speech_recognition_result_segment_000000_001000.json")
	if jsonPath != wantJSON {
		t.Fatalf("unexpected json path: %s", jsonPath)
	}
	if len(*calls) != 2 {
		t.Fatalf("expected extract then transcribe, got %d commands", len(*calls))
	}
	wav := filepath.Join(dir, "speech_recognition_result_segment_000000_001000.wav")
	if got := (*calls)[0].args[len((*calls)[0].args)-1]; got != wav {
		t.Fatalf("extract should write %s, wrote %s", wav, got)
	}
	if got := (*calls)[1].args[0]; got != wav {
		t.Fatalf("transcribe should read %s, read %s", wav, got)
	}
}
