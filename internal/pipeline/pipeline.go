package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"scribe/internal/chunkplan"
	"scribe/internal/config"
	"scribe/internal/fileutil"
	"scribe/internal/language"
	"scribe/internal/logging"
	"scribe/internal/media/ffprobe"
	"scribe/internal/services"
	"scribe/internal/services/whisper"
	"scribe/internal/srt"
	"scribe/internal/transcript"
	"scribe/internal/transcriptcache"
)

// Request describes one subtitle generation run.
type Request struct {
	// Source is the audio (or video) file to transcribe.
	Source string
	// Output is a target .srt path or a directory.
	Output string
	// Checkpoints and Segments are the chunk planning flags; at most one
	// may be set.
	Checkpoints string
	Segments    string
	// Language overrides the configured language hint.
	Language string
	// Merge folds the generated cues into an existing output track instead
	// of replacing it.
	Merge bool
	// WorkDir overrides the configured working directory.
	WorkDir string
	// KeepWork leaves the per-run working directory behind for inspection.
	KeepWork bool
}

// Result summarizes a completed run.
type Result struct {
	RequestID  string
	OutputPath string
	ChunkCount int
	CueCount   int
	CacheHits  int
	Merged     bool
}

type proberFunc func(ctx context.Context, binary, path string) (ffprobe.Result, error)

// Pipeline wires the probing, planning, transcription, and rendering stages.
type Pipeline struct {
	cfg           *config.Config
	logger        *slog.Logger
	cache         *transcriptcache.Store
	prober        proberFunc
	commandRunner func(ctx context.Context, name string, args ...string) error
}

// New builds a pipeline from configuration. The transcript cache is opened
// when enabled; callers own Close.
func New(cfg *config.Config, logger *slog.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	p := &Pipeline{
		cfg:    cfg,
		logger: logger,
		prober: ffprobe.Inspect,
	}
	if cfg.Cache.Enabled {
		store, err := transcriptcache.Open(cfg.Paths.CacheDir)
		if err != nil {
			return nil, fmt.Errorf("open transcript cache: %w", err)
		}
		p.cache = store
	}
	return p, nil
}

// Close releases the transcript cache.
func (p *Pipeline) Close() error {
	if p.cache != nil {
		return p.cache.Close()
	}
	return nil
}

// WithProber sets a custom media prober (for testing).
func (p *Pipeline) WithProber(prober proberFunc) {
	p.prober = prober
}

// WithCommandRunner sets a custom command runner for the transcription
// service (for testing).
func (p *Pipeline) WithCommandRunner(runner func(ctx context.Context, name string, args ...string) error) {
	p.commandRunner = runner
}

// Run executes a full generation request and writes the output track.
func (p *Pipeline) Run(ctx context.Context, req Request) (Result, error) {
	requestID := uuid.NewString()
	ctx = services.WithStage(services.WithRequestID(ctx, requestID), "generate")
	logger := p.logger.With(logging.String("request_id", requestID))
	result := Result{RequestID: requestID}

	if req.Source == "" {
		return result, services.Wrap(services.ErrValidation, "generate", "request", "source path required", nil)
	}

	output := req.Output
	if output == "" {
		output = filepath.Dir(req.Source)
	}
	outputPath, err := ResolveOutputPath(output, p.cfg.Output.DefaultName, logger)
	if err != nil {
		return result, services.Wrap(services.ErrValidation, "generate", "output", "", err)
	}
	result.OutputPath = outputPath

	lang := req.Language
	if lang == "" {
		lang = p.cfg.Transcriber.Language
	}
	normalizedLang, err := language.Normalize(lang)
	if err != nil {
		return result, services.Wrap(services.ErrValidation, "generate", "language", "", err)
	}

	logger.Info("starting generation",
		logging.String("source", req.Source),
		logging.String("language", language.DisplayName(normalizedLang)))

	probe, err := p.prober(ctx, p.cfg.FFprobeBinary(), req.Source)
	if err != nil {
		return result, services.Wrap(services.ErrExternalTool, "generate", "probe", "", err)
	}
	logger.Debug("probe result", logging.String("ffprobe", string(probe.RawJSON())))
	if !probe.HasAudio() {
		return result, services.Wrap(services.ErrValidation, "generate", "probe", fmt.Sprintf("%s carries no audio stream", req.Source), nil)
	}
	totalMS := probe.DurationMS()
	if totalMS <= 0 {
		return result, services.Wrap(services.ErrValidation, "generate", "probe", fmt.Sprintf("%s reports no duration", req.Source), nil)
	}

	spans, err := chunkplan.Plan(req.Checkpoints, req.Segments, totalMS, logger)
	if err != nil {
		return result, services.Wrap(services.ErrValidation, "generate", "plan", "", err)
	}

	runDir, cleanup, err := p.prepareRunDir(req, requestID, logger)
	if err != nil {
		return result, err
	}
	defer cleanup()

	svc := whisper.NewService(whisper.Config{
		Command:  p.cfg.TranscriberBinary(),
		Model:    p.cfg.Transcriber.Model,
		Language: normalizedLang,
	}, p.cfg.FFmpegBinary())
	if p.commandRunner != nil {
		svc.WithCommandRunner(p.commandRunner)
	}

	var audioDigest string
	if p.cache != nil {
		audioDigest, err = fileutil.SHA256File(req.Source)
		if err != nil {
			return result, services.Wrap(services.ErrValidation, "generate", "digest", "", err)
		}
	}

	for _, span := range spans {
		if span.DurationMS() <= 0 {
			logger.Debug("skipping empty span",
				logging.Int64("start_ms", span.StartMS),
				logging.Int64("end_ms", span.EndMS))
			continue
		}
		hit, err := p.transcribeSpan(ctx, svc, req.Source, audioDigest, span.StartMS, span.EndMS, runDir, logger)
		if err != nil {
			return result, err
		}
		if hit {
			result.CacheHits++
		}
	}

	chunks, err := transcript.CollectChunks(runDir)
	if err != nil {
		return result, services.Wrap(services.ErrExternalTool, "generate", "collect", "", err)
	}
	if len(chunks) == 0 {
		return result, services.Wrap(services.ErrValidation, "generate", "collect", "transcriber produced no results", nil)
	}
	result.ChunkCount = len(chunks)

	cues := transcript.Coalesce(chunks, logger)
	result.CueCount = len(cues)
	if len(cues) == 0 {
		logger.Warn("no speech recognized, writing empty track")
	}
	rendered := srt.Render(cues)

	if req.Merge {
		existing, readErr := os.ReadFile(outputPath)
		switch {
		case readErr == nil:
			merged, mergeErr := srt.MergeTracks(string(existing), rendered)
			if mergeErr != nil {
				return result, services.Wrap(services.ErrValidation, "generate", "merge", "", mergeErr)
			}
			rendered = merged
			result.Merged = true
		case os.IsNotExist(readErr):
			logger.Info("no existing track to merge into, writing fresh",
				logging.String("path", outputPath))
		default:
			return result, services.Wrap(services.ErrValidation, "generate", "merge", "", readErr)
		}
	}

	if err := writeTrackLocked(outputPath, rendered); err != nil {
		return result, err
	}

	logger.Info("subtitle track written",
		logging.String("path", outputPath),
		logging.Int("cues", result.CueCount),
		logging.Int("chunks", result.ChunkCount),
		logging.Int("cache_hits", result.CacheHits))
	return result, nil
}

func (p *Pipeline) prepareRunDir(req Request, requestID string, logger *slog.Logger) (string, func(), error) {
	base := req.WorkDir
	if base == "" {
		base = p.cfg.Paths.WorkDir
	}
	runDir := filepath.Join(base, "run-"+requestID)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", nil, services.Wrap(services.ErrConfiguration, "generate", "workdir", "", err)
	}
	cleanup := func() {
		if req.KeepWork {
			logger.Info("keeping working directory", logging.String("path", runDir))
			return
		}
		if err := os.RemoveAll(runDir); err != nil {
			logger.Warn("failed to remove working directory",
				logging.String("path", runDir), logging.Error(err))
		}
	}
	return runDir, cleanup, nil
}

// transcribeSpan produces the span's JSON result file in runDir, either from
// the cache or by invoking the external tools. It reports whether the cache
// served the span.
func (p *Pipeline) transcribeSpan(ctx context.Context, svc *whisper.Service, source, audioDigest string, startMS, endMS int64, runDir string, logger *slog.Logger) (bool, error) {
	resultPath := filepath.Join(runDir, whisper.ResultName(startMS, endMS))

	var key transcriptcache.Key
	if p.cache != nil {
		key = transcriptcache.Key{
			AudioSHA256: audioDigest,
			StartMS:     startMS,
			EndMS:       endMS,
			Model:       svc.Model(),
			Language:    svc.Language(),
		}
		payload, found, err := p.cache.Lookup(ctx, key)
		if err != nil {
			return false, services.Wrap(services.ErrConfiguration, "transcribe", "cache", "", err)
		}
		if found {
			if err := os.WriteFile(resultPath, payload, 0o644); err != nil {
				return false, services.Wrap(services.ErrConfiguration, "transcribe", "cache", "", err)
			}
			logger.Debug("transcript cache hit",
				logging.Int64("start_ms", startMS),
				logging.Int64("end_ms", endMS))
			return true, nil
		}
	}

	spanCtx := ctx
	if timeout := p.cfg.Transcriber.TimeoutSeconds; timeout > 0 {
		var cancel context.CancelFunc
		spanCtx, cancel = context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
		defer cancel()
	}

	started := time.Now()
	jsonPath, err := svc.TranscribeSpan(spanCtx, source, startMS, endMS, runDir)
	if err != nil {
		return false, services.Wrap(services.ErrExternalTool, "transcribe", "span", "", err)
	}
	logger.Info("span transcribed",
		logging.Int64("start_ms", startMS),
		logging.Int64("end_ms", endMS),
		logging.Duration("elapsed", time.Since(started)))

	if p.cache != nil {
		payload, readErr := os.ReadFile(jsonPath)
		if readErr != nil {
			return false, services.Wrap(services.ErrExternalTool, "transcribe", "result", "", readErr)
		}
		if saveErr := p.cache.Save(ctx, key, payload); saveErr != nil {
			logger.Warn("failed to cache transcript", logging.Error(saveErr))
		}
	}
	return false, nil
}

// writeTrackLocked writes the rendered track atomically while holding a
// sibling lock file, so concurrent runs cannot clobber one output.
func writeTrackLocked(outputPath, rendered string) error {
	lockPath := outputPath + ".lock"
	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "generate", "lock", "", err)
	}
	if !locked {
		return services.Wrap(services.ErrConfiguration, "generate", "lock",
			fmt.Sprintf("another run holds %s", lockPath), nil)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lockPath)
	}()

	data := []byte(rendered)
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	if err := fileutil.WriteFileAtomic(outputPath, data, 0o644); err != nil {
		return services.Wrap(services.ErrConfiguration, "generate", "write", "", err)
	}
	return nil
}
