package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"runtime"

	"github.com/pymage/pymage-backend/internal/config"
)

// GTTS synthesizes speech through the Google Translate TTS endpoint, writes
// the audio to a temporary file, plays it, and removes the file. The file is
// removed on every exit path, including synthesis and playback failures.
type GTTS struct {
	baseURL    string
	player     string
	httpClient *http.Client
	play       func(ctx context.Context, path string) error
}

// NewGTTS creates the networked synthesizer from configuration.
func NewGTTS(cfg config.SpeechConfig) *GTTS {
	g := &GTTS{
		baseURL:    cfg.TTSBaseURL,
		player:     cfg.Player,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
	g.play = g.playFile
	return g
}

// NewGTTSWithPlayer creates a GTTS with a custom playback function (for
// testing playback-independent behavior such as temp file handling).
func NewGTTSWithPlayer(cfg config.SpeechConfig, play func(ctx context.Context, path string) error) *GTTS {
	g := NewGTTS(cfg)
	g.play = play
	return g
}

// Name implements Provider.
func (g *GTTS) Name() string { return "gtts" }

// Speak implements Provider.
func (g *GTTS) Speak(ctx context.Context, word, langCode string) error {
	audio, err := g.synthesize(ctx, word, langCode)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp("", "pymage-tts-*.mp3")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	// Scoped resource: the artifact never outlives the call.
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(audio); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := g.play(ctx, tmp.Name()); err != nil {
		return fmt.Errorf("play audio: %w", err)
	}
	return nil
}

func (g *GTTS) synthesize(ctx context.Context, word, langCode string) ([]byte, error) {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("q", word)
	q.Set("tl", langCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("synthesis request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("synthesis status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("empty audio payload")
	}
	return audio, nil
}

func (g *GTTS) playFile(ctx context.Context, path string) error {
	player := g.player
	if player == "" {
		player = defaultPlayer()
	}
	return exec.CommandContext(ctx, player, path).Run()
}

func defaultPlayer() string {
	switch runtime.GOOS {
	case "darwin":
		return "afplay"
	case "windows":
		return "cmdmp3"
	default:
		return "mpg123"
	}
}
