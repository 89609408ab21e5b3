package speech

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type providerMock struct {
	name    string
	speakFn func(ctx context.Context, word, langCode string) error
	calls   int
}

func (m *providerMock) Name() string { return m.name }

func (m *providerMock) Speak(ctx context.Context, word, langCode string) error {
	m.calls++
	return m.speakFn(ctx, word, langCode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestChain_FirstProviderSucceeds(t *testing.T) {
	t.Parallel()

	first := &providerMock{name: "first", speakFn: func(_ context.Context, _, _ string) error {
		return nil
	}}
	second := &providerMock{name: "second", speakFn: func(_ context.Context, _, _ string) error {
		t.Fatal("fallback must not run when the first provider succeeds")
		return nil
	}}

	chain := NewChain(discardLogger(), first, second)

	err := chain.Speak(context.Background(), "hello", "en")

	require.NoError(t, err)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls)
}

func TestChain_FallsBackOnFailure(t *testing.T) {
	t.Parallel()

	first := &providerMock{name: "first", speakFn: func(_ context.Context, _, _ string) error {
		return errors.New("network down")
	}}
	second := &providerMock{name: "second", speakFn: func(_ context.Context, word, langCode string) error {
		assert.Equal(t, "hello", word)
		assert.Equal(t, "en", langCode)
		return nil
	}}

	chain := NewChain(discardLogger(), first, second)

	err := chain.Speak(context.Background(), "hello", "en")

	require.NoError(t, err)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestChain_AllProvidersFail(t *testing.T) {
	t.Parallel()

	first := &providerMock{name: "first", speakFn: func(_ context.Context, _, _ string) error {
		return errors.New("network down")
	}}
	second := &providerMock{name: "second", speakFn: func(_ context.Context, _, _ string) error {
		return errors.New("no speech binary")
	}}

	chain := NewChain(discardLogger(), first, second)

	err := chain.Speak(context.Background(), "hello", "en")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "network down")
	assert.Contains(t, err.Error(), "no speech binary")
}

func TestChain_NoProviders(t *testing.T) {
	t.Parallel()

	chain := NewChain(discardLogger())

	err := chain.Speak(context.Background(), "hello", "en")

	assert.Error(t, err)
}
