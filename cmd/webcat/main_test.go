package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/fwojciec/webcat/cmd/webcat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "webcat")
	assert.Contains(t, stdout.String(), "urls")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_RejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--format", "yaml", "https://example.com"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_RejectsInvertedDelayBounds(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--delay-min", "5s", "--delay-max", "1s", "https://example.com"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "delay-max")
}

func TestMain_Run_AIRequiresAPIKey(t *testing.T) {
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	t.Setenv("GEMINI_API_KEY", "")

	err := m.Run(context.Background(), []string{"--ai", "https://example.com"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}
