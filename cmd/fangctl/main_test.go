package main

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CyberTud/dracula-wtf/internal/rubric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScore_Stdin(t *testing.T) {
	text := "Don't miss out on this urgent opportunity! You must act now."
	out, err := run(t, text, "score", "--mode", "dating")
	require.NoError(t, err)

	var got scoreOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	want := rubric.Analyze(text, rubric.ModeDating)
	assert.Equal(t, want.OverallScore, got.OverallScore)
	assert.Equal(t, want.Bucket, got.Bucket)
	assert.Equal(t, rubric.ModeDating, got.Mode)
	assert.NotEmpty(t, got.Roast)
}

func TestScore_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("A perfectly ordinary sentence.\n"), 0o644))

	out, err := run(t, "", "score", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"mode": "everyday"`)
	assert.Contains(t, out, `"evidence": []`)
}

func TestScore_Rejects(t *testing.T) {
	_, err := run(t, "too short", "score")
	assert.ErrorContains(t, err, "10-5000")

	_, err = run(t, "A perfectly ordinary sentence.", "score", "--mode", "gothic")
	assert.ErrorIs(t, err, rubric.ErrUnknownMode)
}

func TestID(t *testing.T) {
	out, err := run(t, "", "id", "hello", "world")
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9a-f]{8}\n$`, out)
}

func TestCard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.png")
	_, err := run(t, "", "card", "--score", "88", "--roast", "Bah.", "-o", path)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 1200, img.Bounds().Dx())
	assert.Equal(t, 630, img.Bounds().Dy())
}
