package main

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	config := writeConfig(t, dir, "kinds.yaml", "kinds:\n  User: {}\n")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-pkg", "ids", config}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	src, err := os.ReadFile(filepath.Join(dir, "kinds_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "package ids\n")
	assert.Contains(t, string(src), "type UserUuid = typeduuid.UUID[UserKind]")
	assert.Empty(t, stdout.String())
}

func TestRunPackageFromEnv(t *testing.T) {
	t.Setenv("GOPACKAGE", "fromenv")
	dir := t.TempDir()
	config := writeConfig(t, dir, "kinds.yaml", "kinds:\n  User: {}\n")
	out := filepath.Join(dir, "out", "ids.go")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-out", out, config}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package fromenv\n")
}

func TestRunInvalidKinds(t *testing.T) {
	dir := t.TempDir()
	config := writeConfig(t, dir, "kinds.yaml", "kinds:\n  User: {}\n  9Lives: {}\n")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-pkg", "ids", config}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), config+":3:3: error: kind name must start with an ASCII letter or underscore (found '9')")
	src, err := os.ReadFile(filepath.Join(dir, "kinds_gen.go"))
	require.NoError(t, err, "valid kinds are still written")
	assert.Contains(t, string(src), "type UserKind struct{}")
}

func TestRunJSON(t *testing.T) {
	dir := t.TempDir()
	bad := writeConfig(t, dir, "bad.yaml", "settings: {}\n")
	good := writeConfig(t, dir, "good.yaml", "kinds:\n  User:\n    tag: \"Hellö\"\n")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-pkg", "ids", "-json", bad, good}, &stdout, &stderr)
	assert.Equal(t, 1, code)

	var got []jsonDiagnostic
	sc := bufio.NewScanner(&stdout)
	for sc.Scan() {
		var d struct {
			Config   string `json:"config"`
			Severity string `json:"severity"`
			Message  string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(sc.Bytes(), &d))
		assert.Equal(t, "error", d.Severity)
		got = append(got, jsonDiagnostic{Config: d.Config, Message: d.Message})
	}
	require.Len(t, got, 2)
	messages := map[string]string{}
	for _, d := range got {
		messages[d.Config] = d.Message
	}
	assert.Equal(t, "missing field `kinds`", messages[bad])
	assert.True(t, strings.HasPrefix(messages[good], "tag must consist of"))

	_, err := os.Stat(filepath.Join(dir, "bad_gen.go"))
	assert.True(t, os.IsNotExist(err), "structural errors write nothing")
}

func TestRunInvalidOptions(t *testing.T) {
	dir := t.TempDir()
	config := writeConfig(t, dir, "kinds.yaml", "kinds:\n  User: {}\n")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-pkg", "type", "-out", filepath.Join(dir, "ids.txt"), config}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), `config error for \"Package\"`)
	assert.Contains(t, stderr.String(), `config error for \"Target\"`)
	_, err := os.Stat(filepath.Join(dir, "ids.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no configs", nil, 2},
		{"help", []string{"-h"}, 0},
		{"unknown flag", []string{"-nope", "kinds.yaml"}, 2},
		{"out with many configs", []string{"-out", "x.go", "a.yaml", "b.yaml"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, tt.want, run(context.Background(), tt.args, &stdout, &stderr))
		})
	}
}

func TestPackageName(t *testing.T) {
	tests := []struct {
		dir     string
		want    string
		wantErr bool
	}{
		{"ids", "ids", false},
		{"My-Ids.v2", "my_ids_v2", false},
		{"2fa", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			got, err := packageName(filepath.Join(t.TempDir(), tt.dir, "kinds_gen.go"))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
