package generatecmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	internalcmd "cargo-docker-build.run/internal/cmd"
	"cargo-docker-build.run/internal/workspace"
)

const svcManifest = `[package]
name = "svc-a"
version = "0.1.0"
authors = ["Jane <jane@example.com>"]
description = "A service"
repository = "https://example.com/svc-a"
`

func newWorkspace(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	}

	return dir
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	dir := newWorkspace(t, map[string]string{
		"Cargo.toml":       "[workspace]\nmembers = [\"lib-core\", \"svc-a\"]\n",
		"svc-a/Cargo.toml": svcManifest,
	})

	factory := &generatorFactoryMock{}
	factory.On("Generator").Return(internalcmd.NewGenerate())

	cmd := NewCmd(factory)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"--dir", dir})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "lib-core (excluded: library prefix)")
	assert.Contains(t, stdout.String(), "svc-a -> svc-a:v0.1.0")
	assert.Contains(t, stdout.String(), "wrote "+filepath.Join(dir, "Dockerfile"))
	assert.Empty(t, stderr.String())

	dockerfile, err := os.ReadFile(filepath.Join(dir, "Dockerfile"))
	require.NoError(t, err)
	assert.Contains(t, string(dockerfile), "### svc-a")
}

func TestGenerateSkippedMembers(t *testing.T) {
	t.Parallel()

	dir := newWorkspace(t, map[string]string{
		"Cargo.toml":            "[workspace]\nmembers = [\"svc-a\", \"svc-broken\"]\n",
		"svc-a/Cargo.toml":      svcManifest,
		"svc-broken/Cargo.toml": "[package]\nname = \"svc-broken\"\n",
	})

	factory := &generatorFactoryMock{}
	factory.On("Generator").Return(internalcmd.NewGenerate())

	cmd := NewCmd(factory)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"--dir", dir})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "svc-broken (rejected)")
	assert.Contains(t, stderr.String(), "1 member(s) skipped")
}

func TestGenerateStrict(t *testing.T) {
	t.Parallel()

	dir := newWorkspace(t, map[string]string{
		"Cargo.toml":            "[workspace]\nmembers = [\"svc-broken\"]\n",
		"svc-broken/Cargo.toml": "[package]\nname = \"svc-broken\"\n",
	})

	factory := &generatorFactoryMock{}
	factory.On("Generator").Return(internalcmd.NewGenerate())

	cmd := NewCmd(factory)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"--dir", dir, "--strict"})

	err := cmd.Execute()
	require.ErrorIs(t, err, internalcmd.ErrGenerationAborted)
	require.ErrorIs(t, err, workspace.ErrMissingKey)
	assert.NoFileExists(t, filepath.Join(dir, "Dockerfile"))
}

func TestGenerateOptions(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		Args     []string
		Expected internalcmd.GenerateFromWorkspaceConfig
	}{
		"defaults": {
			Args: []string{},
			Expected: internalcmd.GenerateFromWorkspaceConfig{
				Dir:            ".",
				DockerfilePath: "Dockerfile",
				ScriptPath:     "build_docker.sh",
				Policy:         internalcmd.FailurePolicySkip,
				LibraryPrefix:  "lib",
			},
		},
		"all flags": {
			Args: []string{
				"-C", "ws",
				"--dockerfile", "out/Dockerfile",
				"--script", "out/build.sh",
				"--library-prefix", "crate-",
				"--strict",
				"--dedupe",
			},
			Expected: internalcmd.GenerateFromWorkspaceConfig{
				Dir:            "ws",
				DockerfilePath: "out/Dockerfile",
				ScriptPath:     "out/build.sh",
				Policy:         internalcmd.FailurePolicyAbort,
				Deduplicate:    true,
				LibraryPrefix:  "crate-",
			},
		},
	} {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			gen := &generatorMock{}
			gen.On("GenerateFromWorkspace", mock.Anything, mock.Anything).
				Return(nil, errors.New("stop"))

			factory := &generatorFactoryMock{}
			factory.On("Generator").Return(gen)

			cmd := NewCmd(factory)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tc.Args)

			require.Error(t, cmd.Execute())
			assert.Equal(t, tc.Expected, gen.Config)
		})
	}
}

func TestGenerateNoSummary(t *testing.T) {
	t.Parallel()

	dir := newWorkspace(t, map[string]string{
		"Cargo.toml": svcManifest,
	})

	factory := &generatorFactoryMock{}
	factory.On("Generator").Return(internalcmd.NewGenerate())

	cmd := NewCmd(factory)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"--dir", dir, "--summary=false"})

	require.NoError(t, cmd.Execute())
	assert.Empty(t, stdout.String())
	assert.FileExists(t, filepath.Join(dir, "build_docker.sh"))
}

func TestGenerateInvalidArgs(t *testing.T) {
	t.Parallel()

	for name, args := range map[string][]string{
		"positional":       {"extra"},
		"empty dir":        {"--dir", ""},
		"empty dockerfile": {"--dockerfile", ""},
		"empty script":     {"--script", ""},
	} {
		args := args

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			factory := &generatorFactoryMock{}

			cmd := NewCmd(factory)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(args)

			require.Error(t, cmd.Execute())
			factory.AssertNotCalled(t, "Generator")
		})
	}
}

type generatorFactoryMock struct {
	mock.Mock
}

func (m *generatorFactoryMock) Generator() Generator {
	args := m.Called()

	return args.Get(0).(Generator)
}

type generatorMock struct {
	mock.Mock

	Config internalcmd.GenerateFromWorkspaceConfig
}

func (m *generatorMock) GenerateFromWorkspace(
	ctx context.Context, opts ...internalcmd.GenerateFromWorkspaceOption,
) (*internalcmd.GenerateResult, error) {
	m.Config.Option(opts...)
	args := m.Called(ctx, opts)

	res, _ := args.Get(0).(*internalcmd.GenerateResult)

	return res, args.Error(1)
}
