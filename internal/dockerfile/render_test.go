package dockerfile

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var updateGolden = flag.Bool("update", false, "rewrite golden files in testdata")

var svcA = Image{
	Manifest:    "svc-a/Cargo.toml",
	Name:        "svc-a",
	Version:     "0.1.0",
	Authors:     []string{"Jane Doe"},
	Description: "A service",
	Repository:  "git@example.com",
}

func readTestdata(t *testing.T, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	return string(data)
}

func TestAssemble_Golden(t *testing.T) {
	t.Parallel()

	artifacts, err := Assemble([]Image{svcA})
	require.NoError(t, err)

	if *updateGolden {
		require.NoError(t, os.WriteFile(filepath.Join("testdata", "svc-a.Dockerfile"), artifacts.Dockerfile, 0o644))
		require.NoError(t, os.WriteFile(filepath.Join("testdata", "svc-a.build_docker.sh"), artifacts.Script, 0o644))
	}

	assert.Equal(t, readTestdata(t, "svc-a.Dockerfile"), string(artifacts.Dockerfile))
	assert.Equal(t, readTestdata(t, "svc-a.build_docker.sh"), string(artifacts.Script))
}

func TestAssemble_NoImages(t *testing.T) {
	t.Parallel()

	artifacts, err := Assemble(nil)
	require.NoError(t, err)

	dockerfile := string(artifacts.Dockerfile)
	assert.Contains(t, dockerfile, `LABEL stage="builder"`)
	assert.NotContains(t, dockerfile, "###")

	script := string(artifacts.Script)
	assert.True(t, strings.HasPrefix(script, "#!/usr/bin/env bash\n"))
	assert.NotContains(t, script, "docker tag")
	assert.True(t, strings.HasSuffix(script, "docker image prune --filter label=stage=builder -f\n"))
}

func TestAssemble_Order(t *testing.T) {
	t.Parallel()

	images := []Image{
		{Name: "zeta", Version: "2", Authors: []string{"z"}},
		{Name: "alpha", Version: "1", Authors: []string{"a"}},
		{Name: "zeta", Version: "2", Authors: []string{"z"}},
	}

	artifacts, err := Assemble(images)
	require.NoError(t, err)

	sections := strings.Split(string(artifacts.Dockerfile), "### ")[1:]
	require.Len(t, sections, len(images))

	tagLines := []string{}
	for _, line := range strings.Split(string(artifacts.Script), "\n") {
		if strings.HasPrefix(line, "docker tag ") {
			tagLines = append(tagLines, line)
		}
	}
	require.Len(t, tagLines, len(images))

	for i, img := range images {
		assert.True(t, strings.HasPrefix(sections[i], img.Name+"\n"), sections[i])
		assert.Contains(t, sections[i], `tag="`+img.Tag()+`"`)
		assert.Contains(t, tagLines[i], "label=tag="+img.Tag()+" ")
		assert.True(t, strings.HasSuffix(tagLines[i], " "+img.Tag()), tagLines[i])
	}
}

func TestAssemble_Idempotent(t *testing.T) {
	t.Parallel()

	first, err := Assemble([]Image{svcA})
	require.NoError(t, err)
	second, err := Assemble([]Image{svcA})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderSection(t *testing.T) {
	t.Parallel()

	img := svcA
	img.Authors = []string{"Jane Doe", "John Doe"}
	img.Description = `multi
line "quoted"`

	section, err := RenderSection(img)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(section, "### svc-a\n"))
	assert.Contains(t, section, "COPY --from=builder /usr/src/myapp/target/release/svc-a /usr/local/bin/svc-a\n")
	assert.Contains(t, section, `LABEL maintainer="Jane Doe" \`)
	assert.NotContains(t, section, "John Doe")
	assert.Contains(t, section, `description="multi line \"quoted\"" \`)
	assert.Contains(t, section, "EXPOSE 8080/tcp 8081/tcp\n")
	assert.Contains(t, section, `CMD ["svc-a"]`)
	assert.NotContains(t, section, "stage=")
}

func TestRenderTagCommand(t *testing.T) {
	t.Parallel()

	line, err := RenderTagCommand(svcA)
	require.NoError(t, err)

	assert.Equal(t, "\ndocker tag $(docker image ls --filter label=tag=svc-a:v0.1.0 -q) svc-a:v0.1.0\n", line)
}

func TestRenderTagCommand_Quoting(t *testing.T) {
	t.Parallel()

	line, err := RenderTagCommand(Image{Name: "svc a", Version: "1", Authors: []string{"x"}})
	require.NoError(t, err)

	assert.Equal(t, "\ndocker tag $(docker image ls --filter 'label=tag=svc a:v1' -q) 'svc a:v1'\n", line)
}
