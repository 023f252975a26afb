package dockerfile

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("artifacts").
		Option("missingkey=error").
		Funcs(templateFuncs()).
		ParseFS(templateFS, "templates/*.tmpl"),
)

const (
	dockerfilePreamble = "dockerfile.preamble"
	dockerfileSection  = "dockerfile.section"
	scriptPreamble     = "script.preamble"
	scriptTag          = "script.tag"
	scriptTrailer      = "script.trailer"
)

type renderContext struct {
	Image

	BuilderImage string
	RuntimeImage string
	BuildDir     string
	StageLabel   string
	Ports        []Port
}

func newRenderContext(img Image) renderContext {
	return renderContext{
		Image:        img,
		BuilderImage: BuilderImage,
		RuntimeImage: RuntimeImage,
		BuildDir:     BuildDir,
		StageLabel:   StageLabel,
		Ports:        ExposedPorts,
	}
}

// Artifacts holds the complete content of both generated files.
type Artifacts struct {
	Dockerfile []byte
	Script     []byte
}

// Assemble renders both artifacts for images, in the given order.
// Section i of the Dockerfile and tag command i of the script belong to images[i].
func Assemble(images []Image) (*Artifacts, error) {
	var dockerfile, script bytes.Buffer

	if err := render(&dockerfile, dockerfilePreamble, newRenderContext(Image{})); err != nil {
		return nil, err
	}
	if err := render(&script, scriptPreamble, newRenderContext(Image{})); err != nil {
		return nil, err
	}

	for _, img := range images {
		if err := render(&dockerfile, dockerfileSection, newRenderContext(img)); err != nil {
			return nil, fmt.Errorf("rendering section of %s: %w", img.Manifest, err)
		}
		if err := render(&script, scriptTag, newRenderContext(img)); err != nil {
			return nil, fmt.Errorf("rendering tag command of %s: %w", img.Manifest, err)
		}
	}

	if err := render(&script, scriptTrailer, newRenderContext(Image{})); err != nil {
		return nil, err
	}

	return &Artifacts{
		Dockerfile: dockerfile.Bytes(),
		Script:     script.Bytes(),
	}, nil
}

// RenderSection renders the Dockerfile stage of a single image.
func RenderSection(img Image) (string, error) {
	var buf bytes.Buffer
	if err := render(&buf, dockerfileSection, newRenderContext(img)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderTagCommand renders the script line tagging a single image.
func RenderTagCommand(img Image) (string, error) {
	var buf bytes.Buffer
	if err := render(&buf, scriptTag, newRenderContext(img)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func render(buf *bytes.Buffer, name string, data renderContext) error {
	if err := templates.ExecuteTemplate(buf, name, data); err != nil {
		return fmt.Errorf("executing template %s: %w", name, err)
	}
	return nil
}
