// Package deploy serves the static deployment artifacts: a dependency list
// and a container build recipe for the daemon.
package deploy

import (
	"encoding/base64"
	"strings"

	"toolbox/go-backend/internal/domains/contracts"
	"toolbox/go-backend/pkg/models"
)

const (
	DependenciesFile = "dependencies.txt"
	DockerfileFile   = "Dockerfile"
)

var dependencies = []string{
	"github.com/bmatcuk/doublestar/v4",
	"github.com/brianvoe/gofakeit/v7",
	"github.com/go-chi/chi/v5",
	"github.com/google/uuid",
	"github.com/hashicorp/hcl/v2",
	"github.com/ledongthuc/pdf",
	"github.com/mr-tron/base58",
	"github.com/multiformats/go-multiaddr",
	"github.com/pierrec/lz4/v4",
	"github.com/prometheus/client_golang",
	"github.com/skip2/go-qrcode",
	"github.com/spf13/cobra",
	"github.com/tyler-smith/go-bip39",
	"github.com/xuri/excelize/v2",
	"github.com/zclconf/go-cty",
	"golang.org/x/crypto",
	"golang.org/x/image",
	"golang.org/x/text",
	"golang.org/x/time",
	"gopkg.in/yaml.v3",
}

const dockerfile = `FROM golang:1.26-alpine AS build
WORKDIR /src
COPY go.mod go.sum ./
RUN go mod download
COPY . .
RUN CGO_ENABLED=0 go build -trimpath -o /out/toolboxd ./cmd/toolboxd

FROM gcr.io/distroless/static-debian12
COPY --from=build /out/toolboxd /usr/local/bin/toolboxd
COPY configs/config.yaml /etc/toolbox/config.yaml
EXPOSE 8787
ENTRYPOINT ["/usr/local/bin/toolboxd", "--config", "/etc/toolbox/config.yaml", "--rpc-addr", "0.0.0.0:8787"]
`

type artifactDef struct {
	description string
	mimeType    string
	content     func() string
}

var artifacts = map[string]artifactDef{
	DependenciesFile: {
		description: "Module dependencies of the toolbox daemon, one per line.",
		mimeType:    "text/plain; charset=utf-8",
		content:     func() string { return strings.Join(dependencies, "\n") + "\n" },
	},
	DockerfileFile: {
		description: "Container image recipe that builds and runs toolboxd.",
		mimeType:    "text/plain; charset=utf-8",
		content:     func() string { return dockerfile },
	},
}

// Names lists artifact file names in display order.
func Names() []string {
	return []string{DependenciesFile, DockerfileFile}
}

// Content returns the raw artifact bytes and mime type.
func Content(name string) ([]byte, string, error) {
	def, ok := artifacts[name]
	if !ok {
		return nil, "", contracts.InvalidInputf("unknown artifact %q", name)
	}
	return []byte(def.content()), def.mimeType, nil
}

func Artifact(name string) (models.Artifact, error) {
	def, ok := artifacts[name]
	if !ok {
		return models.Artifact{}, contracts.InvalidInputf("unknown artifact %q", name)
	}
	return models.Artifact{
		Name:        name,
		Description: def.description,
		Download: models.Download{
			FileName:      name,
			MimeType:      def.mimeType,
			ContentBase64: base64.StdEncoding.EncodeToString([]byte(def.content())),
		},
	}, nil
}

func All() []models.Artifact {
	out := make([]models.Artifact, 0, len(artifacts))
	for _, name := range Names() {
		a, _ := Artifact(name)
		out = append(out, a)
	}
	return out
}
