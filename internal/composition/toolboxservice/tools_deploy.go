package toolboxservice

import (
	"toolbox/go-backend/internal/domains/deploy"
	"toolbox/go-backend/pkg/models"
)

func (s *Service) DeployArtifacts() []models.Artifact {
	var err error
	defer s.track("deploy.artifacts", s.now(), &err)
	return deploy.All()
}

func (s *Service) DeployArtifact(name string) (result models.Artifact, err error) {
	defer s.track("deploy.artifact", s.now(), &err)
	return deploy.Artifact(name)
}

// DeployFile returns raw artifact bytes for the download endpoint.
func (s *Service) DeployFile(name string) (content []byte, mimeType string, err error) {
	defer s.track("deploy.file", s.now(), &err)
	return deploy.Content(name)
}
