package plugins

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/dotsetup/pkg/errors"
)

//go:embed plugins.yaml
var defaultManifest []byte

// Plugin is one shell plugin repository to clone.
type Plugin struct {
	// Name is the directory the plugin is cloned into
	Name string `yaml:"name"`

	// Repo is the clone URL
	Repo string `yaml:"repo"`

	// Dir optionally overrides the destination directory name
	Dir string `yaml:"dir,omitempty"`
}

// DirName returns the destination directory under the plugins dir.
func (p Plugin) DirName() string {
	if p.Dir != "" {
		return p.Dir
	}
	return p.Name
}

// Manifest is the plugin list.
type Manifest struct {
	Plugins []Plugin `yaml:"plugins"`
}

// LoadManifest reads the plugin manifest: the override file at
// overridePath when present, the embedded default otherwise. Only an
// absent override falls back; an override that exists but cannot be
// read is an error, not a silent switch to the default plugin set.
func LoadManifest(overridePath string) (*Manifest, error) {
	data := defaultManifest
	if overridePath != "" {
		content, err := os.ReadFile(overridePath)
		switch {
		case err == nil:
			data = content
		case !os.IsNotExist(err):
			return nil, errors.Wrapf(err, errors.ErrPluginManifest, "failed to read %s", overridePath)
		}
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Wrap(err, errors.ErrPluginManifest, "failed to parse plugin manifest")
	}

	for _, p := range manifest.Plugins {
		if p.Name == "" || p.Repo == "" {
			return nil, errors.Newf(errors.ErrPluginManifest,
				"plugin entries need name and repo, got name=%q repo=%q", p.Name, p.Repo)
		}
	}
	return &manifest, nil
}
