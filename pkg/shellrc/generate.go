// Package shellrc generates the shell startup files that wire the
// deployed fragments into interactive shells. Generated files carry an
// ownership marker; files without it belong to the user and are never
// rewritten.
package shellrc

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotsetup/pkg/deploy"
	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/logging"
	"github.com/arthur-debert/dotsetup/pkg/types"
)

// Marker identifies rc files dotsetup generated and may regenerate.
// It must appear within the first MarkerWindow lines.
const Marker = "# dotsetup:generated"

// MarkerWindow is how many leading lines are searched for the marker.
const MarkerWindow = 3

const zshrcTemplate = Marker + `
# Generated zsh startup. Edit the fragments in {{.FragmentsDir}} instead;
# re-run "dotsetup shell" after adding or removing fragments.

export DOTSETUP_ZSH_DIR="{{.FragmentsDir}}"

{{range .Fragments -}}
[ -f "$DOTSETUP_ZSH_DIR/{{.}}" ] && source "$DOTSETUP_ZSH_DIR/{{.}}"
{{end -}}
`

const fishConfigTemplate = Marker + `
# Generated fish startup. Fragments in conf.d/ are sourced by fish itself,
# in lexical order; this file only holds what cannot live in a fragment.

set -g fish_greeting ""
`

// GenState describes what happened to one rc file.
type GenState string

const (
	// StateWritten means the file was created or regenerated
	StateWritten GenState = "written"
	// StateUserOwned means the file exists without a marker and was left alone
	StateUserOwned GenState = "user-owned"
	// StateUnchanged means the generated content already matches
	StateUnchanged GenState = "unchanged"
)

// Generator writes rc files. Writes go through the deploy executor as
// write-file operations, so dry-run handling and plan rendering work the
// same way they do for pack deployment.
type Generator struct {
	fs     types.FS
	exec   deploy.Executor
	logger zerolog.Logger
}

// NewGenerator creates a Generator writing through exec.
func NewGenerator(fs types.FS, exec deploy.Executor) *Generator {
	return &Generator{
		fs:     fs,
		exec:   exec,
		logger: logging.GetLogger("shellrc"),
	}
}

// IsGenerated reports whether the file at path carries the ownership
// marker in its first MarkerWindow lines. A missing file is not generated.
func IsGenerated(fs types.FS, path string) bool {
	data, err := fs.ReadFile(path)
	if err != nil {
		return false
	}
	lines := strings.SplitN(string(data), "\n", MarkerWindow+1)
	for i := 0; i < len(lines) && i < MarkerWindow; i++ {
		if strings.TrimSpace(lines[i]) == Marker {
			return true
		}
	}
	return false
}

// canWrite reports whether path is safe to (re)generate: absent, or
// previously generated by dotsetup.
func (g *Generator) canWrite(path string) bool {
	if _, err := g.fs.Lstat(path); err != nil {
		return true
	}
	return IsGenerated(g.fs, path)
}

// GenerateZshrc writes the zsh rc at rcPath, sourcing fragments (already
// in load order) from fragmentsDir.
func (g *Generator) GenerateZshrc(rcPath, fragmentsDir string, fragments []string) (GenState, error) {
	content, err := render("zshrc", zshrcTemplate, map[string]interface{}{
		"FragmentsDir": fragmentsDir,
		"Fragments":    fragments,
	})
	if err != nil {
		return "", err
	}
	return g.write(rcPath, content)
}

// GenerateFishConfig writes the fish config at rcPath.
func (g *Generator) GenerateFishConfig(rcPath string) (GenState, error) {
	content, err := render("fish", fishConfigTemplate, nil)
	if err != nil {
		return "", err
	}
	return g.write(rcPath, content)
}

func (g *Generator) write(path, content string) (GenState, error) {
	if !g.canWrite(path) {
		g.logger.Info().Str("path", path).Msg("rc file is user-owned, leaving untouched")
		return StateUserOwned, nil
	}

	if existing, err := g.fs.ReadFile(path); err == nil && string(existing) == content {
		g.logger.Debug().Str("path", path).Msg("rc file already up to date")
		return StateUnchanged, nil
	}

	if _, err := g.exec.Execute(g.plan(path, content)); err != nil {
		return "", errors.Wrapf(err, errors.ErrRcGenerate, "failed to write %s", path)
	}
	return StateWritten, nil
}

// plan emits the operations that produce the rc file: the parent dir if
// it is missing, then the file itself.
func (g *Generator) plan(path, content string) []types.Operation {
	var ops []types.Operation

	dir := filepath.Dir(path)
	if info, err := g.fs.Stat(dir); err != nil || !info.IsDir() {
		ops = append(ops, types.Operation{
			Type:        types.OperationCreateDir,
			Target:      dir,
			Description: fmt.Sprintf("create directory %s", dir),
			Status:      types.StatusReady,
		})
	}

	return append(ops, types.Operation{
		Type:        types.OperationWriteFile,
		Target:      path,
		Content:     content,
		Description: fmt.Sprintf("write %s", path),
		Status:      types.StatusReady,
	})
}

func render(name, tmpl string, data interface{}) (string, error) {
	t, err := template.New(name).Parse(tmpl)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal, "failed to parse %s template", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", errors.Wrapf(err, errors.ErrRcGenerate, "failed to render %s", name)
	}
	return buf.String(), nil
}
