// Package topics serves the bundled long-form documentation: the policy
// conventions behind the configuration (modifier-key ownership, fzf
// routing) that do not fit in --help output.
package topics

import (
	"embed"
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/dotsetup/pkg/errors"
)

//go:embed docs/*.md
var docsFS embed.FS

// Topic is one documentation page.
type Topic struct {
	// Name is the topic identifier used on the command line
	Name string

	// Title is the first heading of the document
	Title string
}

// List returns the available topics sorted by name.
func List() ([]Topic, error) {
	entries, err := docsFS.ReadDir("docs")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to read embedded docs")
	}

	var result []Topic
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".md")
		content, err := docsFS.ReadFile(path.Join("docs", entry.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "failed to read topic %s", name)
		}
		result = append(result, Topic{Name: name, Title: firstHeading(string(content))})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// Content returns the raw markdown of a topic.
func Content(name string) (string, error) {
	data, err := docsFS.ReadFile(path.Join("docs", name+".md"))
	if err != nil {
		return "", errors.Newf(errors.ErrNotFound, "no such topic: %s", name)
	}
	return string(data), nil
}

func firstHeading(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
	}
	return ""
}
