// Package sidecar parses the optional designer-notes documents that sit next
// to asset files: for fireball.spell.yaml, a fireball.spell.md with YAML
// frontmatter and a markdown body. Sidecars carry human-facing metadata only;
// they never influence loading.
package sidecar

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/ewen/folio/internal/identity"
	"github.com/ewen/folio/internal/loader"
)

// Doc is a parsed sidecar document.
type Doc struct {
	Path    string
	Title   string
	Tags    []string
	Summary string
	Body    string
}

// frontmatter is the YAML header of a sidecar file.
type frontmatter struct {
	Title   string                `yaml:"title"`
	Tags    []string              `yaml:"tags"`
	Summary loader.OptionalString `yaml:"summary"`
}

// PathFor returns the sidecar path for an asset file: the final extension is
// replaced with ".md" (fireball.spell.yaml -> fireball.spell.md).
func PathFor(assetPath string) string {
	return strings.TrimSuffix(assetPath, filepath.Ext(assetPath)) + ".md"
}

// Parse reads and parses the sidecar document at path. When the frontmatter
// has no summary, the first paragraph of the body is used instead.
func Parse(path string) (*Doc, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sidecar %s: %w", path, err)
	}

	front, body := extractFrontmatter(content)
	if front == nil {
		return nil, fmt.Errorf("no frontmatter found in %s", path)
	}

	var fm frontmatter
	if err := yaml.Unmarshal(front, &fm); err != nil {
		return nil, fmt.Errorf("parse frontmatter in %s: %w", path, err)
	}
	if fm.Title == "" {
		return nil, fmt.Errorf("sidecar %s: title is required", path)
	}

	doc := &Doc{
		Path:  path,
		Title: fm.Title,
		Tags:  fm.Tags,
		Body:  strings.TrimSpace(string(body)),
	}
	doc.Summary = fm.Summary.Or(firstParagraph(body))
	return doc, nil
}

// Load looks up and parses the sidecar for an asset file. The second return
// is false when no sidecar exists, which is not an error. Hidden and disabled
// assets never serve sidecars, matching how the loader skips them.
func Load(assetPath string) (*Doc, bool, error) {
	if identity.IsHiddenOrDisabled(assetPath) {
		return nil, false, nil
	}
	path := PathFor(assetPath)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, false, nil
	}
	doc, err := Parse(path)
	if err != nil {
		return nil, true, err
	}
	return doc, true, nil
}

// extractFrontmatter splits content into the YAML frontmatter between ---
// markers and the remaining body. Returns a nil frontmatter when absent.
func extractFrontmatter(content []byte) ([]byte, []byte) {
	lines := strings.Split(string(content), "\n")
	if len(lines) < 3 || strings.TrimRight(lines[0], "\r") != "---" {
		return nil, content
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r") == "---" {
			front := []byte(strings.Join(lines[1:i], "\n"))
			body := []byte(strings.Join(lines[i+1:], "\n"))
			return front, body
		}
	}
	return nil, content
}

// firstParagraph returns the text of the first paragraph node in the markdown
// body, or "" when the body has none.
func firstParagraph(body []byte) string {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(body))

	var summary string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || summary != "" {
			return ast.WalkContinue, nil
		}
		if para, ok := n.(*ast.Paragraph); ok {
			parts := make([]string, 0, para.Lines().Len())
			for i := 0; i < para.Lines().Len(); i++ {
				segment := para.Lines().At(i)
				parts = append(parts, strings.TrimSpace(string(segment.Value(body))))
			}
			summary = strings.Join(parts, " ")
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return summary
}
