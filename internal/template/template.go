// Package template renders OpenSSL configuration templates.
//
// Placeholders take the form {{KEY}}. Rendering is a literal substitution;
// placeholders without a supplied value are left in place.
package template

import (
	"certmgr/internal/utils"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

//go:embed defaults/*.template
var defaults embed.FS

var placeholderPattern = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)

func NewRenderer() *Renderer {
	return &Renderer{
		filesystemHandler: utils.NewFilesystemExecutor(),
	}
}

type Renderer struct {
	filesystemHandler utils.FilesystemHandler
}

// Render reads templatePath, substitutes vars and writes outputPath.
func (r *Renderer) Render(templatePath string, outputPath string, vars map[string]string) error {
	content, err := r.filesystemHandler.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("read template %s: %w", templatePath, err)
	}
	rendered := RenderString(string(content), vars)
	if err := r.filesystemHandler.WriteFile(outputPath, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	return nil
}

// SeedDefaults writes the built-in templates into dir, skipping any
// template already present. It returns the paths it wrote.
func (r *Renderer) SeedDefaults(dir string) ([]string, error) {
	entries, err := fs.ReadDir(defaults, "defaults")
	if err != nil {
		return nil, err
	}

	var written []string
	for _, e := range entries {
		dst := filepath.Join(dir, e.Name())
		if r.filesystemHandler.IsExist(dst) {
			continue
		}
		b, err := Default(e.Name())
		if err != nil {
			return written, err
		}
		if err := r.filesystemHandler.WriteFile(dst, b, 0o644); err != nil {
			return written, err
		}
		written = append(written, dst)
	}
	return written, nil
}

func RenderString(content string, vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	oldnew := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		oldnew = append(oldnew, "{{"+k+"}}", vars[k])
	}
	return strings.NewReplacer(oldnew...).Replace(content)
}

// Placeholders lists the distinct placeholder names found in content,
// in order of first appearance.
func Placeholders(content string) []string {
	var names []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(content, -1) {
		if !slices.Contains(names, m[1]) {
			names = append(names, m[1])
		}
	}
	return names
}

// AltNames renders the body of an OpenSSL [alt_names] section.
func AltNames(dnsNames []string, ipAddresses []string) string {
	var lines []string
	for i, d := range dnsNames {
		lines = append(lines, "DNS."+strconv.Itoa(i+1)+" = "+d)
	}
	for i, ip := range ipAddresses {
		lines = append(lines, "IP."+strconv.Itoa(i+1)+" = "+ip)
	}
	return strings.Join(lines, "\n")
}

// Default returns the built-in template with the given file name.
func Default(name string) ([]byte, error) {
	return defaults.ReadFile("defaults/" + name)
}
