package build

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"selc/config"
	"selc/recipe"
	"selc/state"
)

// render serializes compiled selectors in the requested format. Text output
// is one selector per line; json and yaml keep recipe names.
func render(built []recipe.Built, format config.OutputFmt) ([]byte, error) {
	switch format {
	case config.OutputFmtText:
		var sb strings.Builder
		for _, b := range built {
			sb.WriteString(b.Selector)
			sb.WriteByte('\n')
		}
		return []byte(sb.String()), nil
	case config.OutputFmtJSON:
		data, err := json.MarshalIndent(built, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("unable to serialize results: %w", err)
		}
		return append(data, '\n'), nil
	case config.OutputFmtYAML:
		data, err := yaml.Marshal(built)
		if err != nil {
			return nil, fmt.Errorf("unable to serialize results: %w", err)
		}
		return data, nil
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// Values holds variables we make available for output name template expansion.
type Values struct {
	Name   string
	Format string
}

func expandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// buildOutputPath returns constructed output file path/name based on the
// source recipe path and configuration. It uses either default naming scheme
// or user-defined template, cleans the name up and transliterates it if
// requested.
func buildOutputPath(src, dst string, env *state.LocalEnv) string {
	baseName := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))

	name := baseName
	if tmpl := env.Cfg.Build.OutputNameTemplate; tmpl != "" {
		expanded, err := expandTemplate(config.OutputNameTemplateFieldName, tmpl,
			Values{Name: baseName, Format: env.Format.String()})
		if err != nil {
			env.Log.Warn("Unable to prepare output filename, using default", zap.Error(err))
		} else if len(expanded) > 0 {
			name = expanded
		}
	}

	if env.Cfg.Build.FileNameTransliterate {
		name = slug.Make(name)
	}
	return filepath.Join(dst, filepath.Dir(src), config.CleanFileName(name)+env.Format.Ext())
}
