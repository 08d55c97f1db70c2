package report

import (
	"encoding/json"
	"fmt"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/mark3labs/ghstatus/internal/domain"
	"gopkg.in/yaml.v3"
)

// chromaStyle matches the report theme; chroma falls back to its default when unknown.
const chromaStyle = "catppuccin-mocha"

// JSON writes info as an indented JSON document.
func (r *Renderer) JSON(info *domain.UserInfo) error {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling user info: %w", err)
	}
	return r.highlight(string(data)+"\n", "json")
}

// YAML writes info as a YAML document.
func (r *Renderer) YAML(info *domain.UserInfo) error {
	data, err := yaml.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshaling user info: %w", err)
	}
	return r.highlight(string(data), "yaml")
}

// highlight emits true-color escapes; the colorprofile writer downsamples or strips them.
func (r *Renderer) highlight(source, lexer string) error {
	if err := quick.Highlight(r.w, source, lexer, "terminal16m", chromaStyle); err != nil {
		return fmt.Errorf("highlighting %s: %w", lexer, err)
	}
	return nil
}
