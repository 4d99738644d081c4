package hcl

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/seedgen/internal/config"
	"github.com/vk/seedgen/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL seed-file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the seed file at path and converts every attribute to text.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()

	var (
		file  *hcl.File
		diags hcl.Diagnostics
	)
	if filepath.Ext(path) == ".json" {
		file, diags = parser.ParseJSONFile(path)
	} else {
		file, diags = parser.ParseHCLFile(path)
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode seed file %s: %w", path, diags)
	}

	model := &config.Model{
		Source: path,
		Values: make(map[string]string, len(attrs)),
	}
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate %q in %s: %w", name, path, diags)
		}
		text, err := toText(val)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %q in %s: %w", name, path, err)
		}
		logger.Debug("Seed value loaded.", "name", name, "source_type", val.Type().FriendlyName(), "value", text)
		model.Values[name] = text
	}

	logger.Debug("HCL loading complete.", "values", len(model.Values))
	return model, nil
}
