// Package tui drives an interactive terminal session that collects a value
// for each param of a webapp manifest.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-appmanifest/pkg/manifest"
	"github.com/goliatone/go-appmanifest/pkg/render"
)

// Renderer implements render.Renderer for terminal-driven sessions.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
}

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (render.Renderer, error) {
	driver, err := newSurveyDriver()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		driver:       driver,
		outputFormat: OutputFormatJSON,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatPrettyText {
		return "text/plain"
	}
	return "application/json"
}

// Render walks the manifest params in order, prompting for each value slot
// and serializing the collected bindings.
func (r *Renderer) Render(ctx context.Context, m manifest.Manifest, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	values := make(map[string]any, len(m.Params))
	for name, value := range options.Values {
		values[name] = value
	}

	for _, p := range m.Params {
		if err := r.promptParam(ctx, p, values); err != nil {
			return nil, err
		}
	}

	if mapping := render.CheckBindings(m, values); !mapping.Valid() {
		return nil, fmt.Errorf("tui: collected bindings failed validation: %v", mapping)
	}

	return r.serialize(values)
}

func (r *Renderer) promptParam(ctx context.Context, p manifest.Param, values map[string]any) error {
	switch p.Kind {
	case manifest.KindSeparator:
		return r.driver.Info(ctx, fmt.Sprintf("── %s ──", p.DisplayLabel()))
	case manifest.KindBoolean:
		return r.promptBoolean(ctx, p, values)
	case manifest.KindInt:
		return r.promptInt(ctx, p, values)
	case manifest.KindSelect:
		return r.promptSelect(ctx, p, values)
	case manifest.KindKeyValueList:
		return r.promptKeyValueList(ctx, p, values)
	case manifest.KindFolder:
		return r.promptReference(ctx, p, values, "folder id")
	case manifest.KindDataset:
		return r.promptDataset(ctx, p, values)
	case manifest.KindColumn:
		return r.promptReference(ctx, p, values, "column name")
	default:
		return r.promptString(ctx, p, values)
	}
}

func (r *Renderer) promptString(ctx context.Context, p manifest.Param, values map[string]any) error {
	defaultVal := defaultString(p, values)
	for {
		response, err := r.driver.Input(ctx, InputConfig{
			Message: p.DisplayLabel(),
			Default: defaultVal,
			Help:    p.Description,
		})
		if err != nil {
			return err
		}
		if strings.TrimSpace(response) == "" {
			if p.Mandatory {
				if err := r.driver.Info(ctx, fmt.Sprintf("%s is required", p.DisplayLabel())); err != nil {
					return err
				}
				continue
			}
			delete(values, p.Name)
			return nil
		}
		values[p.Name] = response
		return nil
	}
}

func (r *Renderer) promptBoolean(ctx context.Context, p manifest.Param, values map[string]any) error {
	defaultVal := false
	if v, ok := values[p.Name].(bool); ok {
		defaultVal = v
	} else if v, ok := p.Default.(bool); ok {
		defaultVal = v
	}

	response, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: p.DisplayLabel(),
		Default: defaultVal,
		Help:    p.Description,
	})
	if err != nil {
		return err
	}
	values[p.Name] = response
	return nil
}

func (r *Renderer) promptInt(ctx context.Context, p manifest.Param, values map[string]any) error {
	defaultVal := ""
	if v, ok := values[p.Name]; ok {
		defaultVal = fmt.Sprint(v)
	} else if p.Default != nil {
		defaultVal = fmt.Sprint(p.Default)
	}

	for {
		response, err := r.driver.Input(ctx, InputConfig{
			Message: p.DisplayLabel(),
			Default: defaultVal,
			Help:    p.Description,
		})
		if err != nil {
			return err
		}
		trimmed := strings.TrimSpace(response)
		if trimmed == "" {
			if p.Mandatory {
				if err := r.driver.Info(ctx, fmt.Sprintf("%s is required", p.DisplayLabel())); err != nil {
					return err
				}
				continue
			}
			delete(values, p.Name)
			return nil
		}
		parsed, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			if err := r.driver.Info(ctx, fmt.Sprintf("Invalid %s: %v", p.Name, err)); err != nil {
				return err
			}
			continue
		}
		values[p.Name] = parsed
		return nil
	}
}

func (r *Renderer) promptSelect(ctx context.Context, p manifest.Param, values map[string]any) error {
	options := make([]string, 0, len(p.Choices))
	for _, c := range p.Choices {
		if c.Label != "" {
			options = append(options, c.Label)
		} else {
			options = append(options, c.Value)
		}
	}

	defaultIdx := -1
	current, _ := values[p.Name].(string)
	if current == "" {
		current, _ = p.Default.(string)
	}
	for i, c := range p.Choices {
		if c.Value == current {
			defaultIdx = i
			break
		}
	}

	for {
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      p.DisplayLabel(),
			Options:      options,
			DefaultIndex: defaultIdx,
			Help:         p.Description,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(p.Choices) {
			if err := r.driver.Info(ctx, fmt.Sprintf("Invalid %s selection", p.Name)); err != nil {
				return err
			}
			continue
		}
		values[p.Name] = p.Choices[idx].Value
		return nil
	}
}

// promptKeyValueList collects entries until the user submits an empty key.
func (r *Renderer) promptKeyValueList(ctx context.Context, p manifest.Param, values map[string]any) error {
	entries := map[string]string{}
	if existing, ok := values[p.Name].(map[string]string); ok {
		for k, v := range existing {
			entries[k] = v
		}
	}

	if err := r.driver.Info(ctx, fmt.Sprintf("%s (leave key empty to finish)", p.DisplayLabel())); err != nil {
		return err
	}

	for {
		key, err := r.driver.Input(ctx, InputConfig{
			Message: "Key",
			Help:    p.Description,
		})
		if err != nil {
			return err
		}
		key = strings.TrimSpace(key)
		if key == "" {
			if p.Mandatory && len(entries) == 0 {
				if err := r.driver.Info(ctx, fmt.Sprintf("%s needs at least one entry", p.DisplayLabel())); err != nil {
					return err
				}
				continue
			}
			break
		}

		value, err := r.driver.Input(ctx, InputConfig{
			Message: fmt.Sprintf("Value for %q", key),
			Default: entries[key],
		})
		if err != nil {
			return err
		}
		entries[key] = value
	}

	if len(entries) == 0 {
		delete(values, p.Name)
		return nil
	}
	values[p.Name] = entries
	return nil
}

func (r *Renderer) promptDataset(ctx context.Context, p manifest.Param, values map[string]any) error {
	if p.CanCreateDataset {
		create, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Create a new dataset for %s?", p.DisplayLabel()),
			Default: false,
			Help:    p.Description,
		})
		if err != nil {
			return err
		}
		if create {
			return r.promptReference(ctx, p, values, "new dataset name")
		}
	}
	return r.promptReference(ctx, p, values, "dataset id")
}

func (r *Renderer) promptReference(ctx context.Context, p manifest.Param, values map[string]any, what string) error {
	defaultVal := defaultString(p, values)
	message := fmt.Sprintf("%s (%s)", p.DisplayLabel(), what)

	for {
		response, err := r.driver.Input(ctx, InputConfig{
			Message: message,
			Default: defaultVal,
			Help:    p.Description,
		})
		if err != nil {
			return err
		}
		response = strings.TrimSpace(response)
		if response == "" {
			if p.Mandatory {
				if err := r.driver.Info(ctx, fmt.Sprintf("%s is required", p.DisplayLabel())); err != nil {
					return err
				}
				continue
			}
			delete(values, p.Name)
			return nil
		}
		values[p.Name] = response
		return nil
	}
}

func (r *Renderer) serialize(values map[string]any) ([]byte, error) {
	if r.outputFormat == OutputFormatPrettyText {
		return []byte(prettyPrint(values)), nil
	}
	return json.Marshal(values)
}

func prettyPrint(values map[string]any) string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		switch v := values[key].(type) {
		case map[string]string:
			entryKeys := make([]string, 0, len(v))
			for k := range v {
				entryKeys = append(entryKeys, k)
			}
			sort.Strings(entryKeys)
			for _, k := range entryKeys {
				fmt.Fprintf(&b, "%s.%s=%s\n", key, k, v[k])
			}
		default:
			fmt.Fprintf(&b, "%s=%v\n", key, v)
		}
	}
	return b.String()
}

func defaultString(p manifest.Param, values map[string]any) string {
	if v, ok := values[p.Name].(string); ok {
		return v
	}
	if v, ok := p.Default.(string); ok {
		return v
	}
	return ""
}
