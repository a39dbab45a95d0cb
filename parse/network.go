// Package parse: network file loading, text and YAML.
package parse

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kiwirail/core"
)

// networkDoc mirrors the YAML network layout:
//
//	routes:
//	  - {from: A, to: B, distance: 5}
type networkDoc struct {
	Routes []routeDoc `yaml:"routes"`
}

type routeDoc struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Distance int64  `yaml:"distance"`
}

// Network loads the edge list of a network file, picking the format
// by extension: ".yaml"/".yml" decode the routes document, everything
// else is read as text (edge tokens separated by commas or newlines,
// '#' opening a comment line).
//
// The returned edges are exactly what the file said, in file order;
// building them into a graph, duplicates included, is core's job.
func Network(path string) ([]core.Edge, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("parse: read network: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return networkFromYAML(raw)
	default:
		return networkFromText(string(raw))
	}
}

func networkFromYAML(raw []byte) ([]core.Edge, error) {
	var doc networkDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse: decode network: %w", err)
	}

	edges := make([]core.Edge, 0, len(doc.Routes))
	for _, r := range doc.Routes {
		e, err := validEdge(r.From, r.To, r.Distance)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}

	return edges, nil
}

func networkFromText(text string) ([]core.Edge, error) {
	edges := make([]core.Edge, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parsed, err := Edges(line)
		if err != nil {
			return nil, err
		}
		edges = append(edges, parsed...)
	}

	return edges, nil
}
