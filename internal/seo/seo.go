// Package seo builds the JSON-LD structured data embedded in the home page.
package seo

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/jsonc"

	"github.com/subham-04/file-hash-checker-site/internal/constants"
	internalerrors "github.com/subham-04/file-hash-checker-site/internal/errors"
)

//go:embed structured_data.jsonc
var source []byte

// requiredTypes are the node types the graph must describe.
var requiredTypes = []string{"WebApplication", "SoftwareApplication", "WebSite", "Organization"}

// StructuredData is a compacted, HTML-safe JSON-LD document.
type StructuredData struct {
	raw   []byte
	types []string
}

type document struct {
	Context string `json:"@context"`
	Graph   []struct {
		Type string `json:"@type"`
		ID   string `json:"@id"`
	} `json:"@graph"`
}

// Build parses the embedded JSON-LD source and rebases every URL under the
// canonical site URL onto siteURL. An empty siteURL keeps the canonical one.
func Build(siteURL string) (*StructuredData, error) {
	return build(source, siteURL)
}

func build(src []byte, siteURL string) (*StructuredData, error) {
	data := jsonc.ToJSON(src)

	siteURL = strings.TrimSuffix(siteURL, "/")
	if siteURL != "" && siteURL != constants.DefaultSiteURL {
		escaped, err := json.Marshal(siteURL)
		if err != nil {
			return nil, errors.Wrap(err, "encode site url")
		}
		data = bytes.ReplaceAll(data, []byte(constants.DefaultSiteURL), bytes.Trim(escaped, `"`))
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(internalerrors.ErrInvalidStructuredData, err.Error())
	}
	if doc.Context != "https://schema.org" {
		return nil, errors.Wrapf(internalerrors.ErrInvalidStructuredData, "unexpected @context %q", doc.Context)
	}

	seen := make(map[string]bool, len(doc.Graph))
	types := make([]string, 0, len(doc.Graph))
	for i, node := range doc.Graph {
		if node.Type == "" || node.ID == "" {
			return nil, errors.Wrapf(internalerrors.ErrInvalidStructuredData, "@graph[%d]: missing @type or @id", i)
		}
		seen[node.Type] = true
		types = append(types, node.Type)
	}
	for _, t := range requiredTypes {
		if !seen[t] {
			return nil, errors.Wrapf(internalerrors.ErrInvalidStructuredData, "missing %s node", t)
		}
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return nil, errors.Wrap(internalerrors.ErrInvalidStructuredData, err.Error())
	}
	var safe bytes.Buffer
	json.HTMLEscape(&safe, compact.Bytes())

	return &StructuredData{raw: safe.Bytes(), types: types}, nil
}

// Bytes returns the compacted document. Callers must not modify it.
func (s *StructuredData) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.raw
}

// JS returns the document for use inside a <script type="application/ld+json"> element.
func (s *StructuredData) JS() template.JS {
	return template.JS(s.Bytes())
}

// Types lists the @type of every graph node in document order.
func (s *StructuredData) Types() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.types...)
}
