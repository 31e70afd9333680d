// Package emendapi normalizes Swagger 2.0, OpenAPI 3.0.x, and OpenAPI 3.1.x
// documents into a single emended OpenAPI 3.1 dialect, and downgrades an
// emended document back to OpenAPI 3.0.x or Swagger 2.0.
//
// # Overview
//
// The main packages beneath the root are:
//
//   - sniff: classify an already-decoded document by version, without converting it
//   - normalize: upgrade a source document into the emended dialect
//   - downgrade: re-express an emended document as an older dialect
//   - encoding: bridge YAML/JSON text to the generic value tree the rest of the module operates on
//
// Convert and Downgrade below are the two entry points most callers need;
// the mcpserver package exposes the same operations as MCP tools over
// stdio.
//
// # Quick start
//
//	v, err := encoding.DecodeYAML(data)
//	doc, result, err := emendapi.Convert(v)
//	tree, err := emended.Encode(doc)
//	out, err := encoding.EncodeYAML(tree)
package emendapi

import (
	"github.com/oas-emend/emendapi/downgrade"
	"github.com/oas-emend/emendapi/emended"
	"github.com/oas-emend/emendapi/normalize"
)

// Convert classifies v (an already-decoded document tree) and upgrades it
// into the emended dialect, applying opts. It mirrors normalize.Convert's
// contract: only an unrecognized version fails outright.
func Convert(v any, opts ...Option) (*emended.Document, *normalize.Result, error) {
	cfg := newConfig(opts...)
	cfg.logger.Debug("convert: starting")

	doc, result, err := normalize.Convert(v)
	if err != nil {
		cfg.logger.Error("convert: failed", "error", err)
		return nil, nil, err
	}

	if !cfg.includeInfo {
		filterNormalizeInfo(result)
	}
	if cfg.strict && len(result.Issues) > 0 {
		cfg.logger.Warn("convert: strict mode rejecting issues", "count", len(result.Issues))
		return nil, result, &StrictModeError{IssueCount: len(result.Issues)}
	}

	cfg.logger.Info("convert: done", "source", result.SourceDialect.String(), "issues", len(result.Issues))
	return doc, result, nil
}

// Downgrade re-expresses doc as version ("3.0" or "2.0"), applying opts. The
// returned value is a generic tree (map[string]any/[]any), ready to encode.
func Downgrade(doc *emended.Document, version string, opts ...Option) (any, *downgrade.Result, error) {
	cfg := newConfig(opts...)
	cfg.logger.Debug("downgrade: starting", "target", version)

	tree, result, err := downgrade.Downgrade(doc, version)
	if err != nil {
		cfg.logger.Error("downgrade: failed", "error", err)
		return nil, nil, err
	}

	if !cfg.includeInfo {
		filterDowngradeInfo(result)
	}
	if cfg.strict && len(result.Issues) > 0 {
		cfg.logger.Warn("downgrade: strict mode rejecting issues", "count", len(result.Issues))
		return nil, result, &StrictModeError{IssueCount: len(result.Issues)}
	}

	cfg.logger.Info("downgrade: done", "target", result.Target.String(), "issues", len(result.Issues))
	return tree, result, nil
}

func filterNormalizeInfo(result *normalize.Result) {
	kept := result.Issues[:0]
	for _, issue := range result.Issues {
		if issue.Severity == normalize.SeverityInfo {
			continue
		}
		kept = append(kept, issue)
	}
	result.Issues = kept
	result.InfoCount = 0
}

func filterDowngradeInfo(result *downgrade.Result) {
	kept := result.Issues[:0]
	for _, issue := range result.Issues {
		if issue.Severity == downgrade.SeverityInfo {
			continue
		}
		kept = append(kept, issue)
	}
	result.Issues = kept
	result.InfoCount = 0
}
