package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/oas-emend/emendapi/downgrade"
	"github.com/oas-emend/emendapi/emended"
	"github.com/oas-emend/emendapi/encoding"
	"github.com/oas-emend/emendapi/normalize"
)

type downgradeInput struct {
	Document string `json:"document" jsonschema:"The emended document to downgrade, as YAML or JSON text"`
	Target   string `json:"target"   jsonschema:"Target version: \"3.0\" or \"2.0\""`
}

type downgradeIssue struct {
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Message  string `json:"message"`
}

type downgradeOutput struct {
	Target     string           `json:"target"`
	IssueCount int              `json:"issue_count"`
	Issues     []downgradeIssue `json:"issues,omitempty"`
	Document   string           `json:"document"`
}

func handleDowngradeDocument(_ context.Context, _ *mcp.CallToolRequest, input downgradeInput) (*mcp.CallToolResult, downgradeOutput, error) {
	if input.Target == "" {
		return errResult(fmt.Errorf("target is required")), downgradeOutput{}, nil
	}

	v, err := (docInput{Document: input.Document}).decode()
	if err != nil {
		return errResult(err), downgradeOutput{}, nil
	}

	doc, err := decodeEmended(v)
	if err != nil {
		return errResult(err), downgradeOutput{}, nil
	}

	tree, result, err := downgrade.Downgrade(doc, input.Target)
	if err != nil {
		return errResult(err), downgradeOutput{}, nil
	}

	out, err := encoding.EncodeYAML(tree)
	if err != nil {
		return errResult(err), downgradeOutput{}, nil
	}

	output := downgradeOutput{
		Target:     result.Target.String(),
		IssueCount: len(result.Issues),
		Document:   string(out),
	}
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, downgradeIssue{
			Severity: issue.Severity.String(),
			Path:     issue.Path,
			Message:  issue.Message,
		})
	}
	return nil, output, nil
}

// decodeEmended runs v through normalize.Convert so downgrade always
// receives a well-formed *emended.Document. An already-emended tree takes
// the same path; Convert is idempotent on emended input.
func decodeEmended(v any) (*emended.Document, error) {
	doc, _, err := normalize.Convert(v)
	if err != nil {
		return nil, err
	}
	return doc, nil
}
