package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/oas-emend/emendapi/emended"
	"github.com/oas-emend/emendapi/encoding"
	"github.com/oas-emend/emendapi/normalize"
)

type convertIssue struct {
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Message  string `json:"message"`
}

type convertOutput struct {
	SourceVersion string         `json:"source_version"`
	IssueCount    int            `json:"issue_count"`
	Issues        []convertIssue `json:"issues,omitempty"`
	Document      string         `json:"document"`
}

func handleConvertDocument(_ context.Context, _ *mcp.CallToolRequest, input docInput) (*mcp.CallToolResult, convertOutput, error) {
	v, err := input.decode()
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	doc, result, err := normalize.Convert(v)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	tree, err := emended.Encode(doc)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}
	out, err := encoding.EncodeYAML(tree)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{
		SourceVersion: result.SourceDialect.String(),
		IssueCount:    len(result.Issues),
		Document:      string(out),
	}
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, convertIssue{
			Severity: issue.Severity.String(),
			Path:     issue.Path,
			Message:  issue.Message,
		})
	}
	return nil, output, nil
}
