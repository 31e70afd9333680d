package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/oas-emend/emendapi/sniff"
)

type sniffOutput struct {
	Classification string `json:"classification"`
}

func handleSniffVersion(_ context.Context, _ *mcp.CallToolRequest, input docInput) (*mcp.CallToolResult, sniffOutput, error) {
	v, err := input.decode()
	if err != nil {
		return errResult(err), sniffOutput{}, nil
	}
	return nil, sniffOutput{Classification: sniff.Classify(v).String()}, nil
}
