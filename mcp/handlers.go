package mcp

import (
	"bytes"
	"context"
	"fmt"

	"github.com/davidepi/bincc/domain"
	"github.com/davidepi/bincc/service"
	"github.com/mark3labs/mcp-go/mcp"
)

// HandleStructureFunction handles the structure_function tool: reduce one
// function, identified by its entry offset, and return it rendered in the
// requested format. Grounded on mcp/handlers.go's HandleAnalyzeCode
// argument-parsing shape.
func (d *Dependencies) HandleStructureFunction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	binary, ok := args["binary"].(string)
	if !ok {
		return mcp.NewToolResultError("binary parameter is required and must be a string"), nil
	}
	offsetF, ok := args["offset"].(float64)
	if !ok {
		return mcp.NewToolResultError("offset parameter is required and must be a number"), nil
	}
	format := "json"
	if f, ok := args["format"].(string); ok && f != "" {
		format = f
	}

	result, err := service.StructureFunction(ctx, binary, domain.Function{Offset: uint64(offsetF)})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("structuring failed: %v", err)), nil
	}
	if result.Err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("function CFG unavailable: %v", result.Err)), nil
	}

	report := &service.BatchReport{Binaries: []string{binary}, Results: []service.FunctionResult{result}}
	if result.Ok {
		report.Succeeded = 1
	} else {
		report.Failed = 1
	}

	var buf bytes.Buffer
	if err := service.WriteReport(&buf, report, format); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

// HandleStructureBinary handles the structure_binary tool: reduce every
// function of a binary and return the aggregate report.
func (d *Dependencies) HandleStructureBinary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}
	binary, ok := args["binary"].(string)
	if !ok {
		return mcp.NewToolResultError("binary parameter is required and must be a string"), nil
	}
	format := "json"
	if f, ok := args["format"].(string); ok && f != "" {
		format = f
	}

	report, err := service.StructureBinary(ctx, binary, d.pm)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("structuring failed: %v", err)), nil
	}

	var buf bytes.Buffer
	if err := service.WriteReport(&buf, report, format); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

// HandleCompareFunctions handles the compare_functions tool.
func (d *Dependencies) HandleCompareFunctions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}
	binaryA, ok := args["binary_a"].(string)
	if !ok {
		return mcp.NewToolResultError("binary_a parameter is required and must be a string"), nil
	}
	binaryB, ok := args["binary_b"].(string)
	if !ok {
		return mcp.NewToolResultError("binary_b parameter is required and must be a string"), nil
	}
	offsetA, ok := args["offset_a"].(float64)
	if !ok {
		return mcp.NewToolResultError("offset_a parameter is required and must be a number"), nil
	}
	offsetB, ok := args["offset_b"].(float64)
	if !ok {
		return mcp.NewToolResultError("offset_b parameter is required and must be a number"), nil
	}

	result, err := service.CompareFunctions(ctx, binaryA, domain.Function{Offset: uint64(offsetA)}, binaryB, domain.Function{Offset: uint64(offsetB)})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}

	if result.Cloned {
		return mcp.NewToolResultText(fmt.Sprintf("clone: yes (A node %d, B node %d)", result.NodeA, result.NodeB)), nil
	}
	return mcp.NewToolResultText("clone: no"), nil
}
