package graphql

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/jamesprial/jianshu-mcp/internal/safety"
	"github.com/jamesprial/jianshu-mcp/internal/tools"
)

const toolNameGraphQLQuery = "graphql_query"

// DestructiveTools lists tool names that require confirmation before a
// mutation is sent.
var DestructiveTools = []string{toolNameGraphQLQuery}

// GraphQLTools returns the registration for the graphql_query escape hatch.
// Documents are validated against schema before they are sent; mutations
// require a confirmation token.
func GraphQLTools(client Client, schema *ast.Schema, confirm *safety.ConfirmationTracker, audit *safety.AuditLogger) []tools.Registration {
	return []tools.Registration{
		toolGraphQLQuery(client, schema, confirm, audit),
	}
}

// toolGraphQLQuery constructs the graphql_query Registration.
func toolGraphQLQuery(client Client, schema *ast.Schema, confirm *safety.ConfirmationTracker, audit *safety.AuditLogger) tools.Registration {
	tool := mcp.NewTool(toolNameGraphQLQuery,
		mcp.WithDescription("Execute an arbitrary GraphQL document against the Jianshu API. The document is validated against the Jianshu schema first. Mutations require a confirmation token."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The GraphQL query or mutation document to execute."),
		),
		mcp.WithString("variables",
			mcp.Description("Optional JSON object string of variables to pass with the document."),
		),
		mcp.WithString("operation_name",
			mcp.Description("Operation to run when the document defines more than one."),
		),
		mcp.WithString("confirmation_token",
			mcp.Description("Confirmation token returned by a prior call for mutations."),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		query := req.GetString("query", "")
		variablesStr := req.GetString("variables", "")
		operationName := req.GetString("operation_name", "")
		token := req.GetString("confirmation_token", "")

		// Raw query text and variable values never reach the audit log: both
		// can carry credentials. The digest identifies the exact document.
		digest := documentDigest(query, variablesStr)
		params := map[string]any{
			"operation_name":     operationName,
			"document":           digest,
			"confirmation_token": token,
		}

		var parsedVars map[string]any
		if variablesStr != "" {
			if err := json.Unmarshal([]byte(variablesStr), &parsedVars); err != nil {
				errMsg := fmt.Sprintf("parse variables JSON: %v", err)
				tools.LogAudit(audit, toolNameGraphQLQuery, params, "error: "+errMsg, start)
				return tools.ErrorResult(errMsg), nil
			}
			params["variables"] = variableNames(parsedVars)
		}

		doc, errs := gqlparser.LoadQuery(schema, query)
		if len(errs) > 0 {
			errMsg := fmt.Sprintf("invalid document: %v", errs)
			tools.LogAudit(audit, toolNameGraphQLQuery, params, "error: "+errMsg, start)
			return tools.ErrorResult(errMsg), nil
		}

		op, err := selectOperation(doc, operationName)
		if err != nil {
			tools.LogAudit(audit, toolNameGraphQLQuery, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}
		params["kind"] = string(op.Operation)
		params["fields"] = rootFields(op)

		switch op.Operation {
		case ast.Query:
		case ast.Mutation:
			resource := op.Name + ":" + digest
			if !confirm.Approved(token, toolNameGraphQLQuery, resource) {
				tools.LogAudit(audit, toolNameGraphQLQuery, params, "confirmation requested", start)
				desc := "This sends a mutation that changes data on the Jianshu server. The token is valid only for this exact document and variables."
				return tools.ConfirmPrompt(confirm, toolNameGraphQLQuery, resource, desc), nil
			}
		default:
			errMsg := fmt.Sprintf("%s operations are not supported", op.Operation)
			tools.LogAudit(audit, toolNameGraphQLQuery, params, "error: "+errMsg, start)
			return tools.ErrorResult(errMsg), nil
		}

		resp, err := client.Execute(ctx, &Request{
			OperationName: op.Name,
			Kind:          op.Operation,
			Query:         query,
			Variables:     parsedVars,
		})
		if err != nil {
			tools.LogAudit(audit, toolNameGraphQLQuery, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		var data any
		if len(resp.Data) > 0 {
			if err := json.Unmarshal(resp.Data, &data); err != nil {
				tools.LogAudit(audit, toolNameGraphQLQuery, params, "error: "+err.Error(), start)
				return tools.ErrorResult(err.Error()), nil
			}
		}

		if data == nil && len(resp.Errors) > 0 {
			tools.LogAudit(audit, toolNameGraphQLQuery, params, "error: "+resp.Errors.Error(), start)
			return tools.ErrorResult(resp.Errors.Error()), nil
		}

		out := map[string]any{"data": data}
		if len(resp.Errors) > 0 {
			out["errors"] = resp.Errors
			tools.LogAudit(audit, toolNameGraphQLQuery, params, "partial: "+resp.Errors.Error(), start)
		} else {
			tools.LogAudit(audit, toolNameGraphQLQuery, params, "ok", start)
		}
		return tools.JSONResult(out), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

// selectOperation picks the operation to run from a validated document.
func selectOperation(doc *ast.QueryDocument, name string) (*ast.OperationDefinition, error) {
	if name != "" {
		if op := doc.Operations.ForName(name); op != nil && op.Name == name {
			return op, nil
		}
		return nil, fmt.Errorf("document does not define operation %q", name)
	}
	switch len(doc.Operations) {
	case 0:
		return nil, fmt.Errorf("document defines no operation")
	case 1:
		return doc.Operations[0], nil
	default:
		return nil, fmt.Errorf("document defines %d operations: operation_name is required", len(doc.Operations))
	}
}

// documentDigest returns the hex SHA-256 of query and its raw variables.
func documentDigest(query, variables string) string {
	sum := sha256.Sum256([]byte(query + "\x00" + variables))
	return hex.EncodeToString(sum[:])
}

// variableNames returns the sorted keys of vars.
func variableNames(vars map[string]any) []string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// rootFields returns the names of the fields op selects at its root.
func rootFields(op *ast.OperationDefinition) []string {
	var fields []string
	for _, sel := range op.SelectionSet {
		if f, ok := sel.(*ast.Field); ok {
			fields = append(fields, f.Name)
		}
	}
	return fields
}
