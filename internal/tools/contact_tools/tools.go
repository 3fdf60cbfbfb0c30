package contact_tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/pepealonso95/zeromail/internal/instrumentation"
	"github.com/pepealonso95/zeromail/internal/server"
	"github.com/pepealonso95/zeromail/internal/tools/common"
)

// RegisterContactTools registers contact-related tools with the MCP server
func RegisterContactTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Search contacts tool
	searchContactsTool := mcp.NewTool("contacts_search",
		mcp.WithDescription("Search for contacts in Google Contacts"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query to find contacts (e.g., name, email, company)"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of results to return (default: 10)"),
		),
	)

	s.AddTool(searchContactsTool, common.InstrumentedToolHandlerWithService(
		"contacts_search", instrumentation.ServicePeople, "search", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSearchContacts(ctx, request, sc)
		}))

	return nil
}

func handleSearchContacts(_ context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	maxResults := 10
	if maxResultsVal, ok := args["maxResults"].(float64); ok && maxResultsVal > 0 {
		maxResults = int(maxResultsVal)
	}

	account := common.GetAccountFromArgs(args)
	client := sc.ContactsClientForAccount(account)
	if client == nil {
		return mcp.NewToolResultError(fmt.Sprintf("no Google credentials registered for account %q; start the server with an access token for this account", account)), nil
	}

	contacts, err := client.SearchContacts(query, maxResults)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to search contacts: %v", err)), nil
	}

	if len(contacts) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No contacts found for query: %s", query)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d contact(s):\n\n", len(contacts))
	for i, contact := range contacts {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, contact.Name)
		if contact.EmailAddress != "" {
			fmt.Fprintf(&sb, "   Email: %s\n", contact.EmailAddress)
		}
		if contact.PhoneNumber != "" {
			fmt.Fprintf(&sb, "   Phone: %s\n", contact.PhoneNumber)
		}
		if contact.Organization != "" {
			if contact.JobTitle != "" {
				fmt.Fprintf(&sb, "   Company: %s (%s)\n", contact.Organization, contact.JobTitle)
			} else {
				fmt.Fprintf(&sb, "   Company: %s\n", contact.Organization)
			}
		}
		sb.WriteString("\n")
	}

	return mcp.NewToolResultText(sb.String()), nil
}
