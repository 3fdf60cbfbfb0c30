package lead_tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/pepealonso95/zeromail/internal/instrumentation"
	"github.com/pepealonso95/zeromail/internal/leads"
	"github.com/pepealonso95/zeromail/internal/server"
	"github.com/pepealonso95/zeromail/internal/tools/common"
)

// RegisterLeadTools registers lead-provider tools with the MCP server
func RegisterLeadTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	searchLeadsTool := mcp.NewTool("leads_search",
		mcp.WithDescription("Search the configured lead provider for prospects matching role, industry, location, or company"),
		mcp.WithString("role",
			mcp.Description("Role or job title to search for (e.g., 'CTO', 'Head of Sales')"),
		),
		mcp.WithString("industry",
			mcp.Description("Industry to filter by (e.g., 'fintech')"),
		),
		mcp.WithString("location",
			mcp.Description("Location to filter by (e.g., 'Berlin')"),
		),
		mcp.WithString("company",
			mcp.Description("Company name to filter by"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of leads to return (default: 10)"),
		),
	)

	s.AddTool(searchLeadsTool, common.InstrumentedToolHandler(
		"leads_search", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSearchLeads(ctx, request, sc)
		}))

	return nil
}

func handleSearchLeads(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	query := leads.LeadQuery{}
	if roleVal, ok := args["role"].(string); ok {
		query.Role = roleVal
	}
	if industryVal, ok := args["industry"].(string); ok {
		query.Industry = industryVal
	}
	if locationVal, ok := args["location"].(string); ok {
		query.Location = locationVal
	}
	if companyVal, ok := args["company"].(string); ok {
		query.Company = companyVal
	}
	if limitVal, ok := args["limit"].(float64); ok && limitVal > 0 {
		query.Limit = int(limitVal)
	}

	if query.Role == "" && query.Industry == "" && query.Location == "" && query.Company == "" {
		return mcp.NewToolResultError("at least one of role, industry, location, or company is required"), nil
	}

	client := sc.LeadsClient()
	if client == nil {
		return mcp.NewToolResultError("lead provider is not configured; set leads.base_url in the configuration file"), nil
	}

	results, err := client.Search(ctx, query)
	if err != nil {
		sc.Metrics().RecordLeadSearch(ctx, instrumentation.StatusError)
		return mcp.NewToolResultError(fmt.Sprintf("Failed to search leads: %v", err)), nil
	}
	sc.Metrics().RecordLeadSearch(ctx, instrumentation.StatusSuccess)

	if len(results) == 0 {
		return mcp.NewToolResultText("No leads found for the given criteria"), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d lead(s):\n\n", len(results))
	for i, lead := range results {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, lead.Name)
		if lead.Title != "" || lead.Company != "" {
			fmt.Fprintf(&sb, "   %s at %s\n", lead.Title, lead.Company)
		}
		if lead.Email != "" {
			fmt.Fprintf(&sb, "   Email: %s\n", lead.Email)
		}
		if lead.LinkedInURL != "" {
			fmt.Fprintf(&sb, "   LinkedIn: %s\n", lead.LinkedInURL)
		}
		if lead.Location != "" {
			fmt.Fprintf(&sb, "   Location: %s\n", lead.Location)
		}
		sb.WriteString("\n")
	}

	return mcp.NewToolResultText(sb.String()), nil
}
