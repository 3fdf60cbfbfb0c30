// Package lead_tools provides MCP tools for querying the configured lead
// provider, backing the lead-generation search page.
package lead_tools
