// Package contact_tools provides MCP tools for searching the user's Google
// Contacts, backing the attendee picker and the CRM contact table.
package contact_tools
