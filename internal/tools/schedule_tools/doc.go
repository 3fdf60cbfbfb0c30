// Package schedule_tools provides MCP tools for the interactive scheduling
// surface: rendering the week grid, resolving slot-click and drag gestures
// into calendar events, and the supporting calendar operations (event
// listing, creation, deletion, free/busy lookups, and availability search).
//
// Gesture tools resolve spans with the same pixel-to-time rules the grid
// itself uses, so an event created through a tool lands exactly where the
// equivalent pointer gesture would have placed it.
package schedule_tools
