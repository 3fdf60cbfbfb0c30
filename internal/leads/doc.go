// Package leads is the typed RPC boundary to the remote lead-generation
// service. The application only issues search requests and consumes the
// returned lead records; provider integrations (Hunter, Apollo, PDL,
// LinkedIn) and result ranking live entirely behind the remote API.
package leads
