package leads

import "fmt"

// LeadQuery is the search form submitted by the lead-generation page.
type LeadQuery struct {
	Role     string `json:"role,omitempty"`
	Industry string `json:"industry,omitempty"`
	Location string `json:"location,omitempty"`
	Company  string `json:"company,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}

// Lead is one search result row.
type Lead struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Email       string `json:"email"`
	LinkedInURL string `json:"linkedinUrl"`
	Location    string `json:"location"`
	Source      string `json:"source"`
}

// searchResponse is the wire shape of a search reply.
type searchResponse struct {
	Leads []Lead `json:"leads"`
}

// LeadError wraps a lead-service failure with the operation that produced it.
type LeadError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *LeadError) Error() string {
	return fmt.Sprintf("leads %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *LeadError) Unwrap() error {
	return e.Err
}
