package contacts

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	people "google.golang.org/api/people/v1"
	"google.golang.org/api/option"
)

const contactReadMask = "names,emailAddresses,phoneNumbers,organizations"

// Client wraps the Google People service
type Client struct {
	svc     *people.Service
	account string
}

// NewClient creates a new Contacts client using the provided token source.
func NewClient(ctx context.Context, tokenSource oauth2.TokenSource) (*Client, error) {
	return NewClientForAccount(ctx, "default", tokenSource)
}

// NewClientForAccount creates a new Contacts client for a specific account
// using the provided token source.
func NewClientForAccount(ctx context.Context, account string, tokenSource oauth2.TokenSource) (*Client, error) {
	if tokenSource == nil {
		return nil, fmt.Errorf("token source cannot be nil")
	}

	httpClient := oauth2.NewClient(ctx, tokenSource)
	svc, err := people.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create People service: %w", err)
	}

	return &Client{
		svc:     svc,
		account: account,
	}, nil
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// SearchContacts searches personal and "other" contacts (people the user has
// interacted with) for the query, deduplicated by email address.
func (c *Client) SearchContacts(query string, pageSize int) ([]*Contact, error) {
	if pageSize <= 0 {
		pageSize = 10
	}

	var results []*Contact
	seenEmails := make(map[string]bool)
	queryLower := strings.ToLower(query)

	// Personal contacts support server-side search
	req := c.svc.People.SearchContacts().
		Query(query).
		ReadMask(contactReadMask).
		PageSize(int64(pageSize * 2))

	resp, err := req.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search contacts: %w", err)
	}
	for _, result := range resp.Results {
		if contact := extractContact(result.Person); contact != nil {
			if contact.EmailAddress != "" && !seenEmails[contact.EmailAddress] {
				seenEmails[contact.EmailAddress] = true
				results = append(results, contact)
			}
		}
	}

	// "Other" contacts only support listing, so filter client-side. Failures
	// here don't fail the whole search; personal results are still useful.
	pageToken := ""
	for page := 0; page < 10 && len(results) < pageSize; page++ {
		otherReq := c.svc.OtherContacts.List().
			ReadMask("names,emailAddresses,phoneNumbers").
			PageSize(100)
		if pageToken != "" {
			otherReq = otherReq.PageToken(pageToken)
		}

		otherResp, err := otherReq.Do()
		if err != nil {
			break
		}

		for _, person := range otherResp.OtherContacts {
			contact := extractContact(person)
			if contact == nil || !matchesQuery(contact, queryLower) {
				continue
			}
			if contact.EmailAddress != "" && !seenEmails[contact.EmailAddress] {
				seenEmails[contact.EmailAddress] = true
				results = append(results, contact)
			}
		}

		pageToken = otherResp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	if len(results) > pageSize {
		results = results[:pageSize]
	}
	return results, nil
}

// ListContacts lists the user's personal contacts ordered by display name.
func (c *Client) ListContacts(pageSize int) ([]*Contact, error) {
	if pageSize <= 0 {
		pageSize = 50
	}

	resp, err := c.svc.People.Connections.List("people/me").
		PersonFields(contactReadMask).
		SortOrder("FIRST_NAME_ASCENDING").
		PageSize(int64(pageSize)).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	var contacts []*Contact
	for _, person := range resp.Connections {
		if contact := extractContact(person); contact != nil {
			contacts = append(contacts, contact)
		}
	}
	return contacts, nil
}

// matchesQuery reports whether a contact matches a lowercased query string.
func matchesQuery(contact *Contact, queryLower string) bool {
	if queryLower == "" {
		return true
	}
	return strings.Contains(strings.ToLower(contact.Name), queryLower) ||
		strings.Contains(strings.ToLower(contact.EmailAddress), queryLower) ||
		strings.Contains(strings.ToLower(contact.Organization), queryLower)
}
