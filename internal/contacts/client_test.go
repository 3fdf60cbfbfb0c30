package contacts

import (
	"testing"

	people "google.golang.org/api/people/v1"
)

func TestExtractContact(t *testing.T) {
	tests := []struct {
		name     string
		person   *people.Person
		expected *Contact
	}{
		{
			name:     "nil person",
			person:   nil,
			expected: nil,
		},
		{
			name:     "empty person",
			person:   &people.Person{ResourceName: "people/1"},
			expected: nil,
		},
		{
			name: "full contact",
			person: &people.Person{
				ResourceName:   "people/2",
				Names:          []*people.Name{{DisplayName: "Amy Lee"}},
				EmailAddresses: []*people.EmailAddress{{Value: "amy@example.com"}},
				PhoneNumbers:   []*people.PhoneNumber{{Value: "+1 555 0100"}},
				Organizations:  []*people.Organization{{Name: "Acme", Title: "VP Sales"}},
			},
			expected: &Contact{
				ResourceName: "people/2",
				Name:         "Amy Lee",
				EmailAddress: "amy@example.com",
				PhoneNumber:  "+1 555 0100",
				Organization: "Acme",
				JobTitle:     "VP Sales",
			},
		},
		{
			name: "email only",
			person: &people.Person{
				ResourceName:   "people/3",
				EmailAddresses: []*people.EmailAddress{{Value: "only@example.com"}},
			},
			expected: &Contact{
				ResourceName: "people/3",
				EmailAddress: "only@example.com",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractContact(tt.person)
			if tt.expected == nil {
				if got != nil {
					t.Errorf("expected nil, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected contact, got nil")
			}
			if *got != *tt.expected {
				t.Errorf("extractContact() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestMatchesQuery(t *testing.T) {
	contact := &Contact{
		Name:         "Amy Lee",
		EmailAddress: "amy@acme.com",
		Organization: "Acme Corp",
	}

	tests := []struct {
		query    string
		expected bool
	}{
		{"", true},
		{"amy", true},
		{"acme", true},
		{"lee", true},
		{"corp", true},
		{"bob", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := matchesQuery(contact, tt.query); got != tt.expected {
				t.Errorf("matchesQuery(%q) = %v, expected %v", tt.query, got, tt.expected)
			}
		})
	}
}
