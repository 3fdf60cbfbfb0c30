package contacts

import (
	people "google.golang.org/api/people/v1"
)

// Contact is one CRM contact row as shown in the contact table.
type Contact struct {
	ResourceName string
	Name         string
	EmailAddress string
	PhoneNumber  string
	Organization string
	JobTitle     string
}

// extractContact converts a People API person into a Contact. Returns nil
// when the person carries neither a name nor an email address.
func extractContact(person *people.Person) *Contact {
	if person == nil {
		return nil
	}

	contact := &Contact{ResourceName: person.ResourceName}

	if len(person.Names) > 0 {
		contact.Name = person.Names[0].DisplayName
	}
	if len(person.EmailAddresses) > 0 {
		contact.EmailAddress = person.EmailAddresses[0].Value
	}
	if len(person.PhoneNumbers) > 0 {
		contact.PhoneNumber = person.PhoneNumbers[0].Value
	}
	if len(person.Organizations) > 0 {
		contact.Organization = person.Organizations[0].Name
		contact.JobTitle = person.Organizations[0].Title
	}

	if contact.Name == "" && contact.EmailAddress == "" {
		return nil
	}
	return contact
}
