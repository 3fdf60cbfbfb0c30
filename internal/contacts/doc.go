// Package contacts provides the CRM boundary of the application: a client
// for searching and listing the user's contacts via the Google People API.
//
// Like the calendar client, it takes an injected token source; credential
// acquisition is out of scope.
package contacts
