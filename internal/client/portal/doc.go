// Package portal holds the page controllers of the tribunal portal: case
// search, the forms catalog, the login form, the navigation shell and the
// static home page.
//
// Controllers own the page state and are safe for concurrent use. They do
// not render anything; the web and CLI front-ends read snapshots through
// their State methods and drive them with user actions.
//
// Case search and the forms catalog tag every request with an increasing
// sequence number. A response is applied only if no newer response has been
// applied already, so a slow reply can never overwrite a fresher one.
package portal
