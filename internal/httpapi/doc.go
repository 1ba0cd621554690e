// Package httpapi exposes the account lifecycle service as a JSON API.
//
// The package owns everything HTTP-shaped: routing, request decoding and
// validation, the response envelope, token cookies, and the authentication
// middleware. Business rules stay in the auth package; handlers translate
// between the wire and the service and nothing more.
package httpapi
