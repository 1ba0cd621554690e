// Package email provides transactional email delivery behind a small
// EmailSender interface.
//
// Two implementations are included: a Postmark client for production and a
// filesystem DevSender for local development, which writes each message as an
// HTML file plus JSON metadata instead of delivering it. Both validate
// parameters before sending, so a malformed recipient fails the same way in
// every environment.
package email
