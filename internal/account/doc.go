// Package account defines the identity record and its MongoDB repository.
package account
