// Package sec provides authentication primitives for the HTTP API.
//
// # Authentication
//
// Every request is authenticated independently with HTTP Basic Auth; no
// session state is created or consulted. Credentials are validated against
// bcrypt password hashes held by an immutable in-memory [CredentialStore]
// built from configuration at startup.
//
// IMPORTANT: Basic Auth transmits credentials in base64 encoding (not
// encrypted). TLS must be used in production to protect credentials in
// transit.
//
// # Components
//
//   - [CredentialStore]: validates username/password pairs and resolves roles
//   - [PolicyList], [Gate]: ordered route rules and the echo middleware
//     enforcing them
//   - [GetPrincipal], [WithPrincipal]: context accessors for the
//     authenticated principal
//   - [HashPassword], [ComparePassword]: bcrypt password hashing utilities
package sec
