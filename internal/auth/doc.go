// Package auth issues storable user records from plaintext credentials.
//
// It is the credential collaborator the store invokes when replacing the
// user table; the store itself never hashes. Hashes use bcrypt, so the salt
// travels inside the stored value.
package auth
