package store

// GlobalSettings is the single-row record of library-wide settings.
type GlobalSettings struct {
	AuthSecret             string
	ReindexIntervalSeconds int
	AlbumArtPattern        string
}

// MountPoint maps a logical mount name to a filesystem location.
type MountPoint struct {
	Source string
	Name   string
}

// Credential is a plaintext name and password pair supplied by a settings
// document. It never reaches the database as-is; the issuer turns it into a
// storable User first.
type Credential struct {
	Name     string
	Password string
}

// User is a storable user record. The hash format is owned by the issuer.
type User struct {
	Name         string
	PasswordHash string
}

// DDNSSettings is the single-row dynamic DNS record consumed by the DDNS
// update client.
type DDNSSettings struct {
	Host     string
	Username string
	Password string
}

// CredentialIssuer converts plaintext credentials into storable user
// records. Hashing lives behind this interface, not in the store.
type CredentialIssuer interface {
	Issue(name, password string) (User, error)
}
