package config

// ServiceAccount holds the fields of the Firebase service account key
// needed for signing storage download URLs.
type ServiceAccount struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}
