package entity

// UploadAuthorization is a signed capability allowing a client to POST one
// object directly to storage. It is constructed per request and never
// persisted; expiry lives inside the signed policy document.
type UploadAuthorization struct {
	URL    string            `json:"url"`
	Fields map[string]string `json:"fields"`
}
