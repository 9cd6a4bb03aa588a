package model

// UploadGrant is a short-lived authorization for a direct browser upload
// of one object. Fields must be included verbatim in the multipart POST
// to UploadURL. The grant itself reserves nothing server-side; the object
// store is the source of truth for whether it is ever exercised.
type UploadGrant struct {
	UploadURL    string            `json:"uploadUrl"`
	Fields       map[string]string `json:"fields"`
	PublicGetURL string            `json:"publicGetUrl"`
	FileKey      string            `json:"fileKey"`
}
