package httpdto

type PresignRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	Kind        string `json:"kind"`
}

type PresignResponse struct {
	Success   bool              `json:"success"`
	UploadURL string            `json:"upload_url"`
	FileURL   string            `json:"file_url"`
	Headers   map[string]string `json:"headers,omitempty"`
}
