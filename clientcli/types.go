package clientcli

// AppendResult represents the result of appending a line on the server.
type AppendResult struct {
	Text    string `json:"text"`
	Message string `json:"message"`
}

// ReadOptions configures a read operation.
type ReadOptions struct {
	Filename  string
	LocalPath string // empty = derive from filename, "-" = stream to caller
}

// ReadResult represents the result of reading a remote file.
type ReadResult struct {
	Filename    string `json:"filename"`
	LocalPath   string `json:"local_path,omitempty"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size_bytes"`
}
