package textstore

// DefaultWriteFile is the file that appends go to unless configured otherwise.
const DefaultWriteFile = "file.txt"

// AppendResult describes a successful append.
type AppendResult struct {
	Filename     string `json:"filename"`
	Text         string `json:"text"`
	BytesWritten int64  `json:"bytes_written"`
}

// ReadResult is the outcome of a read. A missing file is reported with
// Found set to false rather than as an error.
type ReadResult struct {
	Filename string
	Found    bool
	Content  []byte
}
