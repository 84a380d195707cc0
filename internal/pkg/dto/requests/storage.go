package requests

import "io"

type UploadedFile struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}
