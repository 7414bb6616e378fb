package dto

// VideoInfoResponse is the response body for a metadata probe.
type VideoInfoResponse struct {
	Title       string `json:"title"`
	Duration    int64  `json:"duration"`
	Uploader    string `json:"uploader"`
	ViewCount   int64  `json:"view_count"`
	UploadDate  string `json:"upload_date"`
	Description string `json:"description"`
}

// DownloadResponse is the response body for a completed download.
type DownloadResponse struct {
	Success  bool   `json:"success"`
	Title    string `json:"title"`
	Duration int64  `json:"duration"`
	Uploader string `json:"uploader"`
	Filename string `json:"filename"`
	Message  string `json:"message"`
}
