package files

type DeleteFileRequest struct {
	FileName string `json:"fileName" binding:"required"`
}

type GetFilesResponse struct {
	FileGroups []FileGroup `json:"fileGroups"`
}
