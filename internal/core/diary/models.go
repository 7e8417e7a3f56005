package diary

// FileUpload carries one uploaded file through the assembler.
type FileUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CreateEntryRequest represents a request to create a diary entry. All three
// inputs are optional, but at least one must be present.
type CreateEntryRequest struct {
	Text  string
	Image *FileUpload
	Audio *FileUpload
}

func (r CreateEntryRequest) empty() bool {
	return r.Text == "" && r.Image == nil && r.Audio == nil
}
