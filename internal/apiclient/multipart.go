package apiclient

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"

	"backoffice/internal/models"
)

// Form collects the parts of a multipart request in insertion order.
type Form struct {
	fields []formField
	files  []formFile
}

type formField struct {
	name  string
	value string
}

type formFile struct {
	name   string
	upload *models.Upload
}

func NewForm() *Form {
	return &Form{}
}

func (f *Form) Field(name, value string) *Form {
	f.fields = append(f.fields, formField{name: name, value: value})
	return f
}

// File adds a file part. A nil upload is skipped, which is how optional files
// are left out of update requests.
func (f *Form) File(name string, upload *models.Upload) *Form {
	if upload == nil || upload.Content == nil {
		return f
	}
	f.files = append(f.files, formFile{name: name, upload: upload})
	return f
}

func (f *Form) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := writer.WriteField(field.name, field.value); err != nil {
			return nil, "", err
		}
	}
	for _, file := range f.files {
		name := file.upload.FileName
		if name == "" {
			name = file.name
		}
		part, err := writer.CreateFormFile(file.name, name)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, file.upload.Content); err != nil {
			return nil, "", fmt.Errorf("copy %s: %w", file.name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return &buf, writer.FormDataContentType(), nil
}
