package utils

import (
	"bytes"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
)

// BuildCreateReportRequest reads a report out of an already parsed multipart
// form. Attachments are buffered so the form can be released before upload.
func BuildCreateReportRequest(r *http.Request) (*requests.CreateReport, error) {
	request := &requests.CreateReport{
		Patient: strings.TrimSpace(r.FormValue(constvars.FormFieldPatient)),
		Type:    strings.TrimSpace(r.FormValue(constvars.FormFieldType)),
		Entity:  strings.TrimSpace(r.FormValue(constvars.FormFieldEntity)),
		Content: strings.TrimSpace(r.FormValue(constvars.FormFieldContent)),
	}

	if r.MultipartForm == nil {
		return request, nil
	}
	for _, fileHeader := range r.MultipartForm.File[constvars.FormFieldAttachment] {
		file, err := readUploadedFile(fileHeader)
		if err != nil {
			return nil, err
		}
		request.Attachments = append(request.Attachments, file)
	}
	return request, nil
}

func BuildCreatePaymentRequest(r *http.Request) (*requests.CreatePayment, error) {
	request := &requests.CreatePayment{
		Patient: strings.TrimSpace(r.FormValue(constvars.FormFieldPatient)),
		Status:  strings.TrimSpace(r.FormValue(constvars.FormFieldStatus)),
		Method:  strings.TrimSpace(r.FormValue(constvars.FormFieldMethod)),
	}

	if amount := strings.TrimSpace(r.FormValue(constvars.FormFieldAmount)); amount != "" {
		parsed, err := strconv.ParseFloat(amount, 64)
		if err != nil {
			return nil, err
		}
		request.Amount = parsed
	}

	if r.MultipartForm == nil {
		return request, nil
	}
	if headers := r.MultipartForm.File[constvars.FormFieldReceipt]; len(headers) > 0 {
		file, err := readUploadedFile(headers[0])
		if err != nil {
			return nil, err
		}
		request.Receipt = file
	}
	return request, nil
}

func readUploadedFile(fileHeader *multipart.FileHeader) (*requests.UploadedFile, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	contentType := fileHeader.Header.Get(constvars.HeaderContentType)
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}

	return &requests.UploadedFile{
		FileName:    fileHeader.Filename,
		ContentType: contentType,
		Size:        int64(len(content)),
		Content:     bytes.NewReader(content),
	}, nil
}
