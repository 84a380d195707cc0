package utils

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMultipartRequest(t *testing.T, fields map[string]string, files map[string][]string) *http.Request {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for field, names := range files {
		for _, name := range names {
			header := make(textproto.MIMEHeader)
			header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+name+`"`)
			header.Set("Content-Type", "application/pdf")
			part, err := writer.CreatePart(header)
			require.NoError(t, err)
			_, err = part.Write([]byte("content of " + name))
			require.NoError(t, err)
		}
	}
	require.NoError(t, writer.Close())

	r := httptest.NewRequest(http.MethodPost, "/", body)
	r.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, r.ParseMultipartForm(1<<20))
	return r
}

func TestBuildCreateReportRequest(t *testing.T) {
	r := newMultipartRequest(t,
		map[string]string{"patient": " Ana ", "type": "normal", "content": "first session", "entity": ""},
		map[string][]string{"attachments": {"a.pdf", "b.pdf"}},
	)

	request, err := BuildCreateReportRequest(r)
	require.NoError(t, err)

	assert.Equal(t, "Ana", request.Patient)
	assert.Equal(t, "normal", request.Type)
	assert.Equal(t, "first session", request.Content)
	require.Len(t, request.Attachments, 2)
	assert.Equal(t, "a.pdf", request.Attachments[0].FileName)
	assert.Equal(t, "application/pdf", request.Attachments[0].ContentType)

	content, err := io.ReadAll(request.Attachments[1].Content)
	require.NoError(t, err)
	assert.Equal(t, "content of b.pdf", string(content))
	assert.Equal(t, int64(len(content)), request.Attachments[1].Size)
}

func TestBuildCreatePaymentRequest(t *testing.T) {
	r := newMultipartRequest(t,
		map[string]string{"patient": "Ana", "amount": "45.50", "status": "paid", "method": "mbway"},
		map[string][]string{"receipt": {"receipt.pdf"}},
	)

	request, err := BuildCreatePaymentRequest(r)
	require.NoError(t, err)

	assert.Equal(t, 45.5, request.Amount)
	assert.Equal(t, "paid", request.Status)
	require.NotNil(t, request.Receipt)
	assert.Equal(t, "receipt.pdf", request.Receipt.FileName)
}

func TestBuildCreatePaymentRequest_BadAmount(t *testing.T) {
	r := newMultipartRequest(t, map[string]string{"patient": "Ana", "amount": "a lot"}, nil)

	_, err := BuildCreatePaymentRequest(r)
	assert.Error(t, err)
}
