package controllers

import (
	"TnenntAdmin/services"
	"TnenntAdmin/utils"
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// readUpload buffers an uploaded file so the multipart handle can be closed
// straight away.
func readUpload(fh *multipart.FileHeader) (*services.FileUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &services.FileUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Body:        bytes.NewReader(data),
	}, nil
}

// formFile returns the named upload, or nil when the field is absent.
func formFile(c *gin.Context, field string) (*services.FileUpload, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, utils.BadRequest(fmt.Sprintf("Invalid %s upload", field))
	}
	upload, err := readUpload(fh)
	if err != nil {
		return nil, utils.BadRequest(fmt.Sprintf("Invalid %s upload", field))
	}
	return upload, nil
}

func formFiles(c *gin.Context, field string) ([]services.FileUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, utils.BadRequest("Expected a multipart form")
	}
	uploads := make([]services.FileUpload, 0, len(form.File[field]))
	for _, fh := range form.File[field] {
		upload, err := readUpload(fh)
		if err != nil {
			return nil, utils.BadRequest(fmt.Sprintf("Invalid %s upload", field))
		}
		uploads = append(uploads, *upload)
	}
	return uploads, nil
}

// dateRange reads ?from=&to= (YYYY-MM-DD), falling back to def.
func dateRange(c *gin.Context, def utils.DateRange) (utils.DateRange, error) {
	r, err := utils.ParseDateRange(c.Query("from"), c.Query("to"), def)
	if err != nil {
		return r, utils.BadRequest(err.Error())
	}
	return r, nil
}

func queryFloat(c *gin.Context, key string) (float64, error) {
	v, err := strconv.ParseFloat(c.Query(key), 64)
	if err != nil {
		return 0, utils.BadRequest("Invalid " + key)
	}
	return v, nil
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, utils.BadRequest("Invalid " + key)
	}
	return v, nil
}

// optionalForm returns a pointer to the form value, nil when not sent.
func optionalForm(c *gin.Context, key string) *string {
	v, ok := c.GetPostForm(key)
	if !ok {
		return nil
	}
	return &v
}
