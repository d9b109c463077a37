package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	apperrors "islatours/pkg/errors"
)

// DecodeJSON decodes the request body into v, rejecting unknown fields.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperrors.InvalidInput("Request body is empty")
		}
		return apperrors.InvalidInput("Invalid request body: " + err.Error())
	}
	return nil
}

// FormDataField is the multipart field carrying the JSON record next to file parts.
const FormDataField = "data"

// DecodeForm accepts either a JSON body or a multipart form whose "data" part
// holds the JSON record. The multipart form is returned so file parts can be read;
// it is nil for JSON requests.
func DecodeForm(r *http.Request, v any, maxMemory int64) (*multipart.Form, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return nil, DecodeJSON(r, v)
	}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return nil, apperrors.InvalidInput("Invalid multipart form: " + err.Error())
	}
	data := r.MultipartForm.Value[FormDataField]
	if len(data) == 0 || strings.TrimSpace(data[0]) == "" {
		return nil, apperrors.InvalidInput("Missing form field: " + FormDataField)
	}
	dec := json.NewDecoder(strings.NewReader(data[0]))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return nil, apperrors.InvalidInput("Invalid form data: " + err.Error())
	}
	return r.MultipartForm, nil
}

func QueryInt(r *http.Request, key string, fallback int) (int, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperrors.InvalidInput("invalid " + key + " parameter: " + s)
	}
	return v, nil
}

// ClientIP returns the address set by WithClientIP, or the socket peer.
// Forwarding headers are never read here; see TrustedProxies.
func ClientIP(r *http.Request) string {
	if ip, ok := r.Context().Value(clientIPKey{}).(string); ok && ip != "" {
		return ip
	}
	return peerIP(r)
}
