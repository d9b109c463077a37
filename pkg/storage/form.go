package storage

import (
	"net/http"
	"strings"

	httputil "islatours/pkg/http"
	"islatours/pkg/model"
)

// RemoveParam lets JSON clients clear file columns: ?remove=imagen2,imagen3.
const RemoveParam = "remove"

// SaveRequest is a decoded admin save: the record plus its file changes.
type SaveRequest struct {
	Uploads []Upload
	Clear   []string
	close   func()
}

// Close releases the multipart file parts.
func (s *SaveRequest) Close() {
	if s.close != nil {
		s.close()
	}
}

// DecodeRecord reads rec from a JSON body or a multipart form and collects
// the file parts and clear flags for rec's slots.
func DecodeRecord(r *http.Request, rec model.FileBacked, maxMemory int64) (*SaveRequest, error) {
	form, err := httputil.DecodeForm(r, rec, maxMemory)
	if err != nil {
		return nil, err
	}

	uploads, clear, closeFn, err := UploadsFromForm(form, rec.FileSlots())
	if err != nil {
		return nil, err
	}
	for _, field := range strings.Split(r.URL.Query().Get(RemoveParam), ",") {
		if field = strings.TrimSpace(field); field == "" {
			continue
		}
		if _, ok := model.FindSlot(rec.FileSlots(), field); ok {
			clear = append(clear, field)
		}
	}
	return &SaveRequest{Uploads: uploads, Clear: clear, close: closeFn}, nil
}
