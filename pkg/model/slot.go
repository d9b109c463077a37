package model

import "islatours/pkg/media"

// FileSlot binds a storage column name to the record field holding its public
// URL. Kind is the only media kind the column accepts.
type FileSlot struct {
	Field string
	URL   **string
	Kind  media.Kind
}

func ImageSlot(field string, url **string) FileSlot {
	return FileSlot{Field: field, URL: url, Kind: media.KindImage}
}

func VideoSlot(field string, url **string) FileSlot {
	return FileSlot{Field: field, URL: url, Kind: media.KindVideo}
}

func (s FileSlot) Value() string {
	if s.URL == nil || *s.URL == nil {
		return ""
	}
	return **s.URL
}

func (s FileSlot) Set(url string) {
	if url == "" {
		*s.URL = nil
		return
	}
	*s.URL = &url
}

// SlotValues returns the raw slot values in column order, empty ones included.
func SlotValues(slots []FileSlot) []*string {
	values := make([]*string, len(slots))
	for i, s := range slots {
		values[i] = *s.URL
	}
	return values
}

func FindSlot(slots []FileSlot, field string) (FileSlot, bool) {
	for _, s := range slots {
		if s.Field == field {
			return s, true
		}
	}
	return FileSlot{}, false
}

// FileBacked is implemented by every record with upload-backed columns.
type FileBacked interface {
	FileSlots() []FileSlot
}
