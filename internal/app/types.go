package app

import (
	"encoding/base64"
	"strconv"
	"strings"
)

// ID is a contributor identifier. Datasets store it either as a json string or a number.
type ID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*id = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		v, err := strconv.Unquote(s)
		if err != nil {
			return DatasetError("invalid id: " + s)
		}
		*id = ID(v)
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return DatasetError("invalid id: " + s)
	}
	*id = ID(s)

	return nil
}

// Contributor entity
type Contributor struct {
	ID           ID     `json:"id"`
	Login        string `json:"login"`
	Username     string `json:"username"`
	AvatarURL    string `json:"avatarUrl"`
	CommitsCount int    `json:"commitsCount"`
}

// DisplayName returns username, or login when username is empty.
func (c Contributor) DisplayName() string {
	if c.Username != "" {
		return c.Username
	}
	return c.Login
}

// Image is a fetched avatar.
type Image struct {
	ContentType string
	Data        []byte
}

// DataURI encodes image as base64 data uri.
func (i Image) DataURI() string {
	contentType := i.ContentType
	if contentType == "" {
		contentType = "image/png"
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

// Avatar is the image reference rendered for a single contributor.
// Ref is a data uri when the image was inlined, or the placeholder reference otherwise.
type Avatar struct {
	Ref      string
	Fallback bool
}

// InlinedAvatar creates Avatar for successfully fetched image.
func InlinedAvatar(img Image) Avatar {
	return Avatar{Ref: img.DataURI()}
}

// FallbackAvatar creates Avatar pointing to placeholder.
func FallbackAvatar(placeholder string) Avatar {
	return Avatar{Ref: placeholder, Fallback: true}
}
