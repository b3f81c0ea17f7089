package terms

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyVersion = errors.New("terms version cannot be empty")
	ErrEmptyBody    = errors.New("terms body cannot be empty")
)

// Document is a published version of the terms of service. Drafts must accept the latest one.
type Document struct {
	Version     string
	Body        string
	PublishedAt time.Time
}

func NewDocument(version, body string, now time.Time) (Document, error) {
	version = strings.TrimSpace(version)
	body = strings.TrimSpace(body)
	if version == "" {
		return Document{}, ErrEmptyVersion
	}
	if body == "" {
		return Document{}, ErrEmptyBody
	}
	return Document{Version: version, Body: body, PublishedAt: now}, nil
}
