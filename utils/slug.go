package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the name, collapses non-alphanumeric runs into a single
// hyphen and trims leading/trailing hyphens.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = nonAlnum.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// UniqueSlug returns the bare slug unless exists reports a collision, in
// which case an epoch-millisecond suffix is appended.
func UniqueSlug(name string, exists func(slug string) (bool, error)) (string, error) {
	slug := Slugify(name)
	taken, err := exists(slug)
	if err != nil {
		return "", err
	}
	if taken {
		slug = fmt.Sprintf("%s-%d", slug, time.Now().UnixMilli())
	}
	return slug, nil
}
