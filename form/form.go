/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package form decodes URL-encoded submission bodies into ordered field lists.
package form

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrMalformedPair is returned for a body item that has no '=' separator.
var ErrMalformedPair = errors.New("form item has no '=' separator")

// Field is a single percent-decoded name/value pair.
type Field struct {
	Name  string
	Value string
}

// Fields is an ordered list of submitted fields.
type Fields []Field

// ParseURLEncoded decodes an application/x-www-form-urlencoded body, keeping
// fields in submission order. Empty items (as in "a=1&&b=2") are skipped.
func ParseURLEncoded(body string) (Fields, error) {
	var fields Fields
	for _, item := range strings.Split(body, "&") {
		if item == "" {
			continue
		}
		rawName, rawValue, ok := strings.Cut(item, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedPair, item)
		}
		name, err := url.QueryUnescape(rawName)
		if err != nil {
			return nil, fmt.Errorf("decode name %q: %w", rawName, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("decode value of %q: %w", name, err)
		}
		fields = append(fields, Field{Name: name, Value: value})
	}
	return fields, nil
}

// Encode returns the URL-encoded form of the fields in order.
func (fs Fields) Encode() string {
	var b strings.Builder
	for i, f := range fs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(f.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(f.Value))
	}
	return b.String()
}
