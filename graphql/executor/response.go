/**
 * Copyright (c) 2026, The graphql-js Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package executor

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

// Response is the result of executing an operation.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Response-Format
type Response struct {
	Data   map[string]interface{}
	Errors []error
}

// MarshalJSON serializes the response into the standard GraphQL response format. The errors
// entry, when present, holds objects with a message field.
func (r *Response) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, 2)
	if len(r.Errors) > 0 {
		errors := make([]map[string]interface{}, len(r.Errors))
		for i, err := range r.Errors {
			errors[i] = map[string]interface{}{"message": err.Error()}
		}
		out["errors"] = errors
	}
	if r.Data != nil {
		out["data"] = r.Data
	}
	return jsoniter.Marshal(out)
}

// WriteTo writes the JSON serialization of the response to w.
func (r *Response) WriteTo(w io.Writer) (int64, error) {
	data, err := r.MarshalJSON()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}
