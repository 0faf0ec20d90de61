package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/coerce/pkg/sanitizer"
)

// DefaultMaxBodySize is the default maximum size for request bodies (1MB).
const DefaultMaxBodySize int64 = 1 << 20

// DefaultMaxMemory is the memory budget for parsing multipart forms (10MB).
const DefaultMaxMemory int64 = 10 << 20

type options struct {
	maxBodySize int64
}

// Option configures decoding.
type Option func(*options)

// WithMaxBodySize limits the number of body bytes read. Non-positive values are ignored.
func WithMaxBodySize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBodySize = n
		}
	}
}

// Bind decodes the request body and returns the result of v applied to it.
func Bind[T any](r *http.Request, v func(any) (T, error), opts ...Option) (T, error) {
	data, err := Decode(r, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return v(data)
}

// Decode reads the request body into a value built from maps, slices and
// scalars, choosing the format from the Content-Type header.
func Decode(r *http.Request, opts ...Option) (any, error) {
	o := options{maxBodySize: DefaultMaxBodySize}
	for _, opt := range opts {
		opt(&o)
	}

	if err := r.Context().Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseBody, err)
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, ErrMissingContentType
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}

	var data any
	switch mediaType {
	case "application/json":
		data, err = decodeJSON(r.Body, o.maxBodySize)
	case "application/yaml", "application/x-yaml", "text/yaml":
		data, err = decodeYAML(r.Body, o.maxBodySize)
	case "application/x-www-form-urlencoded", "multipart/form-data":
		data, err = decodeForm(r, mediaType, o.maxBodySize)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}
	if err != nil {
		return nil, err
	}

	return sanitizeValue(data), nil
}

func readBody(body io.Reader, limit int64) ([]byte, error) {
	if body == nil {
		return nil, fmt.Errorf("%w: empty body", ErrFailedToParseBody)
	}
	raw, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseBody, err)
	}
	if int64(len(raw)) > limit {
		return nil, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, limit)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrFailedToParseBody)
	}
	return raw, nil
}

func decodeJSON(body io.Reader, limit int64) (any, error) {
	raw, err := readBody(body, limit)
	if err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	var data any
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseBody, err)
	}

	// Ensure entire body was consumed
	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseBody)
	}

	return data, nil
}

func decodeYAML(body io.Reader, limit int64) (any, error) {
	raw, err := readBody(body, limit)
	if err != nil {
		return nil, err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	var data any
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseBody, err)
	}

	var extra any
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: multiple YAML documents", ErrFailedToParseBody)
	}

	return data, nil
}

func decodeForm(r *http.Request, mediaType string, limit int64) (any, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, limit)

	var err error
	if mediaType == "multipart/form-data" {
		err = r.ParseMultipartForm(DefaultMaxMemory)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, limit)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseBody, err)
	}

	return valuesToObject(r.PostForm), nil
}

func valuesToObject(values url.Values) map[string]any {
	out := make(map[string]any, len(values))
	for key, vals := range values {
		switch len(vals) {
		case 0:
			continue
		case 1:
			out[key] = vals[0]
		default:
			list := make([]any, len(vals))
			for i, v := range vals {
				list[i] = v
			}
			out[key] = list
		}
	}
	return out
}

// sanitizeValue strips control characters from every string in a decoded value.
func sanitizeValue(v any) any {
	switch val := v.(type) {
	case string:
		return sanitizer.RemoveControlChars(val)
	case map[string]any:
		for k, item := range val {
			val[k] = sanitizeValue(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = sanitizeValue(item)
		}
		return val
	default:
		return v
	}
}
