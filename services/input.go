package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Input is an arbitrary incoming field set. Values arriving through multipart
// forms are strings; values arriving through JSON bodies keep their decoded
// types. Builders only emit update keys for fields present here, so omitted
// fields never clobber stored values.
type Input map[string]interface{}

// InputFromRequest reads a JSON body or flattens multipart/urlencoded form
// fields into an Input.
func InputFromRequest(c *gin.Context) (Input, error) {
	contentType := c.ContentType()
	if strings.HasPrefix(contentType, "application/json") {
		in := Input{}
		if err := c.ShouldBindJSON(&in); err != nil {
			return nil, err
		}
		return in, nil
	}

	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		if err := c.Request.ParseForm(); err != nil {
			return nil, err
		}
	}

	in := Input{}
	for key, values := range c.Request.PostForm {
		if len(values) == 1 {
			in[key] = values[0]
		} else {
			list := make([]interface{}, len(values))
			for i, v := range values {
				list[i] = v
			}
			in[key] = list
		}
	}
	return in, nil
}

func (in Input) Has(key string) bool {
	_, ok := in[key]
	return ok
}

func (in Input) String(key string) string {
	switch v := in[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

func (in Input) Float(key string) (float64, error) {
	switch v := in[key].(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, nil
		}
		return strconv.ParseFloat(s, 64)
	default:
		return 0, fmt.Errorf("value for %q is not numeric", key)
	}
}

func (in Input) Int(key string) (int, error) {
	f, err := in.Float(key)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// Bool is the strict coercion: booleans pass through, strings go through
// strconv so "false" means false.
func (in Input) Bool(key string) bool {
	switch v := in[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(v))
		return b
	default:
		return false
	}
}

// Truthy is the lenient coercion some routes use: any non-empty string
// counts as true, including the string "false". Kept as-is; tests pin it.
func (in Input) Truthy(key string) bool {
	switch v := in[key].(type) {
	case bool:
		return v
	case string:
		return strings.TrimSpace(v) != ""
	case nil:
		return false
	default:
		return true
	}
}

// StringList accepts a pre-built array or a comma-joined string, splitting
// and trimming the string form.
func (in Input) StringList(key string) []string {
	switch v := in[key].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := strings.TrimSpace(fmt.Sprintf("%v", item)); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	default:
		return nil
	}
}
