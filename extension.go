package tristate

import (
	"reflect"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
)

// Extension routes every Value field, map element, and top-level Value
// through the codec registry when registered on a jsoniter API. For struct
// fields it additionally installs the omission predicate, so Undefined
// fields drop out of the output entirely without any per-field tagging or
// boilerplate.
type Extension struct {
	jsoniter.DummyExtension
	strict bool
}

// Option configures an Extension.
type Option func(*Extension)

// WithStrictCoercion makes a token that cannot be coerced into the element
// type fail the whole decode instead of silently becoming Undefined.
//
// The lenient default conflates malformed input with an absent key; strict
// mode is the explicit opt-out of that policy.
func WithStrictCoercion() Option {
	return func(e *Extension) {
		e.strict = true
	}
}

// NewExtension creates an Extension. Register it on a jsoniter API, or use
// NewAPI which does so already.
func NewExtension(opts ...Option) *Extension {
	e := &Extension{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// UpdateStructDescriptor rebinds every tri-state field of the described
// struct. The engine builds and caches one descriptor per struct type, so
// the codec lookup and the omission predicate are resolved once per field,
// not per serialization.
func (e *Extension) UpdateStructDescriptor(desc *jsoniter.StructDescriptor) {
	for _, binding := range desc.Fields {
		c := lookupCodec(binding.Field.Type(), e.strict)
		if c == nil {
			continue
		}
		binding.Encoder = c
		binding.Decoder = c
		// The engine honors an encoder's IsEmpty only for fields whose tag
		// carries omitempty. Wrapping the field metadata injects the option
		// without requiring it in user code.
		binding.Field = &omitEmptyField{binding.Field}
	}
}

// CreateEncoder returns the codec for tri-state types encountered outside
// struct fields (top-level values, map and slice elements).
func (e *Extension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	if c := lookupCodec(typ, e.strict); c != nil {
		return c
	}
	return nil
}

// CreateDecoder mirrors CreateEncoder for the read path.
func (e *Extension) CreateDecoder(typ reflect2.Type) jsoniter.ValDecoder {
	if c := lookupCodec(typ, e.strict); c != nil {
		return c
	}
	return nil
}

// omitEmptyField wraps a field's metadata so its json tag carries the
// omitempty option, which makes the engine consult the bound codec's
// IsEmpty before emitting the field.
type omitEmptyField struct {
	reflect2.StructField
}

func (f *omitEmptyField) Tag() reflect.StructTag {
	return tagWithOmitEmpty(f.StructField.Tag())
}

// tagWithOmitEmpty returns tag with ",omitempty" appended to its json key,
// preserving every other key. The json key is added when absent.
func tagWithOmitEmpty(tag reflect.StructTag) reflect.StructTag {
	for _, opt := range strings.Split(tag.Get("json"), ",")[1:] {
		if opt == "omitempty" {
			return tag
		}
	}

	pairs := splitTagPairs(string(tag))
	parts := make([]string, 0, len(pairs)+1)
	found := false
	for _, kv := range pairs {
		if kv[0] == "json" {
			kv[1] += ",omitempty"
			found = true
		}
		parts = append(parts, kv[0]+":"+strconv.Quote(kv[1]))
	}
	if !found {
		parts = append(parts, `json:",omitempty"`)
	}
	return reflect.StructTag(strings.Join(parts, " "))
}

// splitTagPairs splits a struct tag into key/value pairs, following the
// grammar reflect.StructTag.Lookup implements. Malformed trailing content
// is dropped, which matches how the standard library ignores it.
func splitTagPairs(tag string) [][2]string {
	var pairs [][2]string
	for tag != "" {
		i := 0
		for i < len(tag) && tag[i] == ' ' {
			i++
		}
		tag = tag[i:]
		if tag == "" {
			break
		}

		i = 0
		for i < len(tag) && tag[i] > ' ' && tag[i] != ':' && tag[i] != '"' && tag[i] != 0x7f {
			i++
		}
		if i == 0 || i+1 >= len(tag) || tag[i] != ':' || tag[i+1] != '"' {
			break
		}
		name := tag[:i]
		tag = tag[i+1:]

		i = 1
		for i < len(tag) && tag[i] != '"' {
			if tag[i] == '\\' {
				i++
			}
			i++
		}
		if i >= len(tag) {
			break
		}
		value, err := strconv.Unquote(tag[:i+1])
		tag = tag[i+1:]
		if err != nil {
			break
		}
		pairs = append(pairs, [2]string{name, value})
	}
	return pairs
}
