package json

import "strconv"

// Parse parses an arbitrary top-level JSON document (object or array).
// An optional Limits overrides DefaultLimits(). The first non-whitespace
// byte must be '{' or '[', and no non-whitespace bytes may follow the
// top-level value.
func Parse(text string, limitsOpt ...Limits) (Value, error) {
	lim := resolveLimits(limitsOpt)
	if len(text) > lim.JSONStringSize {
		return Value{}, errLimit("source length %d exceeds json_string_size limit %d", len(text), lim.JSONStringSize)
	}

	p := &parser{src: []byte(text), limits: lim}
	p.skipWhitespace()
	if p.pos >= len(p.src) {
		return Value{}, errMalformed("empty JSON document")
	}
	if c := p.src[p.pos]; c != '{' && c != '[' {
		return Value{}, errMalformed("expected '{' or '[' at top level, got %q", c)
	}

	v, err := p.parseValue()
	if err != nil {
		return Value{}, err
	}

	p.skipWhitespace()
	if p.pos != len(p.src) {
		return Value{}, errMalformed("trailing data after JSON document at offset %d", p.pos)
	}

	return v, nil
}

// ParseObject parses a top-level JSON document that must be an object.
// An optional Limits overrides DefaultLimits().
func ParseObject(text string, limitsOpt ...Limits) (*Object, error) {
	lim := resolveLimits(limitsOpt)
	if len(text) > lim.JSONStringSize {
		return nil, errLimit("source length %d exceeds json_string_size limit %d", len(text), lim.JSONStringSize)
	}

	p := &parser{src: []byte(text), limits: lim}
	p.skipWhitespace()
	if p.pos >= len(p.src) || p.src[p.pos] != '{' {
		return nil, errMalformed("expected '{' for object document")
	}

	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	p.skipWhitespace()
	if p.pos != len(p.src) {
		return nil, errMalformed("trailing data after JSON document at offset %d", p.pos)
	}

	return v.obj, nil
}

func resolveLimits(opts []Limits) Limits {
	if len(opts) > 0 {
		return opts[0]
	}
	return DefaultLimits()
}

type parser struct {
	src    []byte
	pos    int
	limits Limits
	depth  int
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) parseValue() (Value, error) {
	p.skipWhitespace()
	if p.pos >= len(p.src) {
		return Value{}, errMalformed("unexpected end of input")
	}

	switch c := p.src[p.pos]; {
	case c == '{':
		return p.parseObjectBody()
	case c == '[':
		return p.parseArrayBody()
	case c == '"':
		s, err := p.parseStringLiteral()
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindString, data: s}, nil
	case c == 't' || c == 'f':
		return p.parseBoolLiteral()
	case c == 'n':
		return p.parseNullLiteral()
	case c == '-' || isDigit(c):
		return p.parseNumberLiteral()
	default:
		return Value{}, errMalformed("unexpected character %q at offset %d", c, p.pos)
	}
}

func (p *parser) enterContainer() error {
	p.depth++
	if p.depth > p.limits.RecursionDepth {
		return errLimit("recursion depth %d exceeds limit %d", p.depth, p.limits.RecursionDepth)
	}
	return nil
}

func (p *parser) leaveContainer() { p.depth-- }

func (p *parser) parseObjectBody() (Value, error) {
	if err := p.enterContainer(); err != nil {
		return Value{}, err
	}
	defer p.leaveContainer()

	p.pos++ // consume '{'
	obj := NewObject()

	p.skipWhitespace()
	if p.pos < len(p.src) && p.src[p.pos] == '}' {
		p.pos++
		return NewObjectValue(obj), nil
	}

	for {
		p.skipWhitespace()
		if p.pos >= len(p.src) || p.src[p.pos] != '"' {
			return Value{}, errMalformed("expected member key string at offset %d", p.pos)
		}
		keyBytes, err := p.parseStringLiteral()
		if err != nil {
			return Value{}, err
		}
		key := string(keyBytes)

		p.skipWhitespace()
		if p.pos >= len(p.src) || p.src[p.pos] != ':' {
			return Value{}, errMalformed("expected ':' after member key %q", key)
		}
		p.pos++

		val, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}

		if obj.Has(key) {
			return Value{}, errMalformed("duplicate object member %q", key)
		}
		if obj.Len() >= p.limits.ObjectMbrCount {
			return Value{}, errLimit("object member count exceeds limit %d", p.limits.ObjectMbrCount)
		}
		_ = obj.SetValue(key, val) // cannot fail: key is fresh and obj is unlocked

		p.skipWhitespace()
		if p.pos >= len(p.src) {
			return Value{}, errMalformed("unexpected end of input in object")
		}
		if p.src[p.pos] == ',' {
			p.pos++
			continue
		}
		break
	}

	p.skipWhitespace()
	if p.pos >= len(p.src) || p.src[p.pos] != '}' {
		return Value{}, errMalformed("expected '}' to close object at offset %d", p.pos)
	}
	p.pos++

	return NewObjectValue(obj), nil
}

func (p *parser) parseArrayBody() (Value, error) {
	if err := p.enterContainer(); err != nil {
		return Value{}, err
	}
	defer p.leaveContainer()

	p.pos++ // consume '['
	arr := NewArray()

	p.skipWhitespace()
	if p.pos < len(p.src) && p.src[p.pos] == ']' {
		p.pos++
		return NewArrayValue(arr), nil
	}

	for {
		val, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}

		if arr.Len() >= p.limits.ArrayElemCount {
			return Value{}, errLimit("array element count exceeds limit %d", p.limits.ArrayElemCount)
		}
		_ = arr.Append(val) // cannot fail: arr is unlocked

		p.skipWhitespace()
		if p.pos >= len(p.src) {
			return Value{}, errMalformed("unexpected end of input in array")
		}
		if p.src[p.pos] == ',' {
			p.pos++
			continue
		}
		break
	}

	p.skipWhitespace()
	if p.pos >= len(p.src) || p.src[p.pos] != ']' {
		return Value{}, errMalformed("expected ']' to close array at offset %d", p.pos)
	}
	p.pos++

	return NewArrayValue(arr), nil
}

func (p *parser) parseBoolLiteral() (Value, error) {
	if p.matchLiteral("true") {
		return NewBool(true), nil
	}
	if p.matchLiteral("false") {
		return NewBool(false), nil
	}
	return Value{}, errMalformed("malformed literal at offset %d", p.pos)
}

func (p *parser) parseNullLiteral() (Value, error) {
	if p.matchLiteral("null") {
		return NewNull(), nil
	}
	return Value{}, errMalformed("malformed literal at offset %d", p.pos)
}

// matchLiteral consumes lit at the current position if it is present and
// is not immediately followed by another alphanumeric byte (so "nullable"
// does not match "null").
func (p *parser) matchLiteral(lit string) bool {
	n := len(lit)
	if p.pos+n > len(p.src) || string(p.src[p.pos:p.pos+n]) != lit {
		return false
	}
	if p.pos+n < len(p.src) && isWordByte(p.src[p.pos+n]) {
		return false
	}
	p.pos += n
	return true
}

func isWordByte(c byte) bool {
	return c == '_' || isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func (p *parser) parseNumberLiteral() (Value, error) {
	start := p.pos

	if p.pos < len(p.src) && p.src[p.pos] == '-' {
		p.pos++
	}
	if p.pos >= len(p.src) || !isDigit(p.src[p.pos]) {
		return Value{}, errMalformed("malformed number at offset %d", start)
	}

	if p.src[p.pos] == '0' {
		p.pos++
	} else {
		for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
			p.pos++
		}
	}

	if p.pos < len(p.src) && p.src[p.pos] == '.' {
		p.pos++
		if p.pos >= len(p.src) || !isDigit(p.src[p.pos]) {
			return Value{}, errMalformed("malformed number: missing fraction digits at offset %d", start)
		}
		for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
			p.pos++
		}
	}

	if p.pos < len(p.src) && (p.src[p.pos] == 'e' || p.src[p.pos] == 'E') {
		p.pos++
		if p.pos < len(p.src) && (p.src[p.pos] == '+' || p.src[p.pos] == '-') {
			p.pos++
		}
		if p.pos >= len(p.src) || !isDigit(p.src[p.pos]) {
			return Value{}, errMalformed("malformed number: missing exponent digits at offset %d", start)
		}
		for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
			p.pos++
		}
	}

	text := string(p.src[start:p.pos])
	if len(text) > p.limits.NumeralLength {
		return Value{}, errLimit("numeral of length %d exceeds numeral_length limit %d", len(text), p.limits.NumeralLength)
	}

	return NewNumeral(text)
}

func (p *parser) parseStringLiteral() ([]byte, error) {
	p.pos++ // consume opening quote

	var out []byte
	for {
		if p.pos >= len(p.src) {
			return nil, errMalformed("unterminated string literal")
		}

		c := p.src[p.pos]
		switch {
		case c == '"':
			p.pos++
			if len(out) > p.limits.StringSize {
				return nil, errLimit("string value of %d bytes exceeds string_size limit %d", len(out), p.limits.StringSize)
			}
			if err := validateUTF8(out); err != nil {
				return nil, err
			}
			return out, nil
		case c == '\\':
			decoded, err := p.parseEscape()
			if err != nil {
				return nil, err
			}
			out = append(out, decoded...)
		case c < 0x20:
			return nil, errMalformed("unescaped control byte 0x%02x in string literal", c)
		default:
			out = append(out, c)
			p.pos++
		}
	}
}

func (p *parser) parseEscape() ([]byte, error) {
	p.pos++ // consume backslash
	if p.pos >= len(p.src) {
		return nil, errMalformed("unterminated escape sequence")
	}

	switch esc := p.src[p.pos]; esc {
	case '"', '\\', '/':
		p.pos++
		return []byte{esc}, nil
	case 'b':
		p.pos++
		return []byte{'\b'}, nil
	case 'f':
		p.pos++
		return []byte{'\f'}, nil
	case 'n':
		p.pos++
		return []byte{'\n'}, nil
	case 'r':
		p.pos++
		return []byte{'\r'}, nil
	case 't':
		p.pos++
		return []byte{'\t'}, nil
	case 'u':
		p.pos++
		if p.pos+4 > len(p.src) {
			return nil, errMalformed("truncated \\u escape")
		}
		cp, err := parseHex4(p.src[p.pos : p.pos+4])
		if err != nil {
			return nil, err
		}
		p.pos += 4
		if cp >= 0xD800 && cp <= 0xDFFF {
			return nil, errMalformed("unpaired UTF-16 surrogate \\u%04x is not supported", cp)
		}
		return appendUTF8(nil, cp), nil
	default:
		return nil, errMalformed("unsupported escape sequence \\%c", esc)
	}
}

func parseHex4(b []byte) (uint32, error) {
	v, err := strconv.ParseUint(string(b), 16, 32)
	if err != nil {
		return 0, errMalformed("malformed \\u escape %q", string(b))
	}
	return uint32(v), nil
}

// appendUTF8 appends the UTF-8 encoding of a Basic Multilingual Plane
// code point (0..0xFFFF, excluding surrogates which callers reject
// beforehand) to buf.
func appendUTF8(buf []byte, cp uint32) []byte {
	switch {
	case cp < 0x80:
		return append(buf, byte(cp))
	case cp < 0x800:
		return append(buf, byte(0xC0|(cp>>6)), byte(0x80|(cp&0x3F)))
	default:
		return append(buf, byte(0xE0|(cp>>12)), byte(0x80|((cp>>6)&0x3F)), byte(0x80|(cp&0x3F)))
	}
}
