package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/rawbytedev/bytewire"
	"github.com/rawbytedev/bytewire/internal/hexfmt"
)

// schemaFile describes the field layout of the buffer being dumped.
type schemaFile struct {
	Fields []fieldSpec `toml:"field"`
}

// fieldSpec binds a display name to one wire type.
type fieldSpec struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
}

func loadSchema(path string) (schemaFile, error) {
	var s schemaFile
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return schemaFile{}, err
	}
	if len(s.Fields) == 0 {
		return schemaFile{}, fmt.Errorf("schema %s declares no fields", path)
	}
	for _, f := range s.Fields {
		if !knownType(f.Type) {
			return schemaFile{}, fmt.Errorf("field %q: unknown wire type %q", f.Name, f.Type)
		}
	}
	return s, nil
}

func knownType(t string) bool {
	switch t {
	case "bool", "int8", "int16", "int32", "int64",
		"varint32", "varint64", "string", "bytes", "varint_bytes":
		return true
	}
	return false
}

// decodeField consumes one field from c and renders it for display.
func decodeField(c *bytewire.Cursor, f fieldSpec) (string, error) {
	switch f.Type {
	case "bool":
		return fmt.Sprintf("%v", c.ReadBool()), nil
	case "int8":
		return fmt.Sprintf("%d", c.ReadInt8()), nil
	case "int16":
		return fmt.Sprintf("%d", c.ReadInt16()), nil
	case "int32":
		return fmt.Sprintf("%d", c.ReadInt32()), nil
	case "int64":
		return fmt.Sprintf("%d", c.ReadInt64()), nil
	case "varint32":
		v, err := c.ReadVarint32()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d", v), nil
	case "varint64":
		v, err := c.ReadVarint64()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d", v), nil
	case "string":
		v := c.ReadNullableString()
		if v == nil {
			return "<null>", nil
		}
		return fmt.Sprintf("%q", *v), nil
	case "bytes":
		b := c.ReadBytes()
		if b == nil {
			return "<null>", nil
		}
		return hexfmt.Preview(b, 16), nil
	case "varint_bytes":
		b, err := c.ReadVarintBytes()
		if err != nil {
			return "", err
		}
		if b == nil {
			return "<null>", nil
		}
		return hexfmt.Preview(b, 16), nil
	default:
		return "", fmt.Errorf("unknown wire type %q", f.Type)
	}
}
