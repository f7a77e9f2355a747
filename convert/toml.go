package convert

import (
	"fmt"
	"io"

	"github.com/clockworkengineer/bencode/encode"
	"github.com/clockworkengineer/bencode/ir"

	"github.com/pelletier/go-toml"
)

// ToTOML writes n as a TOML document. The root must be a dictionary and
// every list must hold values of a single type; lists of lists have no
// table form and are rejected.
func ToTOML(n *ir.Node, w io.Writer) error {
	if !n.IsDict() {
		return fmt.Errorf("%w: TOML root must be a dictionary, not %s", ErrUnrepresentable, n.TypeName())
	}
	m, err := tomlTable(n, "")
	if err != nil {
		return err
	}
	tree, err := toml.TreeFromMap(m)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnrepresentable, err)
	}
	_, err = tree.WriteTo(w)
	return err
}

func tomlTable(n *ir.Node, path string) (map[string]any, error) {
	order := encode.EntryOrder(n, true)
	res := make(map[string]any, len(order))
	for _, k := range order {
		key := textValue(n.Fields[k].Bytes)
		v, err := tomlValue(n.Values[k], path+"."+key)
		if err != nil {
			return nil, err
		}
		res[key] = v
	}
	return res, nil
}

func tomlValue(n *ir.Node, path string) (any, error) {
	switch n.Type {
	case ir.IntegerType:
		return n.Int, nil
	case ir.BytesType:
		return textValue(n.Bytes), nil
	case ir.DictType:
		return tomlTable(n, path)
	}
	if len(n.Values) == 0 {
		return []string{}, nil
	}
	elt := n.Values[0].Type
	for _, v := range n.Values[1:] {
		if v.Type != elt {
			return nil, fmt.Errorf("%w: mixed list at %s (%s and %s)", ErrUnrepresentable, path, elt, v.Type)
		}
	}
	switch elt {
	case ir.IntegerType:
		res := make([]int64, len(n.Values))
		for i, v := range n.Values {
			res[i] = v.Int
		}
		return res, nil
	case ir.BytesType:
		res := make([]string, len(n.Values))
		for i, v := range n.Values {
			res[i] = textValue(v.Bytes)
		}
		return res, nil
	case ir.DictType:
		res := make([]map[string]any, len(n.Values))
		for i, v := range n.Values {
			t, err := tomlTable(v, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			res[i] = t
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: list of lists at %s", ErrUnrepresentable, path)
}
